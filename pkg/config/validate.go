package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cli/go-gh/v2/pkg/repository"
	"github.com/gh-dispatch/gh-dispatch/pkg/logger"
	"github.com/goccy/go-yaml"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

var validateLog = logger.New("config:validate")

//go:embed schemas/config.schema.json
var configSchemaJSON []byte

const configSchemaURL = "https://gh-dispatch.dev/schemas/config.schema.json"

// Validate checks the configuration file at path against the embedded JSON
// schema and checks every repository name is an "owner/repo" reference.
//
// Loading never validates; this is only run on request. The returned slice
// lists problems found in a readable file. The error is reserved for files
// that cannot be read or parsed at all.
func Validate(path string) ([]string, error) {
	validateLog.Printf("Validating configuration: path=%s", path)

	content, err := os.ReadFile(filepath.Clean(path)) // #nosec G304 -- path is chosen by the user
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return ValidateContent(content)
}

// ValidateContent is Validate for in-memory configuration YAML.
func ValidateContent(content []byte) ([]string, error) {
	jsonContent, err := yaml.YAMLToJSON(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	var problems []string

	if err := validateAgainstSchema(jsonContent); err != nil {
		problems = append(problems, err.Error())
	}

	cfg, err := Parse(content)
	if err != nil {
		problems = append(problems, fmt.Sprintf("config does not match the expected structure: %v", err))
		return problems, nil
	}

	seen := make(map[string]bool, len(cfg.Repos))
	for _, repo := range cfg.Repos {
		if repo.Name == "" {
			continue
		}
		if _, err := repository.Parse(repo.Name); err != nil {
			problems = append(problems, fmt.Sprintf("repository %q: %v", repo.Name, err))
		}
		if seen[repo.Name] {
			problems = append(problems, fmt.Sprintf("repository %q is listed more than once; only the first entry is used", repo.Name))
		}
		seen[repo.Name] = true
	}

	validateLog.Printf("Validation finished with %d problems", len(problems))
	return problems, nil
}

func validateAgainstSchema(jsonContent []byte) error {
	schemaDoc, err := jsonschema.UnmarshalJSON(bytes.NewReader(configSchemaJSON))
	if err != nil {
		return fmt.Errorf("invalid embedded schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(configSchemaURL, schemaDoc); err != nil {
		return fmt.Errorf("invalid embedded schema: %w", err)
	}
	schema, err := compiler.Compile(configSchemaURL)
	if err != nil {
		return fmt.Errorf("invalid embedded schema: %w", err)
	}

	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonContent))
	if err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}

	return schema.Validate(instance)
}
