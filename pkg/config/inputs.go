package config

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml"
)

// Input is one saved workflow input.
type Input struct {
	Name  string
	Value string
}

// Inputs are the saved inputs of a bookmark, in the order they appear in the
// file. They are replayed in that order.
type Inputs []Input

// MarshalYAML writes the inputs as a mapping, keeping their order.
func (in Inputs) MarshalYAML() (any, error) {
	return in.mapSlice(), nil
}

// UnmarshalYAML reads an inputs mapping in document order. Scalar values are
// kept as their string form; a boolean false becomes "false".
func (in *Inputs) UnmarshalYAML(data []byte) error {
	var ms yaml.MapSlice
	if err := yaml.UnmarshalWithOptions(data, &ms, yaml.UseOrderedMap()); err != nil {
		return err
	}

	inputs := make(Inputs, 0, len(ms))
	for _, item := range ms {
		switch item.Value.(type) {
		case yaml.MapSlice, []any:
			return fmt.Errorf("input '%v' must be a single value", item.Key)
		}
		inputs = append(inputs, Input{Name: fmt.Sprint(item.Key), Value: scalarString(item.Value)})
	}
	*in = inputs
	return nil
}

func (in Inputs) mapSlice() yaml.MapSlice {
	ms := make(yaml.MapSlice, 0, len(in))
	for _, input := range in {
		ms = append(ms, yaml.MapItem{Key: input.Name, Value: input.Value})
	}
	return ms
}

func scalarString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}
