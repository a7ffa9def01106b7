// Package logger provides namespaced debug logging controlled by the DEBUG
// environment variable.
//
// Loggers are created once per file with a "package:file" namespace:
//
//	var log = logger.New("config:loader")
//	log.Printf("Loading config from %s", path)
//
// Output is written to stderr only when DEBUG selects the namespace. DEBUG is a
// comma separated list of patterns: "*" enables everything, "cli:*" enables a
// package, "cli:dispatch" enables one file, and a leading "-" excludes a match.
// Each line is suffixed with the time elapsed since the logger's previous line.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/gh-dispatch/gh-dispatch/pkg/tty"
)

// Logger writes debug lines for a single namespace.
type Logger struct {
	namespace string
	enabled   bool
	style     lipgloss.Style
	colored   bool

	mu      sync.Mutex
	lastLog time.Time
}

var (
	output io.Writer = os.Stderr

	debugPattern  = os.Getenv("DEBUG")
	colorsEnabled = os.Getenv("DEBUG_COLORS") != "0" && tty.IsStderrTerminal()

	palette = []string{"#61AFEF", "#98C379", "#E5C07B", "#C678DD", "#56B6C2", "#E06C75"}
)

// New creates a logger for the given namespace.
func New(namespace string) *Logger {
	return newLogger(namespace, debugPattern)
}

func newLogger(namespace, pattern string) *Logger {
	color := palette[colorIndex(namespace)]
	return &Logger{
		namespace: namespace,
		enabled:   isEnabled(namespace, pattern),
		style:     lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true),
		colored:   colorsEnabled,
		lastLog:   time.Now(),
	}
}

// Enabled reports whether this logger produces output.
func (l *Logger) Enabled() bool {
	return l.enabled
}

// Printf writes a formatted debug line.
func (l *Logger) Printf(format string, args ...any) {
	if !l.enabled {
		return
	}
	l.write(fmt.Sprintf(format, args...))
}

// Print writes a debug line built from args.
func (l *Logger) Print(args ...any) {
	if !l.enabled {
		return
	}
	l.write(fmt.Sprint(args...))
}

func (l *Logger) write(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(l.lastLog)
	l.lastLog = now

	ns := l.namespace
	if l.colored {
		ns = l.style.Render(ns)
	}
	fmt.Fprintf(output, "%s %s +%s\n", ns, message, formatElapsed(elapsed))
}

func formatElapsed(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return fmt.Sprintf("%.1fm", d.Minutes())
	}
}

// isEnabled evaluates a DEBUG pattern list against a namespace.
// Exclusions win over inclusions regardless of their position.
func isEnabled(namespace, pattern string) bool {
	if pattern == "" {
		return false
	}

	enabled := false
	for _, part := range strings.Split(pattern, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if strings.HasPrefix(part, "-") {
			if matchNamespace(namespace, part[1:]) {
				return false
			}
			continue
		}
		if matchNamespace(namespace, part) {
			enabled = true
		}
	}
	return enabled
}

func matchNamespace(namespace, pattern string) bool {
	if pattern == "*" {
		return true
	}
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(namespace, prefix)
	}
	return namespace == pattern
}

func colorIndex(namespace string) int {
	hash := 0
	for _, r := range namespace {
		hash = (hash*31 + int(r)) % len(palette)
	}
	return hash
}
