package console

import "os"

// IsAccessibleMode reports whether prompts should use huh's accessible mode.
// It is enabled by ACCESSIBLE, by NO_COLOR, or by a dumb terminal.
func IsAccessibleMode() bool {
	return os.Getenv("ACCESSIBLE") != "" ||
		os.Getenv("NO_COLOR") != "" ||
		os.Getenv("TERM") == "dumb"
}
