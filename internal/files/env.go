package files

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultDirName defines the folder under the user's home directory.
	DefaultDirName = ".syllabus"
	// DefaultScheduleName is the schedule file used when none is configured.
	DefaultScheduleName = "schedule.txt"
	// ConfigName is the optional YAML config file inside the base directory.
	ConfigName = "config.yaml"
)

// ResolveBasePath determines where syllabus keeps its files, defaulting to ~/.syllabus.
// The location can be overridden by exporting SYLLABUS_HOME.
func ResolveBasePath() (string, error) {
	if override, ok := os.LookupEnv("SYLLABUS_HOME"); ok {
		override = strings.TrimSpace(override)
		if override != "" {
			return normalizePath(override)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultDirName), nil
}

func normalizePath(input string) (string, error) {
	if strings.HasPrefix(input, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		input = filepath.Join(home, strings.TrimPrefix(input, "~"))
	}
	return input, nil
}
