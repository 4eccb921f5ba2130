package files

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// Manager centralizes where schedules and config live on disk.
type Manager struct {
	basePath string
}

// NewManager constructs a Manager rooted at the provided directory. If basePath
// is empty, it falls back to ~/.syllabus (or another location determined by
// ResolveBasePath).
func NewManager(basePath string) (*Manager, error) {
	var err error
	if basePath == "" {
		basePath, err = ResolveBasePath()
		if err != nil {
			return nil, err
		}
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	return &Manager{basePath: abs}, nil
}

// BasePath returns the root directory holding schedules and config.
func (m *Manager) BasePath() string {
	return m.basePath
}

// ConfigPath returns where the optional config file is read from.
func (m *Manager) ConfigPath() string {
	return filepath.Join(m.basePath, ConfigName)
}

// SchedulePath resolves a schedule file name. Absolute paths and paths starting
// with ./ or ../ are returned as given; bare names live under the base directory.
func (m *Manager) SchedulePath(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultScheduleName
	}
	if expanded, err := normalizePath(name); err == nil {
		name = expanded
	}
	if filepath.IsAbs(name) || strings.HasPrefix(name, "."+string(filepath.Separator)) || strings.HasPrefix(name, ".."+string(filepath.Separator)) {
		return name
	}
	return filepath.Join(m.basePath, name)
}

// Open opens a schedule for reading.
func (m *Manager) Open(path string) (io.ReadCloser, error) {
	if m == nil {
		return nil, errors.New("files.Manager is nil")
	}
	file, err := os.Open(path) // #nosec G304 -- user-provided schedule path is expected
	if err != nil {
		return nil, fmt.Errorf("open schedule: %w", err)
	}
	return file, nil
}

// EnsureSchedule writes a starter schedule beginning on begin (MM/DD/YYYY) when
// path is missing or empty. It reports whether the file was created.
func (m *Manager) EnsureSchedule(path, begin string) (bool, error) {
	if m == nil {
		return false, errors.New("files.Manager is nil")
	}

	info, err := os.Stat(path)
	switch {
	case err == nil && info.Size() > 0:
		return false, nil
	case err != nil && !errors.Is(err, os.ErrNotExist):
		return false, fmt.Errorf("stat schedule: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return false, fmt.Errorf("create directories: %w", err)
	}
	if err := writeLines(path, starterSchedule(begin)); err != nil {
		return false, fmt.Errorf("write schedule: %w", err)
	}
	return true, nil
}

func starterSchedule(begin string) []string {
	return []string{
		"# Course schedule",
		"# Each line is \"field: value\" with field one of begin, week, topic, project.",
		"# A line without a colon continues the previous field.",
		"",
		"begin: " + begin,
		"",
		"week: 1",
		"topic: Introduction",
		"",
		"week: 2",
		"topic: TBD",
	}
}

func writeLines(path string, lines []string) error {
	dir := filepath.Dir(path)
	temp, err := os.CreateTemp(dir, "syllabus-*")
	if err != nil {
		return err
	}
	defer os.Remove(temp.Name())

	content := strings.Join(lines, "\n")
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}

	if _, err := temp.WriteString(content); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Sync(); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(temp.Name(), filePermissions); err != nil {
		return err
	}

	return os.Rename(temp.Name(), path)
}
