package files

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSchedulePath(t *testing.T) {
	tmp := t.TempDir()

	mgr, err := NewManager(tmp)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	abs := filepath.Join(tmp, "elsewhere", "cs322.txt")
	cases := map[string]string{
		"":           filepath.Join(tmp, DefaultScheduleName),
		"cs322.txt":  filepath.Join(tmp, "cs322.txt"),
		abs:          abs,
		"./here.txt": "./here.txt",
	}
	for name, want := range cases {
		if got := mgr.SchedulePath(name); got != want {
			t.Fatalf("SchedulePath(%q) = %q, want %q", name, got, want)
		}
	}

	if got, want := mgr.ConfigPath(), filepath.Join(tmp, ConfigName); got != want {
		t.Fatalf("ConfigPath() = %q, want %q", got, want)
	}
}

func TestEnsureScheduleCreatesStarter(t *testing.T) {
	tmp := t.TempDir()

	mgr, err := NewManager(tmp)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	path := filepath.Join(tmp, "term", "schedule.txt")
	created, err := mgr.EnsureSchedule(path, "01/05/2026")
	if err != nil {
		t.Fatalf("EnsureSchedule: %v", err)
	}
	if !created {
		t.Fatalf("EnsureSchedule created = false, want true")
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(contents), "begin: 01/05/2026\n") {
		t.Fatalf("schedule contents = %q, missing begin directive", contents)
	}

	// A second call must leave the existing file alone.
	if err := os.WriteFile(path, []byte("week: 1\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	created, err = mgr.EnsureSchedule(path, "02/02/2026")
	if err != nil {
		t.Fatalf("EnsureSchedule second call: %v", err)
	}
	if created {
		t.Fatalf("EnsureSchedule second call created = true, want false")
	}
	again, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile second: %v", err)
	}
	if string(again) != "week: 1\n" {
		t.Fatalf("schedule contents after second ensure = %q, want %q", again, "week: 1\n")
	}
}

func TestOpenMissingSchedule(t *testing.T) {
	mgr, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	if _, err := mgr.Open(mgr.SchedulePath("missing.txt")); err == nil {
		t.Fatalf("Open expected error for missing file")
	} else if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Open error = %v, want not-exist", err)
	}
}

func TestOpenReadsSchedule(t *testing.T) {
	mgr, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	path := mgr.SchedulePath("")
	if err := os.WriteFile(path, []byte("week: 1\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	rc, err := mgr.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(data) != "week: 1\n" {
		t.Fatalf("data = %q, want %q", data, "week: 1\n")
	}
}
