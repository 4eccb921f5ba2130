package schedule

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/faizmokh/syllabus/internal/files"
)

func TestReaderLoadParsesFile(t *testing.T) {
	mgr, err := files.NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	reader := NewReader(mgr, WithClock(fixedClock(2024, time.January, 16)))

	content := strings.TrimLeft(`
# CS 322 schedule
begin: 01/08/2024

week: 1
topic: Finite automata
project: Lexer

week: 2
topic: Regular expressions and
their equivalence to automata
`, "\n")

	path := mgr.SchedulePath("")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	weeks, err := reader.Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(weeks) != 2 {
		t.Fatalf("weeks = %d, want 2", len(weeks))
	}
	if weeks[0].Project != "Lexer" {
		t.Fatalf("weeks[0].Project = %q, want %q", weeks[0].Project, "Lexer")
	}
	if got, want := weeks[1].Topic, "Regular expressions and their equivalence to automata "; got != want {
		t.Fatalf("weeks[1].Topic = %q, want %q", got, want)
	}
	if !weeks[1].CurrentWeek {
		t.Fatalf("weeks[1].CurrentWeek = false, want true")
	}
}

func TestReaderLoadReportsPathAndLine(t *testing.T) {
	mgr, err := files.NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	reader := NewReader(mgr)

	path := mgr.SchedulePath("broken.txt")
	if err := os.WriteFile(path, []byte("week: 1\nlecture: oops\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err = reader.Load(context.Background(), path)
	if !errors.Is(err, ErrUnknownField) {
		t.Fatalf("Load error = %v, want ErrUnknownField", err)
	}
	if !strings.Contains(err.Error(), path) || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("Load error %q should name path and line", err)
	}
}

func TestReaderLoadMissingFile(t *testing.T) {
	mgr, err := files.NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	reader := NewReader(mgr)

	if _, err := reader.Load(context.Background(), mgr.SchedulePath("nope.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load error = %v, want os.ErrNotExist", err)
	}

	var nilReader *Reader
	if _, err := nilReader.Load(context.Background(), "x"); err == nil {
		t.Fatalf("nil reader Load error = nil, want error")
	}
}
