package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/faizmokh/syllabus/internal/files"
)

// Reader loads schedules from disk through the shared files.Manager.
type Reader struct {
	manager *files.Manager
	parser  *Parser
}

// NewReader wires a reader using manager and a parser configured with opts.
func NewReader(manager *files.Manager, opts ...Option) *Reader {
	return &Reader{manager: manager, parser: NewParser(opts...)}
}

// Load opens the schedule at path and parses every week in it.
func (r *Reader) Load(ctx context.Context, path string) ([]Week, error) {
	if r == nil || r.manager == nil {
		return nil, errors.New("reader not initialized with file manager")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := r.manager.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	weeks, err := r.parser.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return weeks, nil
}
