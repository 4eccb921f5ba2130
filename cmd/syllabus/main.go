package main

import (
	"context"

	"github.com/faizmokh/syllabus/internal/cli"
)

func main() {
	ctx := context.Background()
	cli.Main(ctx)
}

