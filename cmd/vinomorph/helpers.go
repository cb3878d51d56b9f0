package main

import (
	"fmt"

	"vinomorph/adapters/cellar"
	"vinomorph/internal/display"
	"vinomorph/pkg/morphospace"
)

// flagMarkdown switches table output to Markdown; shared by the
// rendering commands.
var flagMarkdown bool

func outputMode() display.Mode {
	if flagMarkdown {
		return display.Markdown
	}
	return display.ASCII
}

func loadRegistry() (*morphospace.Registry, error) {
	reg, err := cellar.Load()
	if err != nil {
		return nil, fmt.Errorf("load cellar registry: %w", err)
	}
	return reg, nil
}
