package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/readclip/clip"
)

// Run executes the text command.
func (c *TextCmd) Run(deps *Dependencies) error {
	text := c.Text
	if text == "" {
		data, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text = string(data)
	}

	article, err := deps.Clipper.ClipText(deps.Ctx, text)
	result := clip.Describe(article, err)
	if err != nil {
		fmt.Fprintln(deps.Stderr, result.Message)
		return err
	}

	fmt.Fprintln(deps.Stdout, result.Message)
	return nil
}
