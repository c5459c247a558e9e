package main

import (
	"fmt"

	"github.com/fwojciec/readclip/clip"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	result, err := deps.Clipper.ClipAll(deps.Ctx, c.URLs, func(ev clip.ProgressEvent) {
		if ev.Err != nil {
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s: %s\n", ev.Completed, ev.Total, ev.URL, clip.Describe(nil, ev.Err).Message)
			return
		}
		fmt.Fprintf(deps.Stdout, "[%d/%d] %s\n", ev.Completed, ev.Total, ev.URL)
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Clipped %d article(s), %d failed\n", result.Clipped, result.Failed)
	if result.Failed > 0 {
		return fmt.Errorf("%d of %d URLs failed", result.Failed, len(c.URLs))
	}
	return nil
}
