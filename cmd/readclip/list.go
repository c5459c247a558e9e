package main

import (
	"fmt"
	"time"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	queue, err := deps.Queue.List(deps.Ctx)
	if err != nil {
		return err
	}

	if len(queue) == 0 {
		fmt.Fprintln(deps.Stdout, "The pending queue is empty.")
		return nil
	}

	for i, article := range queue {
		fmt.Fprintf(deps.Stdout, "%d. %s (%s, %s)\n",
			i+1, article.Title, article.Source, article.DateAdded.Format(time.DateOnly))
		if c.Full {
			for _, ch := range article.Chapters {
				fmt.Fprintln(deps.Stdout)
				fmt.Fprintln(deps.Stdout, ch.Content)
			}
			fmt.Fprintln(deps.Stdout)
		}
	}

	return nil
}
