package main

import (
	"context"
	"io"

	"github.com/fwojciec/readclip"
	"github.com/fwojciec/readclip/clip"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Queue   readclip.QueueStore
	Clipper *clip.Clipper
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Add  AddCmd  `cmd:"" help:"Clip one or more URLs into the pending queue"`
	Text TextCmd `cmd:"" help:"Clip literal text into the pending queue"`
	List ListCmd `cmd:"" help:"List the pending queue"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	URLs        []string `arg:"" help:"Article URLs"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent clip limit"`
	RPS         float64  `default:"1" help:"Requests per second per domain"`
}

// TextCmd is the "text" subcommand.
type TextCmd struct {
	Text string `arg:"" optional:"" help:"Text to clip (reads stdin when omitted)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Full bool `help:"Show full article content"`
}
