package main

import (
	"context"
	"io"
	"log/slog"
)

// Dependencies holds shared services and streams for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Generate    GenerateCmd    `cmd:"" help:"Generate a config by sampling an HTML tree"`
	Convert     ConvertCmd     `cmd:"" help:"Convert HTML files to markdown using a config"`
	Consolidate ConsolidateCmd `cmd:"" help:"Merge converted markdown into one document"`
	Process     ProcessCmd     `cmd:"" help:"Generate, convert, and consolidate in sequence"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	InputDir string `arg:"" help:"Directory containing HTML files" type:"existingdir"`
	Output   string `short:"o" help:"Config file path (default: <input-dir>/config.yaml)"`
	Sample   int    `short:"s" default:"50" help:"Maximum number of files to sample"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	Config   string `arg:"" help:"Config file path" type:"existingfile"`
	Input    string `short:"i" help:"Override input directory"`
	Output   string `short:"o" help:"Override output directory"`
	MaxDepth int    `short:"d" default:"-1" help:"Override maximum directory depth"`
}

// ConsolidateCmd is the "consolidate" subcommand.
type ConsolidateCmd struct {
	Config string `arg:"" help:"Config file path" type:"existingfile"`
	Output string `short:"o" help:"Override consolidated output path"`
}

// ProcessCmd is the "process" subcommand.
type ProcessCmd struct {
	InputDir string `arg:"" help:"Directory containing HTML files" type:"existingdir"`
	Config   string `short:"c" help:"Config file path (default: <input-dir>/config.yaml)"`
	MaxDepth int    `short:"d" default:"-1" help:"Override maximum directory depth"`
	Sample   int    `short:"s" default:"50" help:"Maximum number of files to sample for config generation"`
}
