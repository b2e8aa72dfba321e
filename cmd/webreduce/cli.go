package main

import (
	"context"
	"io"

	"github.com/fwojciec/webreduce"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Config    *webreduce.Config
	Converter webreduce.PageConverter
	Sitemaps  webreduce.SitemapService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Convert ConvertCmd `cmd:"" help:"Convert pages to reduced JSON trees"`
	Serve   ServeCmd   `cmd:"" help:"Serve the conversion form over HTTP"`

	Config string `short:"C" type:"path" help:"YAML config file with tag and expansion settings"`
	Cache  string `help:"SQLite cache path for fetched pages"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	URLs        []string `arg:"" optional:"" help:"Page URLs to convert"`
	Sitemap     string   `short:"s" help:"Discover URLs from this site's sitemap instead"`
	Filter      []string `short:"F" name:"filter" help:"Filter sitemap URLs by regex (repeatable)"`
	Expand      bool     `short:"e" help:"Expand linked pages one hop"`
	Out         string   `short:"o" default:"." type:"path" help:"Output directory for JSON files"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
	RPS         float64  `name:"rps" default:"2" help:"Max requests per second per domain"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8080" help:"Listen address"`
	Out  string `short:"o" default:"." type:"path" help:"Output directory for JSON files"`
}
