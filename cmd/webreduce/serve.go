package main

import (
	"fmt"
	"log/slog"

	"github.com/fwojciec/webreduce/fs"
	wrgin "github.com/fwojciec/webreduce/gin"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	writer := fs.NewWriter(c.Out)
	server := wrgin.NewServer(deps.Converter, writer, c.Out, slog.Default())

	fmt.Fprintf(deps.Stdout, "Listening on %s\n", c.Addr)

	return server.Run(c.Addr)
}
