package main

import (
	"fmt"
	"io"
)

type rootCmdConfig struct {
	verbose bool
	logger
}

type logger struct {
	w io.Writer
}

func (c *rootCmdConfig) Logf(format string, a ...interface{}) {
	if !c.verbose || c.w == nil {
		return
	}
	fmt.Fprintf(c.w, format, a...)
	fmt.Fprintln(c.w, "")
}
