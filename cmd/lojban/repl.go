package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/mattfbacon/sneturfahi/internal/config"
	"github.com/mattfbacon/sneturfahi/internal/cst"
)

// runRepl reads one line of Lojban at a time from r and prints its parse
// tree to w, until r is exhausted.
func runRepl(cfg *config.Config, r io.Reader, w io.Writer, useColor bool) error {
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, "> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "" {
			continue
		}

		tokens, err := lexSource(cfg, line)
		if err != nil {
			FormatError(w, err, line, useColor)
			continue
		}
		root, err := cst.Parse(tokens)
		if err != nil {
			FormatError(w, err, line, useColor)
			continue
		}
		DisplayTree(w, root, useColor)
	}
	return scanner.Err()
}
