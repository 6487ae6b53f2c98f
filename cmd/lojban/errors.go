package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattfbacon/sneturfahi/internal/cst"
	pipelineerrors "github.com/mattfbacon/sneturfahi/internal/errors"
	"github.com/mattfbacon/sneturfahi/internal/lexer"
)

// FormatError writes err to w in a format appropriate to its concrete
// type, adding a Rust/Clang-style source snippet for errors that carry a
// location.
func FormatError(w io.Writer, err error, source string, useColor bool) {
	if err == nil {
		return
	}

	switch e := err.(type) {
	case *lexer.Error:
		formatLexError(w, e, source, useColor)
	case *cst.ParseError:
		formatParseError(w, e, source, useColor)
	case *pipelineerrors.PipelineError:
		_, _ = fmt.Fprintf(w, "%s%s%s\n", Colorize("error: ", ColorRed, useColor), e.Error(), ColorReset)
	default:
		_, _ = fmt.Fprintf(w, "%s%s%s\n", Colorize("error: ", ColorRed, useColor), err.Error(), ColorReset)
	}
}

func formatLexError(w io.Writer, err *lexer.Error, source string, useColor bool) {
	_, _ = fmt.Fprintf(w, "%s%s%s\n", Colorize("lex error: ", ColorRed, useColor), err.Error(), ColorReset)
	_, _ = fmt.Fprint(w, codeSnippet(source, int(err.InitiatorSpan.Start)))
}

func formatParseError(w io.Writer, err *cst.ParseError, source string, useColor bool) {
	_, _ = fmt.Fprintf(w, "%s%s%s\n", Colorize("parse error: ", ColorRed, useColor), err.Error(), ColorReset)
	_, _ = fmt.Fprintf(w, "%s  (at token index %d)%s\n", Colorize("", ColorGray, useColor), err.Location, ColorReset)
}

// codeSnippet renders a Rust/Clang-style pointer into source at byte offset
// at: a line/column header, the offending source line, and a caret under
// the exact column.
func codeSnippet(source string, at int) string {
	if at < 0 || at > len(source) {
		return ""
	}

	line, col := 1, 1
	lineStart := 0
	for i := 0; i < at; i++ {
		if source[i] == '\n' {
			line++
			col = 1
			lineStart = i + 1
		} else {
			col++
		}
	}

	lineEnd := strings.IndexByte(source[lineStart:], '\n')
	var lineContent string
	if lineEnd == -1 {
		lineContent = source[lineStart:]
	} else {
		lineContent = source[lineStart : lineStart+lineEnd]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  --> %d:%d\n", line, col)
	b.WriteString("   |\n")
	fmt.Fprintf(&b, "%2d | %s\n", line, lineContent)
	b.WriteString("   | ")
	if col > 0 && col <= len(lineContent)+1 {
		b.WriteString(strings.Repeat(" ", col-1) + "^")
	}
	b.WriteString("\n")
	return b.String()
}
