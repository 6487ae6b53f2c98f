package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattfbacon/sneturfahi/internal/cst"
	"github.com/mattfbacon/sneturfahi/internal/lexer"
)

// DisplayWords renders decomposed word spans one per line.
func DisplayWords(w io.Writer, words []string) {
	for _, word := range words {
		_, _ = fmt.Fprintln(w, word)
	}
}

// DisplayTokens renders lexer tokens as a table of selmaho and source text.
func DisplayTokens(w io.Writer, source string, tokens []lexer.Token, useColor bool) {
	for _, tok := range tokens {
		selmaho := Colorize(tok.Selmaho.String(), ColorBlue, useColor)
		text, ok := tok.Span.Slice(source)
		if !ok {
			text = "?"
		}
		marker := ""
		if tok.Experimental {
			marker = Colorize(" (experimental)", ColorYellow, useColor)
		}
		_, _ = fmt.Fprintf(w, "%-16s %q%s\n", selmaho, text, marker)
	}
}

// DisplayTree renders a parsed Root as an indented tree, in the spirit of
// a plan tree: one paragraph per top-level branch, sentences and their
// terms nested beneath it.
func DisplayTree(w io.Writer, root *cst.Root, useColor bool) {
	for i, para := range root.Paragraphs {
		isLast := i == len(root.Paragraphs)-1
		_, _ = fmt.Fprintf(w, "%s paragraph %d\n", treePrefix(isLast, 0), i)
		for j, sentence := range para.Sentences {
			sentenceLast := j == len(para.Sentences)-1
			renderSentence(w, sentence, sentenceLast, useColor)
		}
	}
}

func renderSentence(w io.Writer, s cst.Sentence, isLast bool, useColor bool) {
	_, _ = fmt.Fprintf(w, "%s sentence\n", treePrefix(isLast, 1))
	for _, arg := range s.BeforeArgs {
		renderArg(w, arg, useColor, 2)
	}
	if s.Selbri != nil {
		var units []string
		for _, u := range s.Selbri.LeafTokens() {
			units = append(units, u.Selmaho.String())
		}
		_, _ = fmt.Fprintf(w, "  %sselbri: %s%s\n", strings.Repeat("  ", 1), Colorize(strings.Join(units, " "), ColorGreen, useColor), ColorReset)
	}
	for _, arg := range s.AfterArgs {
		renderArg(w, arg, useColor, 2)
	}
}

func renderArg(w io.Writer, arg cst.Arg, useColor bool, depth int) {
	indent := strings.Repeat("  ", depth)
	if arg.Naku {
		_, _ = fmt.Fprintf(w, "%sna ku\n", indent)
		return
	}
	label := "sumti"
	if arg.Sumti != nil {
		switch {
		case arg.Sumti.Core.Koha != nil:
			label = "koha"
		case arg.Sumti.Core.Cmevla != nil:
			label = "cmevla"
		case arg.Sumti.Core.Described != nil:
			label = "described"
		case arg.Sumti.Core.Quoted != nil:
			label = "zo-quote"
		case arg.Sumti.Core.Text != nil:
			label = "lu-quote"
		case arg.Sumti.Core.Zoi != nil:
			label = "zoi-quote"
		case arg.Sumti.Core.RawWords != nil:
			label = "lohu-quote"
		case arg.Sumti.Core.Modified != nil:
			label = "modified"
		case arg.Sumti.Core.Lerfu != nil:
			label = "lerfu"
		case arg.Sumti.Core.Quantified != nil:
			label = "quantified"
		case arg.Sumti.Core.Shorthand != nil:
			label = "selbri-shorthand"
		case arg.Sumti.Core.Li != nil:
			label = "li-mekso"
		}
	}
	_, _ = fmt.Fprintf(w, "%s%s\n", indent, Colorize(label, ColorCyan, useColor))
}

func treePrefix(isLast bool, depth int) string {
	indent := strings.Repeat("  ", depth)
	if isLast {
		return indent + "└─"
	}
	return indent + "├─"
}
