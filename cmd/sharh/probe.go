package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/sharh"
)

const probeTextWidth = 60

// Run executes the probe command.
func (c *ProbeCmd) Run(deps *Dependencies) error {
	format := c.Format.format()
	if err := format.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sharh.ErrorMessage(err))
		return err
	}

	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: fetch %s: %v\n", c.URL, err)
		return err
	}

	blocks, err := deps.Parser.ParseBlocks(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: parse %s: %v\n", c.URL, err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Blocks (%d):\n", len(blocks))
	for i, b := range blocks {
		text := b.Text
		if !c.Full {
			text = truncateText(text, probeTextWidth)
		}
		tags := ""
		if len(b.Tags) > 0 {
			tags = " [" + strings.Join(b.Tags, " ") + "]"
		}
		marker := ""
		if n, ok := format.MatchBoundary(b); ok {
			marker = fmt.Sprintf(" <section %d>", n)
		} else if format.IsAnchor(b) {
			marker = " <anchor>"
		}
		fmt.Fprintf(deps.Stdout, "  %3d %-15s%s%s %s\n", i, b.Kind, tags, marker, text)
	}

	stream, err := sharh.BuildStream([]*sharh.Page{{URL: c.URL, Blocks: blocks}}, format)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sharh.ErrorMessage(err))
		return err
	}
	result, err := sharh.Extract(stream, format)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sharh.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "\nSections (%d emitted, %d omitted):\n", result.Stats.Emitted, result.Stats.Omitted())
	for _, d := range result.Diagnostics {
		fmt.Fprintf(deps.Stdout, "  %s  %s  anchors=%d paragraphs=%d footnotes=%d\n",
			d.Label, d.Status, d.Anchors, d.Paragraphs, d.Footnotes)
	}
	return nil
}

// truncateText shortens s to at most n runes.
func truncateText(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
