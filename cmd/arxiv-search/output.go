package main

import (
	"io"

	"github.com/pdiddy/arxiv-search/internal/render"
	"github.com/pdiddy/arxiv-search/internal/session"
)

// printView writes v in the chosen output format.
func printView(w io.Writer, v session.View, format string, opts render.Options) error {
	switch format {
	case "json":
		return render.JSON(w, v)
	case "csl":
		return render.CSL(w, v)
	case "table":
		render.Table(w, v)
	default:
		render.Cards(w, v, opts)
	}
	return nil
}
