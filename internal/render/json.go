package render

import (
	"encoding/json"
	"io"

	"github.com/pdiddy/arxiv-search/internal/session"
	"github.com/pdiddy/arxiv-search/pkg/types"
)

// jsonView is the machine-readable form of a session view.
type jsonView struct {
	TotalResults int                 `json:"total_results"`
	StartIndex   int                 `json:"start_index"`
	ItemsPerPage int                 `json:"items_per_page"`
	Page         int                 `json:"page"`
	TotalPages   int                 `json:"total_pages"`
	Sort         types.Sort          `json:"sort"`
	Pagination   []session.Control   `json:"pagination,omitempty"`
	Entries      []types.PaperRecord `json:"entries"`
}

// JSON writes the view as indented JSON.
func JSON(w io.Writer, v session.View) error {
	out := jsonView{
		Page:       v.Page,
		TotalPages: v.TotalPages,
		Sort:       v.Sort,
		Pagination: v.Controls(),
		Entries:    []types.PaperRecord{},
	}
	if v.Results != nil {
		out.TotalResults = v.Results.TotalResults
		out.StartIndex = v.Results.StartIndex
		out.ItemsPerPage = v.Results.ItemsPerPage
		out.Entries = v.Results.Entries
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
