package render

import (
	"io"
	"strconv"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/arxiv-search/internal/session"
	"github.com/pdiddy/arxiv-search/pkg/types"
)

// CSLItem represents a bibliographic entry in CSL (Citation Style Language)
// format, consumable by Pandoc and reference managers.
type CSLItem struct {
	ID             string    `yaml:"id"`
	Type           string    `yaml:"type"`
	Title          string    `yaml:"title"`
	Author         []CSLName `yaml:"author,omitempty"`
	Abstract       string    `yaml:"abstract,omitempty"`
	Issued         *CSLDate  `yaml:"issued,omitempty"`
	DOI            string    `yaml:"DOI,omitempty"`
	URL            string    `yaml:"URL,omitempty"`
	ContainerTitle string    `yaml:"container-title,omitempty"`
	Number         string    `yaml:"number,omitempty"`
	Publisher      string    `yaml:"publisher,omitempty"`
	Note           string    `yaml:"note,omitempty"`
}

// CSLName represents a person's name in CSL format.
type CSLName struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// CSLDate represents a date in CSL format using date-parts.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// CSL writes the current page as a CSL-YAML list.
func CSL(w io.Writer, v session.View) error {
	items := []CSLItem{}
	if v.Results != nil {
		for _, r := range v.Results.Entries {
			items = append(items, toCSLItem(r))
		}
	}
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(items); err != nil {
		return err
	}
	return enc.Close()
}

// toCSLItem converts a record to a CSL entry. Preprints are typed as
// "article"; a record with a journal reference becomes "article-journal".
func toCSLItem(r types.PaperRecord) CSLItem {
	id := ArxivID(r.ID)
	item := CSLItem{
		ID:       id,
		Type:     "article",
		Title:    r.Title,
		Abstract: r.Summary,
		URL:      r.AbstractURL,
	}
	if id != "" {
		item.Number = "arXiv:" + id
		item.Publisher = "arXiv"
	}

	for _, a := range r.Authors {
		item.Author = append(item.Author, parseAuthorName(a))
	}

	if t, err := time.Parse(time.RFC3339, r.Published); err == nil {
		item.Issued = &CSLDate{
			DateParts: [][]int{{t.Year(), int(t.Month()), t.Day()}},
		}
	}

	if r.DOI != nil {
		item.DOI = *r.DOI
	}
	if r.JournalRef != nil {
		item.Type = "article-journal"
		item.ContainerTitle = *r.JournalRef
	}
	if r.Comment != nil {
		item.Note = *r.Comment
	}
	return item
}

// parseAuthorName splits a full name string into CSL family/given parts.
// It splits on the last space: everything before is given, the last token
// is family. Single-token names use the literal field.
func parseAuthorName(name string) CSLName {
	name = strings.TrimSpace(name)
	if name == "" {
		return CSLName{}
	}
	idx := strings.LastIndex(name, " ")
	if idx < 0 {
		return CSLName{Literal: name}
	}
	return CSLName{
		Given:  name[:idx],
		Family: name[idx+1:],
	}
}

// ArxivID pulls the arXiv ID from an entry's <id> URL
// (e.g. "http://arxiv.org/abs/2301.07041v1" → "2301.07041"). Identifiers
// without an /abs/ segment are returned unchanged.
func ArxivID(idURL string) string {
	const prefix = "/abs/"
	idx := strings.Index(idURL, prefix)
	if idx < 0 {
		return idURL
	}
	id := idURL[idx+len(prefix):]

	// Strip version suffix (e.g. "v1", "v2").
	if vIdx := strings.LastIndex(id, "v"); vIdx > 0 {
		if _, err := strconv.Atoi(id[vIdx+1:]); err == nil {
			id = id[:vIdx]
		}
	}
	return id
}
