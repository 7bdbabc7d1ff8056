// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package feed

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom" xmlns:opensearch="http://a9.com/-/spec/opensearch/1.1/" xmlns:arxiv="http://arxiv.org/schemas/atom">
  <link href="http://arxiv.org/api/query?search_query=ti:quantum" rel="self" type="application/atom+xml"/>
  <title type="html">ArXiv Query: search_query=ti:quantum&amp;id_list=&amp;start=0&amp;max_results=10</title>
  <id>http://arxiv.org/api/cHxbiOdZaP56ODnBPIenZhzg5f8</id>
  <updated>2024-03-01T00:00:00-05:00</updated>
  <opensearch:totalResults>25</opensearch:totalResults>
  <opensearch:startIndex>0</opensearch:startIndex>
  <opensearch:itemsPerPage>10</opensearch:itemsPerPage>
  <entry>
    <id>http://arxiv.org/abs/2301.07041v2</id>
    <updated>2023-02-10T12:00:00Z</updated>
    <published>2023-01-17T18:30:00Z</published>
    <title>Quantum Error Correction
      with   Surface Codes</title>
    <summary>  We study surface codes.
  The threshold is
  estimated numerically.
</summary>
    <author>
      <name>Alice Example</name>
      <arxiv:affiliation>Somewhere</arxiv:affiliation>
    </author>
    <author>
      <name>Bob Example</name>
    </author>
    <arxiv:doi>10.1103/PhysRevA.00.000000</arxiv:doi>
    <link title="doi" href="http://dx.doi.org/10.1103/PhysRevA.00.000000" rel="related"/>
    <arxiv:comment>12 pages, 4 figures</arxiv:comment>
    <arxiv:journal_ref>Phys. Rev. A 100, 000000 (2023)</arxiv:journal_ref>
    <link href="http://arxiv.org/abs/2301.07041v2" rel="alternate" type="text/html"/>
    <link title="pdf" href="http://arxiv.org/pdf/2301.07041v2" rel="related" type="application/pdf"/>
    <arxiv:primary_category term="quant-ph" scheme="http://arxiv.org/schemas/atom"/>
    <category term="quant-ph" scheme="http://arxiv.org/schemas/atom"/>
    <category term="cs.IT" scheme="http://arxiv.org/schemas/atom"/>
  </entry>
  <entry>
    <id>http://arxiv.org/abs/2302.00001v1</id>
    <updated>2023-02-01T00:00:00Z</updated>
    <published>2023-02-01T00:00:00Z</published>
    <title>Bare Entry</title>
    <summary>Nothing optional here.</summary>
  </entry>
</feed>`

func TestParseMetadata(t *testing.T) {
	page, err := Parse(strings.NewReader(sampleFeed))
	require.NoError(t, err)

	assert.Equal(t, 25, page.TotalResults)
	assert.Equal(t, 0, page.StartIndex)
	assert.Equal(t, 10, page.ItemsPerPage)
	// Entries on this page are independent of the overall total.
	assert.Len(t, page.Entries, 2)
}

func TestParseEntry(t *testing.T) {
	page, err := Parse(strings.NewReader(sampleFeed))
	require.NoError(t, err)
	r := page.Entries[0]

	assert.Equal(t, "http://arxiv.org/abs/2301.07041v2", r.ID)
	assert.Equal(t, "Quantum Error Correction with Surface Codes", r.Title)
	assert.Equal(t, "We study surface codes. The threshold is estimated numerically.", r.Summary)
	assert.Equal(t, []string{"Alice Example", "Bob Example"}, r.Authors)
	assert.Equal(t, []string{"quant-ph", "cs.IT"}, r.Categories)
	assert.Equal(t, "2023-01-17T18:30:00Z", r.Published)
	assert.Equal(t, "2023-02-10T12:00:00Z", r.Updated)
	assert.True(t, r.Revised())
	assert.Equal(t, "http://arxiv.org/abs/2301.07041v2", r.AbstractURL)
	assert.Equal(t, "http://arxiv.org/pdf/2301.07041v2", r.PDFURL)

	require.NotNil(t, r.DOI)
	assert.Equal(t, "10.1103/PhysRevA.00.000000", *r.DOI)
	require.NotNil(t, r.Comment)
	assert.Equal(t, "12 pages, 4 figures", *r.Comment)
	require.NotNil(t, r.JournalRef)
	assert.Equal(t, "Phys. Rev. A 100, 000000 (2023)", *r.JournalRef)
}

func TestParseMissingOptionalFields(t *testing.T) {
	page, err := Parse(strings.NewReader(sampleFeed))
	require.NoError(t, err)
	r := page.Entries[1]

	assert.Nil(t, r.DOI)
	assert.Nil(t, r.Comment)
	assert.Nil(t, r.JournalRef)
	assert.NotNil(t, r.Authors)
	assert.Empty(t, r.Authors)
	assert.NotNil(t, r.Categories)
	assert.Empty(t, r.Categories)
	assert.Equal(t, "", r.PDFURL)
	assert.Equal(t, "", r.AbstractURL)
	assert.False(t, r.Revised())
}

func TestParseLastMatchingLinkWins(t *testing.T) {
	payload := `<feed xmlns="http://www.w3.org/2005/Atom"><entry>
  <link rel="alternate" href="http://example.org/first"/>
  <link title="pdf" href="http://example.org/first.pdf"/>
  <link rel="alternate" href="http://example.org/second"/>
  <link title="pdf" href="http://example.org/second.pdf"/>
</entry></feed>`
	page, err := Parse(strings.NewReader(payload))
	require.NoError(t, err)
	require.Len(t, page.Entries, 1)

	assert.Equal(t, "http://example.org/second", page.Entries[0].AbstractURL)
	assert.Equal(t, "http://example.org/second.pdf", page.Entries[0].PDFURL)
}

func TestParseDefaults(t *testing.T) {
	payload := `<feed xmlns="http://www.w3.org/2005/Atom">
  <totalResults>lots</totalResults>
  <entry><author><name>  Padded Name </name></author><category scheme="x"/><arxiv:doi xmlns:arxiv="http://arxiv.org/schemas/atom"></arxiv:doi></entry>
</feed>`
	page, err := Parse(strings.NewReader(payload))
	require.NoError(t, err)

	assert.Equal(t, 0, page.TotalResults)
	assert.Equal(t, 0, page.StartIndex)
	assert.Equal(t, 0, page.ItemsPerPage)
	require.Len(t, page.Entries, 1)

	r := page.Entries[0]
	assert.Equal(t, "", r.ID)
	assert.Equal(t, "", r.Title)
	assert.Equal(t, "", r.Published)
	assert.Equal(t, []string{"Padded Name"}, r.Authors)
	assert.Equal(t, []string{""}, r.Categories)
	assert.Nil(t, r.DOI, "empty optional element counts as absent")
}

func TestParseBareMetadataNames(t *testing.T) {
	payload := `<feed><totalResults> 7 </totalResults><startIndex>3</startIndex><itemsPerPage>2</itemsPerPage><doi>x</doi></feed>`
	page, err := Parse(strings.NewReader(payload))
	require.NoError(t, err)

	assert.Equal(t, 7, page.TotalResults)
	assert.Equal(t, 3, page.StartIndex)
	assert.Equal(t, 2, page.ItemsPerPage)
	assert.NotNil(t, page.Entries)
	assert.Empty(t, page.Entries)
}

func TestParseNamespacedCandidateWins(t *testing.T) {
	payload := `<feed xmlns:arxiv="http://arxiv.org/schemas/atom"><entry>
  <comment>bare</comment>
  <arxiv:comment>namespaced</arxiv:comment>
</entry></feed>`
	page, err := Parse(strings.NewReader(payload))
	require.NoError(t, err)
	require.NotNil(t, page.Entries[0].Comment)
	assert.Equal(t, "namespaced", *page.Entries[0].Comment)
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"empty", ""},
		{"plain text", "Rate exceeded."},
		{"unclosed", `<feed><entry><title>x</title>`},
		{"mismatched", `<feed><entry></feed></entry>`},
		{"two roots", `<feed></feed><feed></feed>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.payload))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedFeed), "got %v", err)
		})
	}
}

func TestCollapse(t *testing.T) {
	assert.Equal(t, "a b c", collapse("\n  a\t\tb \r\n c  "))
	assert.Equal(t, "", collapse(" \n\t "))
}
