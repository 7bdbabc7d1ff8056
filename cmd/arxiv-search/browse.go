package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-search/internal/query"
	"github.com/pdiddy/arxiv-search/internal/render"
	"github.com/pdiddy/arxiv-search/internal/session"
	"github.com/pdiddy/arxiv-search/pkg/types"
)

var browseCmd = &cobra.Command{
	Use:   "browse [text]",
	Short: "Page through and re-sort results interactively",
	Long: `Browse runs a search, prints the first page, then reads commands from
standard input. Each command prints the updated view.

Commands:
  next, n              next page
  prev, p              previous page
  page N               jump to page N
  sort KEY [ORDER]     sort by relevance, submitted or updated
  order                toggle ascending/descending
  search TEXT          new search with TEXT as the free-text filter
  help                 list commands
  quit, q              exit`,
	RunE: runBrowse,
}

func init() {
	addFilterFlags(browseCmd)
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd.Flags())
	if err != nil {
		return err
	}
	opts, err := renderOptions(cmd.Flags())
	if err != nil {
		return err
	}
	filters, sort, err := readFilters(cmd.Flags(), args, configuredSort(cfg))
	if err != nil {
		return err
	}

	b := &browser{
		s:      newSession(sort),
		base:   filters,
		out:    cmd.OutOrStdout(),
		format: format,
		opts:   opts,
	}
	if query.Validate(filters) == nil {
		b.do(cmd.Context(), command{name: "search", text: filters.Query})
	}
	return b.loop(cmd.Context(), cmd.InOrStdin())
}

// command is one parsed browse instruction.
type command struct {
	name     string
	page     int
	key      types.SortKey
	order    types.SortOrder
	hasOrder bool
	text     string
}

var errUnknownCommand = errors.New("unknown command")

// parseCommand reads one input line. Blank lines parse to a command with
// an empty name.
func parseCommand(line string) (command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return command{}, nil
	}
	name, rest := strings.ToLower(fields[0]), fields[1:]

	switch name {
	case "n", "next":
		return command{name: "next"}, nil
	case "p", "prev", "previous":
		return command{name: "prev"}, nil
	case "q", "quit", "exit":
		return command{name: "quit"}, nil
	case "h", "help", "?":
		return command{name: "help"}, nil
	case "order":
		return command{name: "order"}, nil
	case "page":
		if len(rest) != 1 {
			return command{}, errors.New("usage: page N")
		}
		n, err := strconv.Atoi(rest[0])
		if err != nil {
			return command{}, fmt.Errorf("page number %q: %w", rest[0], err)
		}
		return command{name: "page", page: n}, nil
	case "sort":
		if len(rest) < 1 || len(rest) > 2 {
			return command{}, errors.New("usage: sort KEY [ORDER]")
		}
		key, err := types.ParseSortKey(rest[0])
		if err != nil {
			return command{}, err
		}
		c := command{name: "sort", key: key}
		if len(rest) == 2 {
			if c.order, err = types.ParseSortOrder(rest[1]); err != nil {
				return command{}, err
			}
			c.hasOrder = true
		}
		return c, nil
	case "search":
		text := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), fields[0]))
		return command{name: "search", text: text}, nil
	}
	return command{}, fmt.Errorf("%w %q (try 'help')", errUnknownCommand, fields[0])
}

// browser drives a session from line-oriented input.
type browser struct {
	s      *session.Session
	base   types.SearchFilters
	out    io.Writer
	format string
	opts   render.Options
}

func (b *browser) loop(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	b.prompt()
	for scanner.Scan() {
		c, err := parseCommand(scanner.Text())
		if err != nil {
			fmt.Fprintln(b.out, "Error:", err)
			b.prompt()
			continue
		}
		if c.name == "quit" {
			return nil
		}
		if c.name != "" {
			b.do(ctx, c)
		}
		b.prompt()
	}
	return scanner.Err()
}

func (b *browser) prompt() {
	if b.format == "cards" || b.format == "table" {
		fmt.Fprint(b.out, "> ")
	}
}

// do executes c and prints the outcome. Errors are printed, never returned,
// so one failed request does not end the browse loop.
func (b *browser) do(ctx context.Context, c command) {
	v := b.s.View()

	var outcome session.Outcome
	var err error
	switch c.name {
	case "help":
		fmt.Fprintln(b.out, strings.TrimSpace(browseHelp))
		return
	case "next":
		outcome, err = b.s.GoToPage(ctx, v.Page+1)
	case "prev":
		outcome, err = b.s.GoToPage(ctx, v.Page-1)
	case "page":
		outcome, err = b.s.GoToPage(ctx, c.page)
	case "sort":
		order := v.Sort.Order
		if c.hasOrder {
			order = c.order
		}
		outcome, err = b.s.ChangeSort(ctx, c.key, order)
	case "order":
		outcome, err = b.s.ChangeSort(ctx, v.Sort.Key, v.Sort.Order.Toggle())
	case "search":
		f := b.base
		if v.Filters != nil {
			f = *v.Filters
		}
		f.Query = c.text
		outcome, err = b.s.Search(ctx, f)
	}

	if err != nil {
		fmt.Fprintln(b.out, "Error:", err)
		return
	}
	switch outcome {
	case session.OutcomeNoResults:
		fmt.Fprintln(b.out, "No results found.")
	case session.OutcomeSortUpdated:
		nv := b.s.View()
		fmt.Fprintf(b.out, "Sort set to %s (%s).\n", nv.Sort.Key, nv.Sort.Order)
	case session.OutcomeResults:
		if err := printView(b.out, b.s.View(), b.format, b.opts); err != nil {
			fmt.Fprintln(b.out, "Error:", err)
		}
	}
}

const browseHelp = `
next, n              next page
prev, p              previous page
page N               jump to page N
sort KEY [ORDER]     sort by relevance, submitted or updated
order                toggle ascending/descending
search TEXT          new search with TEXT as the free-text filter
help                 list commands
quit, q              exit
`
