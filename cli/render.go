package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"readarrbridge.app/bridge/model"
)

const (
	OutputTable = "table"
	OutputJSON  = "json"
)

func validateOutput(format string) error {
	switch format {
	case OutputTable, OutputJSON:
		return nil
	default:
		return fmt.Errorf("invalid output format %q", format)
	}
}

func renderJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	style := table.StyleLight
	style.Options.DrawBorder = false
	t.SetStyle(style)
	return t
}

func renderRequests(w io.Writer, format string, requests []model.RequestSummary) error {
	if format == OutputJSON {
		return renderJSON(w, requests)
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"ID", "Received", "Title", "Authors", "Status", "Added Book"})
	for _, r := range requests {
		t.AppendRow(table.Row{
			r.ID,
			r.ReceivedAt.Local().Format(time.DateTime),
			r.BookTitle,
			r.BookAuthors,
			r.Status,
			addedBook(r.AddedBookID, r.AddedBookTitle),
		})
	}
	t.Render()
	return nil
}

func renderRequest(w io.Writer, format string, r *model.Request) error {
	if format == OutputJSON {
		return renderJSON(w, r)
	}

	t := newTable(w)
	t.AppendRows([]table.Row{
		{"ID", r.ID},
		{"Received", r.ReceivedAt.Local().Format(time.DateTime)},
		{"Title", r.BookTitle},
		{"Authors", r.BookAuthors},
		{"Status", r.Status},
		{"Added Book", addedBook(r.AddedBookID, r.AddedBookTitle)},
		{"Removable", r.Removable()},
		{"Monitored", optionalBool(r.Monitored)},
		{"Error", optionalString(r.ErrorMessage)},
		{"Processed", optionalTime(r.ProcessedAt)},
		{"Request Body", string(r.RequestBody)},
		{"Response", string(r.ResponseJSON)},
	})
	t.Render()
	return nil
}

func renderAction(w io.Writer, format, verb string, id int64, result *ActionResult) error {
	if format == OutputJSON {
		return renderJSON(w, result)
	}

	if !result.Success {
		_, err := fmt.Fprintf(w, "request %d: %s failed: %s\n", id, verb, result.Error)
		return err
	}
	if result.Outcome != nil && result.Outcome.Status == model.RequestStatusPending {
		_, err := fmt.Fprintf(w, "request %d: %s dispatched\n", id, verb)
		return err
	}
	_, err := fmt.Fprintf(w, "request %d: %s succeeded\n", id, verb)
	return err
}

func renderCaches(w io.Writer, format string, caches []model.CacheInfo) error {
	if format == OutputJSON {
		return renderJSON(w, caches)
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"ID", "Name", "Keys", "Hits", "Misses"})
	for _, c := range caches {
		t.AppendRow(table.Row{c.ID, c.Name, c.Stats.Keys, c.Stats.Hits, c.Stats.Misses})
	}
	t.Render()
	return nil
}

func addedBook(id *int64, title *string) string {
	if id == nil {
		return "-"
	}
	s := strconv.FormatInt(*id, 10)
	if title != nil {
		s += " " + *title
	}
	return s
}

func optionalString(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func optionalBool(b *bool) string {
	if b == nil {
		return "-"
	}
	return strconv.FormatBool(*b)
}

func optionalTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Local().Format(time.DateTime)
}
