// Package render writes view projections for a terminal or as JSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/preston-bernstein/triple-crown/internal/domain/seasons"
	"github.com/preston-bernstein/triple-crown/internal/views"
)

// Status lines shown in place of rows.
const (
	StatusLoadError  = "Error loading seasons."
	StatusNoSeasons  = "No seasons yet."
	StatusAllSkipped = "No season files could be loaded."
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat maps a flag value to a Format. Empty means text.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text or json)", raw)
	}
}

// Page is one rendered view: a status line, rows, or both.
type Page struct {
	View    string   `json:"view"`
	LoadID  string   `json:"loadId,omitempty"`
	Status  string   `json:"status,omitempty"`
	Skipped []string `json:"skipped,omitempty"`
	Rows    any      `json:"rows"`
}

// Renderer writes pages in one format.
type Renderer struct {
	w      io.Writer
	format Format
}

// New returns a Renderer writing to w. An unknown format falls back to text.
func New(w io.Writer, format Format) *Renderer {
	if format != FormatJSON {
		format = FormatText
	}
	return &Renderer{w: w, format: format}
}

// Table writes the results table.
func (r *Renderer) Table(p Page, rows []views.TableRow) error {
	if rows == nil {
		rows = []views.TableRow{}
	}
	p.View, p.Rows = "table", rows
	if r.format == FormatJSON {
		return r.writeJSON(p)
	}
	return r.writeText(p, len(rows), func(tw io.Writer) {
		header := []string{"Season"}
		for _, d := range []seasons.DivisionName{seasons.Boys, seasons.Girls} {
			for _, e := range seasons.Events {
				header = append(header, d.Title()+" "+e.Title())
			}
		}
		fmt.Fprintln(tw, strings.Join(header, "\t")+"\t")
		for _, row := range rows {
			cells := append([]string{row.Season}, row.Cells()...)
			fmt.Fprintln(tw, strings.Join(cells, "\t")+"\t"+row.Badge)
		}
	})
}

// History writes the history list.
func (r *Renderer) History(p Page, entries []views.HistoryEntry) error {
	if entries == nil {
		entries = []views.HistoryEntry{}
	}
	p.View, p.Rows = "history", entries
	if r.format == FormatJSON {
		return r.writeJSON(p)
	}
	return r.writeText(p, len(entries), func(tw io.Writer) {
		for _, e := range entries {
			fmt.Fprintf(tw, "%s\t%s\n", e.Season, e.BadgeText)
			fmt.Fprintf(tw, "\t%s\n", divisionText(e.Boys))
			fmt.Fprintf(tw, "\t%s\n", divisionText(e.Girls))
		}
	})
}

// Timeline writes the timeline: boys, season, girls.
func (r *Renderer) Timeline(p Page, rows []views.TimelineRow) error {
	if rows == nil {
		rows = []views.TimelineRow{}
	}
	p.View, p.Rows = "timeline", rows
	if r.format == FormatJSON {
		return r.writeJSON(p)
	}
	return r.writeText(p, len(rows), func(tw io.Writer) {
		fmt.Fprintln(tw, "Boys\tSeason\tGirls")
		for _, row := range rows {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", timelineText(row.Boys), row.Year, timelineText(row.Girls))
		}
	})
}

// Manifest reports a rebuilt manifest.
func (r *Renderer) Manifest(m seasons.Manifest, changed bool) error {
	if r.format == FormatJSON {
		return r.writeJSON(struct {
			View    string   `json:"view"`
			Files   []string `json:"files"`
			Changed bool     `json:"changed"`
		}{View: "index", Files: nonNil(m.Files), Changed: changed})
	}
	state := "unchanged"
	if changed {
		state = "updated"
	}
	if _, err := fmt.Fprintf(r.w, "%s %s: %d season files\n", seasons.ManifestFile, state, len(m.Files)); err != nil {
		return err
	}
	for _, name := range m.Files {
		if _, err := fmt.Fprintf(r.w, "  %s\n", name); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) writeJSON(payload any) error {
	enc := json.NewEncoder(r.w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func (r *Renderer) writeText(p Page, n int, body func(io.Writer)) error {
	if p.Status != "" {
		if _, err := fmt.Fprintln(r.w, p.Status); err != nil {
			return err
		}
	}
	for _, name := range p.Skipped {
		if _, err := fmt.Fprintf(r.w, "skipped: %s\n", name); err != nil {
			return err
		}
	}
	if n == 0 {
		return nil
	}
	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
	body(tw)
	return tw.Flush()
}

func divisionText(line views.DivisionLine) string {
	parts := make([]string, 0, len(line.Events))
	for _, e := range line.Events {
		parts = append(parts, fmt.Sprintf("%s (%s)", e.School, e.Event))
	}
	return line.Division + ": " + strings.Join(parts, ", ")
}

func timelineText(side views.TimelineSide) string {
	if side.Win {
		return "🏆 " + side.Name
	}
	return side.Name
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
