package helpers

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"

	"github.com/doeshing/tams-go/internal/domain"
	"github.com/doeshing/tams-go/internal/view"
)

// Output renders command results. Colour is only used when the writer is a terminal.
type Output struct {
	w    io.Writer
	good *color.Color
	bad  *color.Color
	warn *color.Color
	dim  *color.Color
	bold *color.Color
}

// NewOutput wraps w.
func NewOutput(w io.Writer) *Output {
	o := &Output{
		w:    w,
		good: color.New(color.FgGreen),
		bad:  color.New(color.FgRed),
		warn: color.New(color.FgYellow),
		dim:  color.New(color.Faint),
		bold: color.New(color.Bold),
	}
	if !IsTerminal(w) || color.NoColor {
		for _, c := range []*color.Color{o.good, o.bad, o.warn, o.dim, o.bold} {
			c.DisableColor()
		}
	}
	return o
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Writer exposes the underlying writer.
func (o *Output) Writer() io.Writer { return o.w }

// Notice prints a tagged outcome message.
func (o *Output) Notice(n domain.Notice) {
	if n.Empty() {
		return
	}
	if n.Success {
		o.good.Fprintf(o.w, "✓ %s\n", n.Text)
		return
	}
	o.bad.Fprintf(o.w, "✗ %s\n", n.Text)
}

// Health prints the backend badge.
func (o *Output) Health(base string, h domain.BackendHealth, status domain.HealthStatus) {
	badge := o.warn.Sprint(h.String())
	switch h {
	case domain.HealthHealthy:
		badge = o.good.Sprint(h.String())
	case domain.HealthUnhealthy:
		badge = o.bad.Sprint(h.String())
	}
	fmt.Fprintf(o.w, "Backend %s: %s", base, badge)
	if status.Region != "" {
		fmt.Fprintf(o.w, " (%s)", status.Region)
	}
	fmt.Fprintln(o.w)
}

// Identity prints who is signed in and what their dashboard offers.
func (o *Output) Identity(id domain.Identity, kind view.Kind) {
	fmt.Fprintf(o.w, "Signed in as %s (%s)\n", o.bold.Sprint(id.DisplayName()), id.Role)
	fmt.Fprintf(o.w, "Dashboard: %s\n", kind)
	names := make([]string, 0, 4)
	for _, w := range view.Widgets(kind) {
		names = append(names, string(w))
	}
	if len(names) > 0 {
		fmt.Fprintf(o.w, "Widgets: %s\n", strings.Join(names, ", "))
	}
}

// Specialists prints search results as a table.
func (o *Output) Specialists(results []domain.Specialist) {
	if len(results) == 0 {
		return
	}
	table := o.table([]string{"Name", "Specialty", "Location"})
	for _, s := range results {
		table.Append([]string{s.Name, s.Specialty, s.Location})
	}
	table.Render()
}

// History prints journal records, newest first.
func (o *Output) History(records []domain.CallRecord, now time.Time) {
	table := o.table([]string{"When", "Operation", "Status", "Result", "Duration", "Request"})
	for _, rec := range records {
		result := "ok"
		if !rec.Success {
			result = string(rec.FailureKind)
			if rec.Message != "" {
				result += ": " + rec.Message
			}
		}
		status := "-"
		if rec.StatusCode != 0 {
			status = strconv.Itoa(rec.StatusCode)
		}
		table.Append([]string{
			humanize.RelTime(rec.Timestamp, now, "ago", "from now"),
			rec.Method + " " + rec.Operation,
			status,
			result,
			fmt.Sprintf("%s ms", humanize.Comma(rec.DurationMS)),
			shortID(rec.RequestID),
		})
	}
	table.Render()
}

// Report prints diagnostic checks.
func (o *Output) Report(report domain.DiagnosticReport) {
	for _, check := range report.Checks {
		label := strings.ToUpper(string(check.Status))
		switch check.Status {
		case domain.CheckOK:
			label = o.good.Sprint(label)
		case domain.CheckWarn:
			label = o.warn.Sprint(label)
		case domain.CheckError:
			label = o.bad.Sprint(label)
		}
		fmt.Fprintf(o.w, "[%s] %s - %s\n", label, check.Name, check.Details)
	}
}

// Dim prints secondary information.
func (o *Output) Dim(format string, args ...interface{}) {
	o.dim.Fprintf(o.w, format+"\n", args...)
}

func (o *Output) table(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(o.w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetHeaderLine(true)
	table.SetColumnSeparator(" ")
	return table
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
