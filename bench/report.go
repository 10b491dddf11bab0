package bench

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

const (
	indexWidth  = 10
	columnWidth = 25
)

// seriesColors cycles per backend column.
var seriesColors = []color.Attribute{color.FgRed, color.FgMagenta, color.FgBlue, color.FgGreen, color.FgWhite}

func seconds(s float64) string {
	return humanize.SIWithDigits(s, 2, "s")
}

// WriteTable prints one row per index and one column per backend, followed by
// a per-backend summary.
func WriteTable(w io.Writer, r Report, colored bool) error {
	paint := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if !colored {
			c.DisableColor()
		}
		return c
	}
	header := paint(color.FgCyan)
	rule := paint(color.FgGreen)
	index := paint(color.FgYellow)

	width := indexWidth + columnWidth*len(r.Series)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%-*s", indexWidth, "n")
	for _, s := range r.Series {
		fmt.Fprintf(&sb, "%-*s", columnWidth, s.Backend+" time")
	}
	if _, err := header.Fprintln(w, strings.TrimRight(sb.String(), " ")); err != nil {
		return err
	}
	if _, err := rule.Fprintln(w, strings.Repeat("-", width)); err != nil {
		return err
	}

	for row, n := range r.Indices {
		if _, err := index.Fprintf(w, "%-*d", indexWidth, n); err != nil {
			return err
		}
		for col, s := range r.Series {
			cell := "-"
			if row < len(s.Samples) {
				cell = seconds(s.Samples[row].Duration().Seconds())
			}
			c := paint(seriesColors[col%len(seriesColors)])
			if _, err := c.Fprintf(w, "%-*s", columnWidth, cell); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	if _, err := rule.Fprintln(w, strings.Repeat("-", width)); err != nil {
		return err
	}
	for col, s := range r.Series {
		c := paint(seriesColors[col%len(seriesColors)])
		_, err := c.Fprintf(w, "%s: total %s, %s lookups, %s computed\n",
			s.Backend,
			seconds(s.Total().Seconds()),
			humanize.Comma(int64(s.Calls)),
			humanize.Comma(int64(s.Computed)),
		)
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "run %s finished in %s\n", r.RunID, seconds(r.Span.Duration().Seconds()))
	return err
}
