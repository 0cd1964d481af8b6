// Package render writes a human readable, optionally colourised view of a
// service's schedule to a terminal.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"golang.org/x/exp/slices"

	"github.com/railquery/railquery/pkg/ldbsv"
	"github.com/railquery/railquery/pkg/util"
)

// 256 colour palette entries.
const (
	colourGrey      = 247
	colourHere      = 155
	colourLate      = 220
	colourCancelled = 203
	colourScheduled = 183
	colourPurple    = 140
)

const (
	glyphCall      = "●"
	glyphLine      = "│"
	glyphPass      = "│"
	glyphCross     = "⨯"
	glyphOrigin    = "◯"
	glyphArrow     = "⟶"
	indent         = "    "
	maxNameLength  = 42
	clockLayout    = "15:04"
	dateOnlyLayout = "2006-01-02"
)

type styler struct {
	enabled bool
}

func (s styler) paint(colour int, text string) string {
	if !s.enabled {
		return text
	}

	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", colour, text)
}

func (s styler) bold(text string) string {
	if !s.enabled {
		return text
	}

	return fmt.Sprintf("\x1b[1m%s\x1b[0m", text)
}

// Write renders the schedule to w. Colour is used when w is a terminal and
// NO_COLOR is unset.
func Write(w io.Writer, details *ldbsv.ServiceDetails) error {
	style := styler{enabled: colourable(w)}

	var b strings.Builder

	b.WriteString("Service " + style.bold(details.RID) + "\n")
	b.WriteString(style.paint(colourGrey, "TSDB ") + style.bold(details.UID) + "\n")

	rsid := details.RSID
	if rsid == "" {
		rsid = "unknown"
	}
	b.WriteString(style.paint(colourGrey, "RSID ") + style.bold(rsid) + "\n")

	b.WriteString(style.paint(colourGrey, "Headcode ") + style.bold(details.TrainID) + "\n")
	b.WriteString(style.paint(colourGrey, "Departs ") + style.paint(colourPurple, details.ScheduledDepartureDate.Format(dateOnlyLayout)) + "\n")
	b.WriteString(style.paint(colourGrey, "Type ") + style.paint(colourPurple, categoryName(details.Category)) + style.paint(colourGrey, fmt.Sprintf(" (%s)", details.Category)) + "\n")
	b.WriteString(style.paint(colourGrey, "Operated by ") + style.paint(colourPurple, details.Operator) + style.paint(colourGrey, fmt.Sprintf(" (%s)", details.OperatorCode)) + "\n")

	if details.CancelReason != "" {
		b.WriteString(style.paint(colourCancelled, "Cancelled: "+details.CancelReason) + "\n")
	}

	if details.DelayReason != "" {
		b.WriteString(style.paint(colourLate, "Delayed: "+details.DelayReason) + "\n")
	}

	b.WriteString("\n")

	for _, location := range details.Locations {
		writeLocation(&b, style, location)
	}

	_, err := io.WriteString(w, b.String())

	return err
}

func writeLocation(b *strings.Builder, style styler, location ldbsv.ServiceLocation) {
	name := util.TrimString(location.Location.Name, maxNameLength)
	if location.Location.CRS != "" {
		name = fmt.Sprintf("%s [%s]", name, location.Location.CRS)
	}

	glyph := glyphCall
	colour := colourHere

	switch {
	case location.Cancelled:
		glyph = glyphCross
		colour = colourCancelled
	case location.Pass:
		glyph = glyphPass
		colour = colourGrey
	case slices.Contains(location.Activities, ldbsv.ActivityTrainBegins):
		glyph = glyphOrigin
	}

	line := style.paint(colour, glyph) + " " + style.bold(name)

	if location.Platform != 0 {
		platform := fmt.Sprintf("plat %d", location.Platform)
		if location.PlatformHidden {
			platform += " (hidden)"
		}

		line += " " + style.paint(colourGrey, platform)
	}

	if location.FalseDestination != nil {
		line += " " + style.paint(colourGrey, "shown as "+glyphArrow+" "+location.FalseDestination.Name)
	}

	b.WriteString(line + "\n")

	if timing := location.Time.Arrival; timing != nil {
		b.WriteString(indent + timingLine(style, "arr", *timing) + "\n")
	}

	if timing := location.Time.Departure; timing != nil {
		b.WriteString(indent + timingLine(style, "dep", *timing) + "\n")
	}

	for _, activity := range location.Activities {
		if activity == ldbsv.ActivityNone {
			continue
		}

		b.WriteString(indent + style.paint(colourGrey, activityName(activity)) + "\n")
	}

	for _, alert := range location.AdhocAlerts {
		b.WriteString(indent + style.paint(colourLate, alert) + "\n")
	}

	b.WriteString(style.paint(colourGrey, glyphLine) + "\n")
}

func timingLine(style styler, label string, timing ldbsv.Timing) string {
	line := style.paint(colourGrey, label+" ") + style.paint(colourScheduled, timing.Scheduled.Format(clockLayout))

	if timing.Effective != nil {
		line += style.paint(colourGrey, " "+glyphArrow+" ") + style.bold(timing.Effective.Format(clockLayout))
	}

	switch timing.Forecast {
	case ldbsv.ForecastActual:
		line += style.paint(colourGrey, " (actual)")
	case ldbsv.ForecastEstimated:
		line += style.paint(colourGrey, " (estimated)")
	case ldbsv.ForecastDelayed:
		line += style.paint(colourLate, " (delayed)")
	case ldbsv.ForecastNoLog, ldbsv.ForecastNoReport:
		line += style.paint(colourGrey, " (no report)")
	}

	if punctuality, ok := timing.Punctuality(); ok {
		lateness, _ := timing.Lateness()

		switch punctuality {
		case ldbsv.PunctualityLate:
			line += style.paint(colourLate, fmt.Sprintf(" %s late", lateness.Round(time.Minute)))
		case ldbsv.PunctualityEarly:
			line += style.paint(colourHere, fmt.Sprintf(" %s early", (-lateness).Round(time.Minute)))
		case ldbsv.PunctualityOnTime:
			line += style.paint(colourHere, " on time")
		}
	}

	return line
}

func colourable(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
