package display

import (
	"fmt"
	"strings"

	"gumball-machine/internal/machine"
)

const (
	Title    = "Mighty Gumball, Inc."
	Subtitle = "Java-enabled Standing Gumball Model #2004"
)

type Format string

const (
	FormatText Format = "text"
	FormatHTML Format = "html"
)

// Snapshotter is the read-only view of a machine needed to render a report.
type Snapshotter interface {
	InventoryCount() int
	StateLabel() string
}

type Report struct {
	Title    string
	Subtitle string
	Count    int
	Label    string
}

func NewReport(m Snapshotter) Report {
	return Report{
		Title:    Title,
		Subtitle: Subtitle,
		Count:    m.InventoryCount(),
		Label:    m.StateLabel(),
	}
}

func Text(r Report) string {
	var b strings.Builder
	b.WriteString(r.Title + "\n")
	b.WriteString(r.Subtitle + "\n")
	fmt.Fprintf(&b, "Inventory: %d gumballs\n", r.Count)
	b.WriteString(r.Label + "\n")
	return b.String()
}

// HTML renders the monitor markup. Text is written unescaped; every string
// shown here is a fixed machine message.
func HTML(r Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<div class=\"monitor\"><h1>%s</h1>\n", r.Title)
	fmt.Fprintf(&b, "<h2>%s</h2>\n", r.Subtitle)
	fmt.Fprintf(&b, "<p>Inventory: %d gumballs</p>\n", r.Count)
	fmt.Fprintf(&b, "<p class=\"message\">%s</p></div>\n", r.Label)
	return b.String()
}

func Render(r Report, format Format) string {
	if format == FormatHTML {
		return HTML(r)
	}
	return Text(r)
}

// Event renders a single machine notification. Like HTML, it writes the
// message unescaped.
func Event(ev machine.Event, format Format) string {
	if format == FormatHTML {
		return "<p class=\"action\">" + ev.Message + "</p>\n"
	}
	return ev.Message + "\n"
}
