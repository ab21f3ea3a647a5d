package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/bookkeeping"
	md "github.com/nao1215/markdown"
)

// ScheduleMarkdown renders a schedule status report as a markdown table.
func ScheduleMarkdown(r *bookkeeping.ScheduleReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Scheduled Actions on %s", r.On.Format("2006-01-02")))
	if len(r.Lines) == 0 {
		doc.PlainText("No scheduled actions.")
		return doc.String()
	}

	rows := make([][]string, 0, len(r.Lines))
	for _, line := range r.Lines {
		lastRun := "-"
		if !line.LastRunTime.IsZero() {
			lastRun = line.LastRunTime.Format("2006-01-02")
		}
		due := ""
		if line.Due {
			due = "yes"
		}
		rows = append(rows, []string{
			line.Tag,
			line.State.String(),
			due,
			line.Repeat,
			lastRun,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Tag", "State", "Due", "Repeat", "Last Run"},
		Rows:   rows,
	})

	return doc.String()
}
