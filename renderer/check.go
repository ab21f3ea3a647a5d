package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/bookkeeping"
	md "github.com/nao1215/markdown"
)

// ImbalanceMarkdown renders an imbalance report. A sound book renders as a
// single all-clear line.
func ImbalanceMarkdown(r *bookkeeping.ImbalanceReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Imbalanced Transactions")
	if len(r.Lines) == 0 {
		doc.PlainText("All transactions balance.")
		return doc.String()
	}

	rows := make([][]string, 0, len(r.Lines))
	for _, line := range r.Lines {
		rows = append(rows, []string{
			line.Timestamp.Format("2006-01-02"),
			line.Description,
			line.Imbalance.SignedString(),
			line.TransactionUID,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Date", "Description", "Imbalance", "UID"},
		Rows:   rows,
	})
	doc.PlainText(fmt.Sprintf("%d transaction(s) out of balance.", len(r.Lines)))

	return doc.String()
}
