package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/bookkeeping"
	md "github.com/nao1215/markdown"
)

// BalanceMarkdown renders a balance report as a markdown table, one row per
// account, indented by hierarchy depth.
func BalanceMarkdown(r *bookkeeping.BalanceReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Balances on %s", r.On.Format("2006-01-02")))

	rows := make([][]string, 0, len(r.Lines))
	for _, line := range r.Lines {
		indent := strings.Repeat("  ", line.Depth)
		rows = append(rows, []string{
			indent + line.FullName,
			string(line.Type),
			line.Balance.String(),
			line.Rollup.String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Account", "Type", "Balance", "With Children"},
		Rows:   rows,
	})

	return doc.String()
}
