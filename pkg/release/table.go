package release

import (
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ruru-project/ruru/pkg/version"
)

// HistoryTable renders the most recent entries of the tag history, newest
// first, marking sequential steps. Limit caps the number of rows; zero or
// negative means all.
func HistoryTable(tags []string, limit int) string {
	if len(tags) == 0 {
		return ""
	}
	if limit <= 0 || limit > len(tags) {
		limit = len(tags)
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Tag", "Step"})

	for i := 0; i < limit; i++ {
		step := ""
		if i+1 < len(tags) {
			newer, errNewer := version.Parse(tags[i])
			older, errOlder := version.Parse(tags[i+1])
			switch {
			case errNewer != nil || errOlder != nil:
				step = "invalid"
			case version.IsNext(older, newer):
				step = "sequential"
			default:
				step = "gap"
			}
		}
		t.AppendRow(table.Row{i + 1, tags[i], step})
	}

	return t.Render()
}
