package props

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// Table formats the properties as a markdown table with one row per property,
// in key order.
func (p *Props) Table() string {
	if p.Len() == 0 {
		return "_No props_"
	}

	tableString := &strings.Builder{}

	alignment := []tw.Align{tw.AlignNone, tw.AlignNone, tw.AlignNone}
	table := tablewriter.NewTable(tableString,
		tablewriter.WithRenderer(renderer.NewMarkdown()),
		tablewriter.WithAlignment(alignment),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)

	table.Header([]string{"Name", "Kind", "Value"})
	for k, v := range p.All() {
		table.Append([]string{k, v.Kind().String(), v.String()})
	}
	table.Render()

	tableString.WriteString(fmt.Sprintf("\n_%d props_\n", p.Len()))
	return tableString.String()
}
