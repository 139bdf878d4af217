package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// RenderTable prints rows as a kubectl-style table.
func RenderTable(w io.Writer, headers []string, rows [][]string, noColor bool) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No results")
		return
	}

	colors := NewColorScheme(w, noColor)

	table := createTable(w)
	if colors.Disabled {
		table.SetHeader(headers)
	} else {
		coloredHeaders := make([]string, len(headers))
		for i, h := range headers {
			coloredHeaders[i] = colors.Header("%s", h)
		}
		table.SetHeader(coloredHeaders)
	}

	table.AppendBulk(rows)
	table.Render()
}

// RenderJSON prints v as indented JSON.
func RenderJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func createTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)

	// kubectl-style configuration
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)

	return table
}
