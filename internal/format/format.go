package format

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// listSeparator joins rendered list elements. All supported platforms use
// "\n" as the line separator.
const listSeparator = "\n"

// framedStyle mirrors the classic client output: dotted horizontal rules with
// colon borders and junctions around a framed table.
var framedStyle = table.Style{
	Name: "framed",
	Box: table.BoxStyle{
		BottomLeft:       ":",
		BottomRight:      ":",
		BottomSeparator:  ":",
		Left:             ":",
		LeftSeparator:    ":",
		MiddleHorizontal: ".",
		MiddleSeparator:  ":",
		MiddleVertical:   ":",
		PaddingLeft:      " ",
		PaddingRight:     " ",
		Right:            ":",
		RightSeparator:   ":",
		TopLeft:          ":",
		TopRight:         ":",
		TopSeparator:     ":",
	},
	Format: table.FormatOptions{
		Header: text.FormatDefault,
		Row:    text.FormatDefault,
	},
	Options: table.Options{
		DrawBorder:      true,
		SeparateColumns: true,
		SeparateHeader:  true,
		SeparateRows:    false,
	},
}

// rawStyle drops every border glyph so the output can be piped and cut.
var rawStyle = table.Style{
	Name: "raw",
	Box: table.BoxStyle{
		MiddleVertical: " ",
		PaddingLeft:    "",
		PaddingRight:   "",
	},
	Format: table.FormatOptions{
		Header: text.FormatDefault,
		Row:    text.FormatDefault,
	},
	Options: table.Options{
		DrawBorder:      false,
		SeparateColumns: true,
		SeparateHeader:  false,
		SeparateRows:    false,
	},
}

// Output renders a displayable value according to the requested mode.
// Unknown modes render like ModeTable.
func Output(v Value, mode Mode) string {
	switch val := v.(type) {
	case nil:
		return ""
	case Text:
		return string(val)
	case *Table:
		if mode == ModeRaw {
			return renderRaw(val)
		}
		return renderFramed(val)
	case FormattedItem:
		if mode == ModeRaw {
			return fmt.Sprint(val.Value)
		}
		return val.Formatted
	case List:
		parts := make([]string, len(val))
		for i, elem := range val {
			parts[i] = Output(elem, mode)
		}
		return Output(Text(strings.Join(parts, listSeparator)), mode)
	case Raw:
		return fmt.Sprint(val.V)
	default:
		return fmt.Sprint(v)
	}
}

func renderFramed(t *Table) string {
	tw := table.NewWriter()
	tw.SetStyle(framedStyle)

	header := make(table.Row, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = col
	}
	tw.AppendHeader(header)

	for _, row := range t.Rows {
		tw.AppendRow(cellsToRow(t.Columns, row, ModeTable))
	}
	return tw.Render()
}

func renderRaw(t *Table) string {
	tw := table.NewWriter()
	tw.SetStyle(rawStyle)

	for _, row := range t.Rows {
		tw.AppendRow(cellsToRow(t.Columns, row, ModeRaw))
	}

	columnConfigs := make([]table.ColumnConfig, 0, len(t.Columns))
	for i := range t.Columns {
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number: i + 1,
			Align:  text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

// cellsToRow renders each cell recursively so nested tables, items, and
// lists bottom out at text before the table writer sees them.
func cellsToRow(columns []string, row []Value, mode Mode) table.Row {
	out := make(table.Row, len(columns))
	for i := range columns {
		if i < len(row) {
			out[i] = Output(row[i], mode)
		} else {
			out[i] = ""
		}
	}
	return out
}
