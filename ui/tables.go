package ui

import (
	"io"
	"pressure-lab/domain"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

type lookupFunc func(id string) (domain.Unit, bool)

// NewTable is a borderless, left-aligned table shared by the CLI and the inspection tool.
func NewTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
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
	return table
}

func renderUnits(w io.Writer, units []domain.Unit) {
	table := NewTable(w, []string{"ID", "Name", "Symbol", "Pascal"})
	for _, u := range units {
		table.Append([]string{u.ID, u.DisplayName, u.Symbol, strconv.FormatFloat(u.FactorToBase, 'g', -1, 64)})
	}
	table.Render()
}

func renderHistory(w io.Writer, entries []domain.HistoryEntry, lookup lookupFunc) {
	table := NewTable(w, []string{"Time", "Input", "Units", "Result"})
	for _, row := range historyRows(entries, lookup) {
		table.Append(row)
	}
	table.Render()
}

// historyRows falls back to the raw unit id for a unit the registry no longer knows.
func historyRows(entries []domain.HistoryEntry, lookup lookupFunc) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		fromSymbol, fromName := entry.From, entry.From
		if u, ok := lookup(entry.From); ok {
			fromSymbol, fromName = u.Symbol, u.DisplayName
		}
		toSymbol, toName := entry.To, entry.To
		if u, ok := lookup(entry.To); ok {
			toSymbol, toName = u.Symbol, u.DisplayName
		}
		rows = append(rows, []string{
			domain.FormatTimestamp(entry.Timestamp),
			domain.FormatForDisplay(entry.Value) + " " + fromSymbol,
			fromName + " → " + toName,
			domain.FormatForDisplay(entry.Result) + " " + toSymbol,
		})
	}
	return rows
}
