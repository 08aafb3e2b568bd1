package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/katalvlaran/calibrate/aggregate"
	"github.com/katalvlaran/calibrate/search"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// renderTotals prints part 1 then part 2, one per line.
func renderTotals(w io.Writer, totals aggregate.Totals) error {
	if _, err := fmt.Fprintln(w, totals.Part1); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, totals.Part2)
	return err
}

// cell renders a search result as its expression or a marker.
func cell(res search.Result, operands []int64) string {
	if !res.Satisfiable {
		return failStyle.Render("-")
	}
	return okStyle.Render(res.Expression(operands))
}

func renderTable(w io.Writer, reports []aggregate.Report, totals aggregate.Totals) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"#", "Target", "Operands", "+ *", "+ * ||"})
	for _, r := range reports {
		ops := r.Equation.View()
		t.AppendRow(table.Row{r.Line, r.Equation.Target, fmt.Sprint(ops), cell(r.Plain, ops), cell(r.Concat, ops)})
	}
	t.AppendFooter(table.Row{"", "", "Total", totals.Part1, totals.Part2})

	t.Render()
	return nil
}

type jsonEquation struct {
	Line     int     `json:"line"`
	Target   int64   `json:"target"`
	Operands []int64 `json:"operands"`
	Part1    string  `json:"part1,omitempty"`
	Part2    string  `json:"part2,omitempty"`
}

type jsonOutput struct {
	aggregate.Totals
	Equations []jsonEquation `json:"equations"`
}

func renderJSON(w io.Writer, reports []aggregate.Report, totals aggregate.Totals) error {
	doc := jsonOutput{Totals: totals, Equations: make([]jsonEquation, 0, len(reports))}
	for _, r := range reports {
		ops := r.Equation.Operands()
		doc.Equations = append(doc.Equations, jsonEquation{
			Line:     r.Line,
			Target:   r.Equation.Target,
			Operands: ops,
			Part1:    r.Plain.Expression(ops),
			Part2:    r.Concat.Expression(ops),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
