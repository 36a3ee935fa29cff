package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// RenderText writes one rounded table per campaign to w.
func RenderText(w io.Writer, t Table, color bool) error {
	for i, sec := range t.Sections {
		tw := table.NewWriter()
		tw.SetTitle(sec.Campaign)

		header := table.Row{}
		for _, h := range Headers {
			header = append(header, h)
		}
		tw.AppendHeader(header)

		for _, r := range sec.Rows {
			tw.AppendRow(table.Row{r.Currency, r.BO, r.Converter, r.Info, resultCell(r.Status, color)})
		}
		tw.SetStyle(table.StyleRounded)

		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, tw.Render()); err != nil {
			return err
		}
	}
	return nil
}

func resultCell(s Status, color bool) string {
	label := ""
	var c text.Colors
	switch s {
	case Pass:
		label, c = "PASS", text.Colors{text.BgGreen, text.FgBlack}
	case Fail:
		label, c = "FAIL", text.Colors{text.BgRed, text.FgWhite}
	}
	if !color || label == "" {
		return label
	}
	return c.Sprint(label)
}
