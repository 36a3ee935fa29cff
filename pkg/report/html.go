package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

var statusColors = map[Status]string{
	Pass: "green",
	Fail: "red",
}

// TableNode renders t the way the results panel shows it.
func TableNode(t Table) g.Node {
	var rows []g.Node
	for _, sec := range t.Sections {
		rows = append(rows,
			h.Tr(h.Th(g.Attr("colspan", "5"), g.Text(sec.Campaign))),
			h.Tr(g.Map(Headers, func(name string) g.Node { return h.Th(g.Text(name)) })),
		)
		for _, r := range sec.Rows {
			rows = append(rows, rowNode(r))
		}
	}
	return h.Table(
		g.Attr("border", "1"),
		g.Attr("cellpadding", "5"),
		g.Attr("data-threshold", strconv.FormatFloat(t.Threshold, 'g', -1, 64)),
		g.Group(rows),
	)
}

func rowNode(r Row) g.Node {
	result := []g.Node{}
	if color, ok := statusColors[r.Status]; ok {
		result = append(result, h.Class(r.Status.String()), h.Style("background-color: "+color))
	}
	return h.Tr(
		h.Td(g.Text(r.Currency)),
		h.Td(g.Text(r.BO)),
		h.Td(g.Text(r.Converter)),
		h.Td(g.Text(r.Info)),
		h.Td(result...),
	)
}

// Document wraps t in a standalone HTML page.
func Document(t Table) g.Node {
	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		h.HTML(
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.TitleEl(g.Text("bocheck report")),
			),
			h.Body(
				h.Div(h.ID("table-container"), TableNode(t)),
			),
		),
	})
}

// RenderHTML writes t as a standalone HTML page.
func RenderHTML(w io.Writer, t Table) error {
	return Document(t).Render(w)
}

// ParseHTML reads back the first table of a rendered report.
func ParseHTML(r io.Reader) (Table, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Table{}, fmt.Errorf("parse report: %w", err)
	}

	tbl := doc.Find("table").First()
	if tbl.Length() == 0 {
		return Table{}, fmt.Errorf("parse report: no table found")
	}

	var t Table
	if v, ok := tbl.Attr("data-threshold"); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			t.Threshold = f
		}
	}

	tbl.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		ths := tr.Find("th")
		tds := tr.Find("td")
		switch {
		case ths.Length() == 1 && tds.Length() == 0:
			t.Sections = append(t.Sections, Section{Campaign: strings.TrimSpace(ths.Text())})
		case tds.Length() >= 5 && len(t.Sections) > 0:
			cell := func(i int) string { return strings.TrimSpace(tds.Eq(i).Text()) }
			sec := &t.Sections[len(t.Sections)-1]
			sec.Rows = append(sec.Rows, Row{
				Currency:  cell(0),
				BO:        cell(1),
				Converter: cell(2),
				Info:      cell(3),
				Status:    parseStatus(tds.Eq(4)),
			})
		}
	})
	return t, nil
}

func parseStatus(s *goquery.Selection) Status {
	switch {
	case s.HasClass("pass"):
		return Pass
	case s.HasClass("fail"):
		return Fail
	}
	style, _ := s.Attr("style")
	style = strings.ToLower(style)
	switch {
	case strings.Contains(style, "green"):
		return Pass
	case strings.Contains(style, "red"):
		return Fail
	}
	return Unstyled
}
