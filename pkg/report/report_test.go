package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sw33tLie/bocheck/pkg/bonus"
)

func sample() Table {
	campaigns := []*bonus.Campaign{
		{Name: "A_CAMPAIGN", Amounts: []bonus.Amount{
			{Currency: "EUR", Value: "100"},
			{Currency: "USD", Value: "110"},
			{Currency: "PLN", Value: "0"},
			{Currency: "RUB", Value: "50"},
		}},
		nil,
		{Name: "B_CAMPAIGN", Amounts: []bonus.Amount{}},
	}
	converted := map[string]map[string]string{
		"A_CAMPAIGN": {"EUR": "100", "USD": "100", "PLN": "4,3"},
	}
	return Build(campaigns, converted, 5)
}

func TestBuild(t *testing.T) {
	want := Table{Threshold: 5, Sections: []Section{
		{Campaign: "A_CAMPAIGN", Rows: []Row{
			{Currency: "EUR", BO: "100", Converter: "100", Info: "Conv = BO", Status: Pass},
			{Currency: "USD", BO: "110", Converter: "100", Info: "BO > Conv by 10.00%", Status: Fail},
			{Currency: "PLN", BO: "0", Converter: "4,3"},
			{Currency: "RUB", BO: "50"},
		}},
		{Campaign: "B_CAMPAIGN"},
	}}
	if diff := cmp.Diff(want, sample()); diff != "" {
		t.Fatalf("unexpected table (-want +got):\n%s", diff)
	}
}

func TestRestyle(t *testing.T) {
	got := sample().Restyle(15)
	if got.Sections[0].Rows[1].Status != Pass {
		t.Fatalf("10%% deviation should pass a 15%% threshold")
	}
	pass, fail := got.Counts()
	if pass != 2 || fail != 0 {
		t.Fatalf("unexpected counts pass=%d fail=%d", pass, fail)
	}
}

func TestHTMLRoundTrip(t *testing.T) {
	in := sample()
	var buf bytes.Buffer
	if err := RenderHTML(&buf, in); err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}

	html := buf.String()
	for _, want := range []string{`colspan="5"`, `background-color: green`, `background-color: red`, `id="table-container"`} {
		if !strings.Contains(html, want) {
			t.Fatalf("rendered page is missing %s:\n%s", want, html)
		}
	}

	got, err := ParseHTML(&buf)
	if err != nil {
		t.Fatalf("ParseHTML: %v", err)
	}
	if diff := cmp.Diff(in, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestParseHTMLStyleOnly(t *testing.T) {
	page := `<table>
<tr><th colspan="5">X_CAMPAIGN</th></tr>
<tr><th>Cur</th><th>BO</th><th>Converter</th><th>Info</th><th>Result</th></tr>
<tr><td>USD</td><td>1</td><td>2</td><td>Conv > BO by 100.00%</td><td style="background-color: red;"></td></tr>
</table>`
	got, err := ParseHTML(strings.NewReader(page))
	if err != nil {
		t.Fatalf("ParseHTML: %v", err)
	}
	if len(got.Sections) != 1 || len(got.Sections[0].Rows) != 1 || got.Sections[0].Rows[0].Status != Fail {
		t.Fatalf("unexpected table %+v", got)
	}
}

func TestParseHTMLNoTable(t *testing.T) {
	if _, err := ParseHTML(strings.NewReader("<p>nothing</p>")); err == nil {
		t.Fatalf("expected an error")
	}
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderText(&buf, sample(), false); err != nil {
		t.Fatalf("RenderText: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"A_CAMPAIGN", "B_CAMPAIGN", "BO > Conv by 10.00%", "PASS", "FAIL"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output is missing %q:\n%s", want, out)
		}
	}
}

func TestBoard(t *testing.T) {
	var b Board
	b.Clear()
	if b.ClearVisible() {
		t.Fatalf("empty board must hide Clear")
	}

	b.Show(sample())
	b.Show(Table{Threshold: 20})
	tables := b.Tables()
	if len(tables) != 2 || !b.ClearVisible() {
		t.Fatalf("expected two tables, got %d", len(tables))
	}
	if tables[0].Sections[0].Rows[1].Status != Pass {
		t.Fatalf("earlier tables should be restyled with the latest threshold")
	}

	b.Clear()
	if len(b.Tables()) != 0 || b.ClearVisible() {
		t.Fatalf("board should be empty after Clear")
	}
}
