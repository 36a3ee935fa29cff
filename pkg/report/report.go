// Package report lays the fetched and scraped values out as comparison
// tables and renders them for the terminal and the browser.
package report

import (
	"github.com/sw33tLie/bocheck/pkg/bonus"
	"github.com/sw33tLie/bocheck/pkg/compare"
)

type Status int

const (
	Unstyled Status = iota
	Pass
	Fail
)

func (s Status) String() string {
	switch s {
	case Pass:
		return "pass"
	case Fail:
		return "fail"
	}
	return ""
}

var Headers = []string{"Cur", "BO", "Converter", "Info", "Result"}

type Row struct {
	Currency  string
	BO        string
	Converter string
	Info      string
	Status    Status
}

// Section is the block of rows of one campaign.
type Section struct {
	Campaign string
	Rows     []Row
}

type Table struct {
	Threshold float64
	Sections  []Section
}

// Build lays out one section per campaign, skipping nil campaigns, and
// scores every row against threshold.
func Build(campaigns []*bonus.Campaign, converted map[string]map[string]string, threshold float64) Table {
	t := Table{Threshold: threshold}
	for _, c := range campaigns {
		if c == nil {
			continue
		}
		sec := Section{Campaign: c.Name}
		for _, a := range c.Amounts {
			sec.Rows = append(sec.Rows, Row{
				Currency:  a.Currency,
				BO:        a.Value,
				Converter: converted[c.Name][a.Currency],
			})
		}
		t.Sections = append(t.Sections, sec)
	}
	return t.Restyle(threshold)
}

// Restyle scores every row again with threshold. Rows that cannot be
// scored keep their current info text and status.
func (t Table) Restyle(threshold float64) Table {
	out := Table{Threshold: threshold}
	if t.Sections != nil {
		out.Sections = make([]Section, len(t.Sections))
	}
	for i, sec := range t.Sections {
		var rows []Row
		if sec.Rows != nil {
			rows = make([]Row, len(sec.Rows))
		}
		for j, r := range sec.Rows {
			if d, ok := compare.Evaluate(r.BO, r.Converter, threshold); ok {
				r.Info = d.Label
				r.Status = Fail
				if d.Pass {
					r.Status = Pass
				}
			}
			rows[j] = r
		}
		out.Sections[i] = Section{Campaign: sec.Campaign, Rows: rows}
	}
	return out
}

// Counts returns the number of passing and failing rows.
func (t Table) Counts() (pass, fail int) {
	for _, sec := range t.Sections {
		for _, r := range sec.Rows {
			switch r.Status {
			case Pass:
				pass++
			case Fail:
				fail++
			}
		}
	}
	return pass, fail
}
