package projects

import "testing"

func TestTableShape(t *testing.T) {
	all := All()
	if len(all) != 10 {
		t.Fatalf("expected 10 projects, got %d", len(all))
	}
	for _, p := range all {
		if p.BaseURL == "" || len(p.Currencies) == 0 {
			t.Fatalf("project %s is missing a base URL or currencies", p.Name)
		}
		seen := make(map[string]bool)
		for _, c := range p.Currencies {
			if c == "" {
				t.Fatalf("project %s has an empty currency code", p.Name)
			}
			if seen[c] {
				t.Fatalf("project %s lists %s twice", p.Name, c)
			}
			seen[c] = true
		}
	}
}

func TestCampaignURL(t *testing.T) {
	p, ok := Lookup("Spinado")
	if !ok {
		t.Fatalf("Spinado not found")
	}
	want := "https://spinado.sofcms.co/api/bonus/info/SUMMER_CAMPAIGN/CAMPAIGN"
	if got := p.CampaignURL("SUMMER_CAMPAIGN"); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := Lookup("Choise project"); ok {
		t.Fatalf("placeholder must not resolve to a project")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	all[0].Name = "mutated"
	if _, ok := Lookup("AllRight"); !ok {
		t.Fatalf("mutating All() result leaked into the table")
	}
}
