package projects

import "strings"

// CampaignMarker is the token every campaign code contains.
const CampaignMarker = "CAMPAIGN"

type Project struct {
	Name       string
	BaseURL    string
	Currencies []string
}

// CampaignURL returns the bonus-info endpoint for a campaign code.
func (p Project) CampaignURL(code string) string {
	return strings.TrimSuffix(p.BaseURL, "/") + "/api/bonus/info/" + code + "/" + CampaignMarker
}

func (p Project) HasCurrency(code string) bool {
	for _, c := range p.Currencies {
		if c == code {
			return true
		}
	}
	return false
}

// table is the fixed project configuration. It is not user-editable.
var table = []Project{
	{
		Name:    "AllRight",
		BaseURL: "https://allrightcasino.nascms.co",
		Currencies: []string{
			"ARS", "AUD", "AZN", "BRL", "CAD", "CHF", "CLP", "EUR", "GEL",
			"INR", "JPY", "KZT", "MXN", "NOK", "NZD", "PEN", "PLN", "RUB",
			"TRY", "USD", "ZAR",
		},
	},
	{
		Name:    "LuckyBird",
		BaseURL: "https://luckybirdcasino.nascms.co",
		Currencies: []string{
			"ARS", "AUD", "BRL", "CAD", "CHF", "CLP", "EUR", "INR", "JPY",
			"KZT", "MXN", "NOK", "NZD", "PEN", "PLN", "RUB", "TRY", "USD",
			"ZAR",
		},
	},
	{
		Name:    "Slottica",
		BaseURL: "https://slottica.nascms.co",
		Currencies: []string{
			"ARS", "AUD", "AZN", "BDT", "BRL", "CAD", "CHF", "CLP", "EUR",
			"INR", "JPY", "KZT", "MXN", "NOK", "NZD", "PEN", "PLN", "RUB",
			"TRY", "USD", "UZS", "ZAR",
		},
	},
	{
		Name:    "SlottyWay",
		BaseURL: "https://slottyway.nascms.co",
		Currencies: []string{
			"ARS", "AUD", "BRL", "CAD", "CHF", "CLP", "EUR", "INR", "JPY",
			"KZT", "MXN", "NOK", "NZD", "PEN", "PLN", "RUB", "TRY", "USD", "ZAR",
		},
	},
	{
		Name:    "Spinamba",
		BaseURL: "https://spinamba.nascms.co",
		Currencies: []string{
			"ARS", "AUD", "BRL", "CAD", "CHF", "CLP", "EUR", "INR", "JPY",
			"KZT", "MXN", "NOK", "NZD", "PEN", "PLN", "RUB", "TRY", "USD", "ZAR",
		},
	},
	{
		Name:    "SpinBounty",
		BaseURL: "https://spinbounty.nascms.co",
		Currencies: []string{
			"ARS", "AUD", "AZN", "BRL", "BTC", "CAD", "CHF", "CLP", "CZK",
			"EUR", "INR", "JPY", "KZT", "MXN", "NOK", "NZD", "PEN", "PLN",
			"RUB", "SEK", "TRY", "USD", "UZS", "ZAR",
		},
	},
	{
		Name:    "SuperCat",
		BaseURL: "https://redbox.nascms.co",
		Currencies: []string{
			"ARS", "AUD", "BRL", "CAD", "CHF", "CPL", "EUR", "KZT", "MXN",
			"NOK", "PEN", "PLN", "RUB", "TRY", "USD", "ZAR",
		},
	},
	{
		Name:       "Viks",
		BaseURL:    "https://viks.nascms.co",
		Currencies: []string{"EUR", "UZS"},
	},
	{
		Name:    "Magic365",
		BaseURL: "https://magic365.nascms.co",
		Currencies: []string{
			"ARS", "AUD", "AZN", "BRL", "CAD", "CHF", "CLP", "CZK", "EUR",
			"INR", "JPY", "KZT", "MXN", "NOK", "NZD", "PEN", "PLN", "RUB",
			"SEK", "TRY", "USD", "USZ", "ZAR",
		},
	},
	{
		Name:    "Spinado",
		BaseURL: "https://spinado.sofcms.co",
		Currencies: []string{
			"ARS", "AUD", "AZN", "BRL", "CAD", "CHF", "CLP", "EUR", "INR",
			"JPY", "KZT", "MXN", "NOK", "NZD", "PEN", "PLN", "RUB", "TRY",
			"USD", "UZS", "ZAR",
		},
	},
}

// All returns every known project in display order.
func All() []Project {
	out := make([]Project, len(table))
	copy(out, table)
	return out
}

// Names returns the project names in display order.
func Names() []string {
	names := make([]string, 0, len(table))
	for _, p := range table {
		names = append(names, p.Name)
	}
	return names
}

// Lookup finds a project by its exact name.
func Lookup(name string) (Project, bool) {
	for _, p := range table {
		if p.Name == name {
			return p, true
		}
	}
	return Project{}, false
}
