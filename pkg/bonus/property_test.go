package bonus

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tidwall/gjson"
)

func TestFindPropertyPriority(t *testing.T) {
	doc := gjson.Parse(`{"data":{"freeSpinPrice":{"EUR":1},"totalBetAmounts":{"EUR":2}}}`)
	got, ok := FindProperty(doc, AmountProperties)
	if !ok {
		t.Fatalf("expected a match")
	}
	if got.Get("EUR").Int() != 2 {
		t.Fatalf("expected totalBetAmounts to win, got %s", got.Raw)
	}
}

func TestFindPropertyDepthFirst(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
		ok   bool
	}{
		{
			name: "own property wins over nested one",
			doc:  `{"a":{"b":{"freeSpinPrice":{"EUR":1}}},"totalBetAmounts":{"EUR":2}}`,
			want: `{"EUR":2}`,
			ok:   true,
		},
		{
			name: "first child subtree wins over later sibling",
			doc:  `{"a":{"b":{"freeSpinPrice":{"EUR":1}}},"c":{"totalBetAmounts":{"EUR":2}}}`,
			want: `{"EUR":1}`,
			ok:   true,
		},
		{
			name: "array elements are searched",
			doc:  `[1,"x",{"rules":[{"totalBetAmounts":[{"currency":"EUR","amount":5}]}]}]`,
			want: `[{"currency":"EUR","amount":5}]`,
			ok:   true,
		},
		{
			name: "null value continues in parent",
			doc:  `{"a":{"totalBetAmounts":null,"freeSpinPrice":{"EUR":9}},"b":{"freeSpinPrice":{"EUR":3}}}`,
			want: `{"EUR":3}`,
			ok:   true,
		},
		{
			name: "absent",
			doc:  `{"a":{"b":[1,2,3]}}`,
			ok:   false,
		},
		{
			name: "scalar document",
			doc:  `42`,
			ok:   false,
		},
	}
	for _, tt := range tests {
		got, ok := FindProperty(gjson.Parse(tt.doc), AmountProperties)
		if ok != tt.ok {
			t.Fatalf("%s: ok = %v, want %v", tt.name, ok, tt.ok)
		}
		if ok && got.Raw != tt.want {
			t.Fatalf("%s: got %s, want %s", tt.name, got.Raw, tt.want)
		}
	}
}

func TestParseAmountsArray(t *testing.T) {
	v := gjson.Parse(`[{"currency":"EUR","amount":10},{"currency":"USD","amount":"bad"},{"amount":4},{"currency":"","amount":1},{"currency":"PLN","amount":2.50}]`)
	got := ParseAmounts("CAMPAIGN1", v)
	want := &Campaign{Name: "CAMPAIGN1", Amounts: []Amount{
		{Currency: "EUR", Value: "10"},
		{Currency: "PLN", Value: "2.5"},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected campaign (-want +got):\n%s", diff)
	}
}

func TestParseAmountsObjectAsIs(t *testing.T) {
	got := ParseAmounts("CAMPAIGN1", gjson.Parse(`{"USD":1.2,"EUR":"1,10","RUB":100}`))
	want := &Campaign{Name: "CAMPAIGN1", Amounts: []Amount{
		{Currency: "USD", Value: "1.2"},
		{Currency: "EUR", Value: "1,10"},
		{Currency: "RUB", Value: "100"},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected campaign (-want +got):\n%s", diff)
	}
}

func TestParseAmountsScalarIsNil(t *testing.T) {
	for _, raw := range []string{`5`, `"text"`, `true`} {
		if c := ParseAmounts("CAMPAIGN1", gjson.Parse(raw)); c != nil {
			t.Fatalf("expected nil for %s, got %+v", raw, c)
		}
	}
}

func TestRestrictKeepsEmptyCampaign(t *testing.T) {
	c := &Campaign{Name: "CAMPAIGN1", Amounts: []Amount{{Currency: "EUR", Value: "1"}, {Currency: "USD", Value: "2"}}}

	got := c.Restrict([]string{"USD", "PLN"})
	if diff := cmp.Diff([]Amount{{Currency: "USD", Value: "2"}}, got.Amounts); diff != "" {
		t.Fatalf("unexpected amounts (-want +got):\n%s", diff)
	}

	empty := c.Restrict(nil)
	if empty == nil || len(empty.Amounts) != 0 || empty.Name != "CAMPAIGN1" {
		t.Fatalf("expected an empty campaign, got %+v", empty)
	}

	var none *Campaign
	if none.Restrict([]string{"EUR"}) != nil {
		t.Fatalf("nil campaign must stay nil")
	}
}
