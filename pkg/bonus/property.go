package bonus

import (
	"strconv"

	"github.com/tidwall/gjson"
)

// AmountProperties are the property names holding per-currency amounts,
// in priority order.
var AmountProperties = []string{"totalBetAmounts", "freeSpinPrice"}

// FindProperty searches doc depth-first for the first of names. At every
// level the names are checked in order before descending into children.
// A property that is present but null stops the search at its level; the
// parent keeps looking through its other children.
func FindProperty(doc gjson.Result, names []string) (gjson.Result, bool) {
	if !doc.IsObject() && !doc.IsArray() {
		return gjson.Result{}, false
	}

	if doc.IsObject() {
		for _, name := range names {
			if r := doc.Get(name); r.Exists() {
				return r, r.Type != gjson.Null
			}
		}
	}

	var found gjson.Result
	ok := false
	doc.ForEach(func(_, child gjson.Result) bool {
		found, ok = FindProperty(child, names)
		return !ok
	})
	return found, ok
}

// ParseAmounts turns the matched property into a campaign. A list of
// {currency, amount} records is folded into a mapping, skipping records
// without a currency or with a non-numeric amount. An object is taken
// as-is. Anything else yields nil.
func ParseAmounts(name string, v gjson.Result) *Campaign {
	switch {
	case v.IsArray():
		c := &Campaign{Name: name, Amounts: []Amount{}}
		for _, item := range v.Array() {
			if !item.IsObject() {
				continue
			}
			cur := item.Get("currency")
			amount := item.Get("amount")
			if !truthy(cur) || amount.Type != gjson.Number {
				continue
			}
			c.set(valueText(cur), valueText(amount))
		}
		return c
	case v.IsObject():
		c := &Campaign{Name: name, Amounts: []Amount{}}
		v.ForEach(func(key, value gjson.Result) bool {
			c.set(key.String(), valueText(value))
			return true
		})
		return c
	}
	return nil
}

func truthy(r gjson.Result) bool {
	switch r.Type {
	case gjson.String:
		return r.Str != ""
	case gjson.Number:
		return r.Num != 0
	case gjson.True, gjson.JSON:
		return true
	}
	return false
}

// valueText renders a JSON value the way it shows up in a table cell.
func valueText(r gjson.Result) string {
	switch r.Type {
	case gjson.Number:
		return strconv.FormatFloat(r.Num, 'f', -1, 64)
	case gjson.String:
		return r.Str
	case gjson.True:
		return "true"
	case gjson.False:
		return "false"
	case gjson.Null:
		return "null"
	}
	return r.Raw
}
