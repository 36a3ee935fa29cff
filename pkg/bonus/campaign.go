package bonus

// Amount is one currency entry of a campaign, kept as the text the
// back office returned so it renders exactly as received.
type Amount struct {
	Currency string
	Value    string
}

// Campaign is one bonus record fetched from the back office. Amounts keep
// the order in which the currencies appeared in the response.
type Campaign struct {
	Name    string
	Amounts []Amount
}

// Get returns the value stored for currency.
func (c *Campaign) Get(currency string) (string, bool) {
	if c == nil {
		return "", false
	}
	for _, a := range c.Amounts {
		if a.Currency == currency {
			return a.Value, true
		}
	}
	return "", false
}

// Restrict returns a copy holding only the currencies in active.
// The result is never nil for a non-nil campaign, even when empty.
func (c *Campaign) Restrict(active []string) *Campaign {
	if c == nil {
		return nil
	}
	keep := make(map[string]bool, len(active))
	for _, a := range active {
		keep[a] = true
	}
	out := &Campaign{Name: c.Name, Amounts: []Amount{}}
	for _, a := range c.Amounts {
		if keep[a.Currency] {
			out.Amounts = append(out.Amounts, a)
		}
	}
	return out
}

// set inserts or overwrites a currency, keeping its first position.
func (c *Campaign) set(currency, value string) {
	for i := range c.Amounts {
		if c.Amounts[i].Currency == currency {
			c.Amounts[i].Value = value
			return
		}
	}
	c.Amounts = append(c.Amounts, Amount{Currency: currency, Value: value})
}
