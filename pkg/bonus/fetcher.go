package bonus

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sw33tLie/bocheck/pkg/failure"
	"github.com/sw33tLie/bocheck/pkg/logging"
	"github.com/sw33tLie/bocheck/pkg/projects"
	"github.com/sw33tLie/bocheck/pkg/whttp"
	"github.com/tidwall/gjson"
)

// ErrNoCampaigns is returned when no token of the input is a campaign code.
var ErrNoCampaigns = errors.New("no campaign codes given")

// Fetcher queries the back-office bonus-info endpoint of a project.
type Fetcher struct {
	Client *retryablehttp.Client // nil = whttp default client
	Log    logging.Logger

	// Resolve maps a project name to its configuration. Defaults to
	// projects.Lookup.
	Resolve func(name string) (projects.Project, bool)
}

// FilterCodes keeps the tokens that contain the campaign marker.
func FilterCodes(tokens []string) []string {
	var codes []string
	for _, t := range tokens {
		if strings.Contains(t, projects.CampaignMarker) {
			codes = append(codes, t)
		}
	}
	return codes
}

// FetchCampaigns fetches every campaign code of tokens for project and
// restricts each campaign to the active currencies. The result has one
// entry per retained code, in input order; an entry is nil when the
// project is unknown or the response holds no usable amounts.
//
// Requests are issued concurrently. The first failure fails the batch with
// a failure.Network error right away and all results are dropped; requests
// still in flight are left to finish on their own.
func (f *Fetcher) FetchCampaigns(ctx context.Context, project string, tokens []string, active []string) ([]*Campaign, error) {
	log := logging.OrNop(f.Log)
	resolve := f.Resolve
	if resolve == nil {
		resolve = projects.Lookup
	}

	codes := FilterCodes(tokens)
	if len(codes) == 0 {
		return nil, failure.New(failure.UserInput, "campaigns", ErrNoCampaigns)
	}

	type fetched struct {
		i   int
		c   *Campaign
		err error
	}
	// Buffered so stragglers never block once the batch has failed.
	done := make(chan fetched, len(codes))
	pending := 0
	for i, code := range codes {
		p, ok := resolve(project)
		if !ok {
			log.Warnf("Invalid project selected for %s", code)
			continue
		}

		pending++
		go func(i int, code string, p projects.Project) {
			c, err := f.fetchOne(ctx, p, code)
			done <- fetched{i: i, c: c, err: err}
		}(i, code, p)
	}

	results := make([]*Campaign, len(codes))
	for ; pending > 0; pending-- {
		r := <-done
		if r.err != nil {
			return nil, r.err
		}
		results[r.i] = r.c
	}

	for i, c := range results {
		if c == nil {
			log.Debugf("No amounts found for %s", codes[i])
			continue
		}
		results[i] = c.Restrict(active)
	}
	return results, nil
}

func (f *Fetcher) fetchOne(ctx context.Context, p projects.Project, code string) (*Campaign, error) {
	op := "fetch " + code
	res, err := whttp.SendHTTPRequest(ctx, &whttp.WHTTPReq{
		Method: "GET",
		URL:    p.CampaignURL(code),
		Headers: []whttp.WHTTPHeader{
			{Name: "Content-Type", Value: "application/json"},
		},
	}, f.Client)
	if err != nil {
		return nil, failure.New(failure.Network, op, err)
	}

	if !res.OK() {
		if res.HTTPTitle != "" {
			return nil, failure.Newf(failure.Network, op, "network response was not ok: status %d (%s)", res.StatusCode, res.HTTPTitle)
		}
		return nil, failure.Newf(failure.Network, op, "network response was not ok: status %d", res.StatusCode)
	}

	if !gjson.Valid(res.BodyString) {
		return nil, failure.New(failure.Network, op, fmt.Errorf("response is not valid JSON"))
	}

	found, ok := FindProperty(gjson.Parse(res.BodyString), AmountProperties)
	if !ok {
		return nil, nil
	}
	return ParseAmounts(code, found), nil
}
