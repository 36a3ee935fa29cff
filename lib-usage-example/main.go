package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sw33tLie/bocheck/pkg/bonus"
	"github.com/sw33tLie/bocheck/pkg/report"
)

func main() {
	// Usage: go run *.go -project Viks -campaigns "WELCOME_CAMPAIGN" -converted "UZS=140000"

	projectFlag := flag.String("project", "", "Project name")
	campaignsFlag := flag.String("campaigns", "", "Campaign codes, space separated")
	convertedFlag := flag.String("converted", "", "Converter values as CUR=value pairs, space separated")
	thresholdFlag := flag.Float64("threshold", 5, "Accepted deviation in percent")

	// Parse the command-line flags
	flag.Parse()

	if *projectFlag == "" {
		fmt.Println("Project is required. Please provide it using -project flag.")
		return
	}

	// Without a browser, supply the converter values by hand
	converted := map[string]string{}
	var active []string
	for _, pair := range strings.Fields(*convertedFlag) {
		cur, val, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		converted[cur] = val
		active = append(active, cur)
	}

	f := &bonus.Fetcher{}
	campaigns, err := f.FetchCampaigns(context.Background(), *projectFlag, strings.Fields(*campaignsFlag), active)
	if err != nil {
		fmt.Println(err)
		return
	}

	results := map[string]map[string]string{}
	for _, c := range campaigns {
		if c != nil {
			results[c.Name] = converted
		}
	}

	report.RenderText(os.Stdout, report.Build(campaigns, results, *thresholdFlag), true)
}
