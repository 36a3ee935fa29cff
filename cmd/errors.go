package cmd

import (
	"errors"
	"fmt"

	"github.com/sw33tLie/bocheck/internal/utils"
	"github.com/sw33tLie/bocheck/pkg/failure"
	"github.com/sw33tLie/bocheck/pkg/scrape"
)

// describeFailure names the input the operator has to fix for err.
func describeFailure(err error) string {
	switch failure.KindOf(err) {
	case failure.UserInput:
		var fe *failure.Error
		switch {
		case errors.As(err, &fe) && fe.Op == "project":
			return fmt.Sprintf("%v (see 'bocheck projects')", err)
		case errors.Is(err, scrape.ErrNoActiveCurrencies):
			return fmt.Sprintf("currencies: %v (enable some with 'bocheck currencies toggle')", err)
		case errors.Is(err, scrape.ErrRunInProgress), errors.Is(err, utils.ErrRunLocked):
			return fmt.Sprintf("start: %v", err)
		}
		return fmt.Sprintf("campaigns: %v", err)
	case failure.Network:
		return fmt.Sprintf("back office: %v", err)
	case failure.FatalAbort:
		return fmt.Sprintf("aborted: %v", err)
	case failure.Timeout, failure.Extraction:
		return fmt.Sprintf("converter: %v", err)
	}
	return err.Error()
}
