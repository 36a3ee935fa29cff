package scrape

// State is the phase a Runner is currently in.
type State int32

const (
	Idle State = iota
	FetchingCampaigns
	Navigating
	AwaitingLoad
	Settling
	Extracting
	Recording
	CampaignDelay
	Done
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case FetchingCampaigns:
		return "fetching campaigns"
	case Navigating:
		return "navigating"
	case AwaitingLoad:
		return "awaiting load"
	case Settling:
		return "settling"
	case Extracting:
		return "extracting"
	case Recording:
		return "recording"
	case CampaignDelay:
		return "campaign delay"
	case Done:
		return "done"
	}
	return "unknown"
}
