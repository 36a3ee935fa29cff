package utils

import (
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/sirupsen/logrus"
	log "github.com/sirupsen/logrus"
)

var Log = logrus.New()

func SetLogLevel(level string) {
	// We are not using logrus' trace and panic levels
	switch strings.ToLower(level) {
	case "debug":
		Log.SetLevel(log.DebugLevel)
	case "info":
		Log.SetLevel(log.InfoLevel)
	case "warning", "warn":
		Log.SetLevel(log.WarnLevel)
	case "error":
		Log.SetLevel(log.ErrorLevel)
	case "fatal":
		Log.SetLevel(log.FatalLevel)
	default:
		log.Fatal("Bad error level string")
	}
}

// SplitCampaignField turns the free-text campaign field into tokens.
// Tokens are separated by spaces; quoted tokens keep their spaces.
func SplitCampaignField(field string) []string {
	tokens, err := shellquote.Split(field)
	if err != nil {
		Log.Debugf("Campaign field is not shell-splittable (%v), falling back to whitespace", err)
		return strings.Fields(field)
	}
	return tokens
}
