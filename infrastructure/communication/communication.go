package communication

import (
	"fmt"
	"os"

	"github.com/slack-go/slack"
)

// Slack posts attendance alerts to the supervision channels. A nil *Slack is
// a valid no-op notifier, so callers can wire it unconditionally.
type Slack struct {
	client  *slack.Client
	options SlackOption
}

type SlackOption struct {
	InfoChannelID  string
	ErrorChannelID string
}

// ConnectSlack builds the notifier from SLACK_BOT_TOKEN. Returns nil when no
// token is configured; alerts are then silently skipped.
func ConnectSlack(options SlackOption) *Slack {
	token := os.Getenv("SLACK_BOT_TOKEN")
	if token == "" {
		return nil
	}
	return NewSlack(token, options)
}

func NewSlack(token string, options SlackOption) *Slack {
	return &Slack{client: slack.New(token), options: options}
}

func (s *Slack) postMessage(channelID, message string) error {
	if s == nil || channelID == "" {
		return nil
	}
	_, _, err := s.client.PostMessage(
		channelID,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		return fmt.Errorf("failed to post message to Slack: %w", err)
	}
	return nil
}

// Info posts routine notices, e.g. the daily report link.
func (s *Slack) Info(message string) error {
	if s == nil {
		return nil
	}
	return s.postMessage(s.options.InfoChannelID, message)
}

// Error posts unauthorized-punch alerts.
func (s *Slack) Error(message string) error {
	if s == nil {
		return nil
	}
	return s.postMessage(s.options.ErrorChannelID, message)
}
