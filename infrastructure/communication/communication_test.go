package communication

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectSlackWithoutToken(t *testing.T) {
	t.Setenv("SLACK_BOT_TOKEN", "")

	s := ConnectSlack(SlackOption{InfoChannelID: "C1", ErrorChannelID: "C2"})
	assert.Nil(t, s)
}

func TestNilSlackIsNoOp(t *testing.T) {
	var s *Slack

	require.NotPanics(t, func() {
		assert.NoError(t, s.Info("routine notice"))
		assert.NoError(t, s.Error("alert"))
	})
}
