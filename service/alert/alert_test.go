package alert

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"

	bCtx "github.com/x-xyz/leadauction/base/ctx"
)

type fakeSender struct {
	channel string
	embed   *discordgo.MessageEmbed
	err     error
}

func (f *fakeSender) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error) {
	f.channel = channelID
	f.embed = embed
	return &discordgo.Message{}, f.err
}

func TestDiscordAlert(t *testing.T) {
	sender := &fakeSender{}
	n := &discordNotifier{sender: sender, channelId: "chan-1"}

	require.NoError(t, n.Alert(bCtx.Background(), "integrity violation", map[string]string{
		"leadId":   "lead-1",
		"accepted": "2",
	}))
	require.Equal(t, "chan-1", sender.channel)
	require.Equal(t, "integrity violation", sender.embed.Title)
	require.Len(t, sender.embed.Fields, 2)
	require.Equal(t, "accepted", sender.embed.Fields[0].Name)
	require.Equal(t, "leadId", sender.embed.Fields[1].Name)

	sender.err = errors.New("discord down")
	require.Error(t, n.Alert(bCtx.Background(), "x", nil))
}

func TestNewWithoutBotKeyLogsOnly(t *testing.T) {
	n, err := New(Config{})
	require.NoError(t, err)
	require.IsType(t, &logNotifier{}, n)
	require.NoError(t, n.Alert(bCtx.Background(), "integrity violation", map[string]string{"leadId": "lead-1"}))
}
