package alert

import (
	"fmt"
	"sort"

	"github.com/bwmarrin/discordgo"

	bCtx "github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/base/log"
)

// Notifier raises operator alerts that need manual remediation
type Notifier interface {
	Alert(c bCtx.Ctx, title string, fields map[string]string) error
}

type Config struct {
	DiscordBotKey    string
	DiscordChannelId string
}

type embedSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error)
}

type discordNotifier struct {
	sender    embedSender
	channelId string
}

// New returns a discord notifier, or a log-only one when no bot key is configured
func New(cfg Config) (Notifier, error) {
	if cfg.DiscordBotKey == "" || cfg.DiscordChannelId == "" {
		return &logNotifier{}, nil
	}
	session, err := discordgo.New(fmt.Sprintf("Bot %s", cfg.DiscordBotKey))
	if err != nil {
		return nil, err
	}
	return &discordNotifier{sender: session, channelId: cfg.DiscordChannelId}, nil
}

func (n *discordNotifier) Alert(c bCtx.Ctx, title string, fields map[string]string) error {
	msg := &discordgo.MessageEmbed{
		Title:  title,
		Color:  0xE74C3C,
		Fields: embedFields(fields),
	}
	if _, err := n.sender.ChannelMessageSendEmbed(n.channelId, msg); err != nil {
		c.WithFields(log.Fields{"err": err, "title": title}).Error("ChannelMessageSendEmbed failed")
		return err
	}
	return nil
}

func embedFields(fields map[string]string) []*discordgo.MessageEmbedField {
	names := make([]string, 0, len(fields))
	for k := range fields {
		names = append(names, k)
	}
	sort.Strings(names)

	res := make([]*discordgo.MessageEmbedField, 0, len(names))
	for _, k := range names {
		res = append(res, &discordgo.MessageEmbedField{Name: k, Value: fields[k]})
	}
	return res
}

type logNotifier struct{}

func (n *logNotifier) Alert(c bCtx.Ctx, title string, fields map[string]string) error {
	kvs := log.Fields{"alert": title}
	for k, v := range fields {
		kvs[k] = v
	}
	c.WithFields(kvs).Error("alert raised")
	return nil
}
