package bot

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"moodbot/router"

	"github.com/bwmarrin/discordgo"
)

// Config holds bot configuration
type Config struct {
	Token string
}

// Bot bridges Discord messages to the command router. Only `!`-prefixed
// messages are handled; ordinary chat is left alone in guild channels.
type Bot struct {
	config  Config
	session *discordgo.Session
	router  *router.Router
}

func New(config Config, cmds *router.Router) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	bot := &Bot{
		config:  config,
		session: dg,
		router:  cmds,
	}

	dg.AddHandler(bot.handleMessage)

	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	log.Info("Discord bot connected")
	return bot, nil
}

func (b *Bot) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author.Bot {
		return
	}
	content := strings.TrimSpace(m.Content)
	if !strings.HasPrefix(content, "!") {
		return
	}

	resp := b.router.Handle(context.Background(), router.Request{
		UserID: m.Author.ID,
		Input:  content,
	})

	reply := fmt.Sprintf("%s\n💰 Balance: **%s coins**", resp.Message, FormatBalance(resp.NewBalance))
	if _, err := s.ChannelMessageSendReply(m.ChannelID, reply, m.Reference()); err != nil {
		log.WithFields(log.Fields{
			"channelID": m.ChannelID,
			"userID":    m.Author.ID,
		}).WithError(err).Error("Failed to send reply")
	}
}

// Close shuts down the Discord connection.
func (b *Bot) Close() error {
	return b.session.Close()
}
