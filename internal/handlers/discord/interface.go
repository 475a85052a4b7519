package discord

//go:generate mockgen -package=mocks -destination=mocks/mock_discord.go github.com/KirkDiggler/rollengine/internal/handlers/discord Session,Pipeline

import (
	"time"

	"github.com/KirkDiggler/rollengine/internal/models"
	"github.com/bwmarrin/discordgo"
)

// Session is the part of *discordgo.Session that commands and result
// delivery talk through
type Session interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	InteractionResponseDelete(interaction *discordgo.Interaction, options ...discordgo.RequestOption) error
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	GuildMemberDeleteWithReason(guildID, userID, reason string, options ...discordgo.RequestOption) error
	GuildMemberTimeout(guildID string, userID string, until *time.Time, options ...discordgo.RequestOption) error
}

// Pipeline queues rolls for the engine and hands back their results
type Pipeline interface {
	// Submit queues a roll, returning false when it was refused
	Submit(roll *models.Roll) bool

	// Ready is signalled when results may be drained
	Ready() <-chan struct{}

	// Drain returns the oldest finished results, or nil
	Drain() *models.RollResults
}
