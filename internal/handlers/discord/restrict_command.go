package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/rollengine/internal/models"
	"github.com/KirkDiggler/rollengine/internal/repositories/restriction"
	"github.com/bwmarrin/discordgo"
)

const (
	msgGuildOnly    = "Roll restrictions can only be used in a server channel."
	msgUnrestricted = "Rolls are not restricted in this channel."
	msgNoneInGuild  = "No channels in this server restrict rolls."
)

var manageChannels int64 = discordgo.PermissionManageChannels

// RestrictCommand handles /rollrestrict, which limits who may roll in a channel
type RestrictCommand struct {
	BaseCommand
	session      Session
	restrictions restriction.Repository
}

// NewRestrictCommand creates a new rollrestrict command handler
func NewRestrictCommand(session Session, restrictions restriction.Repository) *RestrictCommand {
	return &RestrictCommand{
		BaseCommand: BaseCommand{
			Name:        "rollrestrict",
			Description: "Limit who may roll in this channel",
			Permissions: &manageChannels,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "set",
					Description: "Restrict rolling in this channel",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "level",
							Description: "Who may roll",
							Required:    true,
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "Members with a role", Value: string(models.RestrictionRoled)},
								{Name: "Moderators", Value: string(models.RestrictionModerators)},
								{Name: "Nobody", Value: string(models.RestrictionDisabled)},
							},
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "clear",
					Description: "Let everyone roll in this channel",
				},
				userSubcommand("allow", "Let a user roll here whatever the restriction"),
				userSubcommand("deny", "Stop a user rolling here"),
				userSubcommand("reset", "Put a user back under this channel's restriction"),
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "show",
					Description: "Show this channel's restriction",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "list",
					Description: "List every restricted channel in this server",
				},
			},
		},
		session:      session,
		restrictions: restrictions,
	}
}

// Handle processes a Discord interaction for the rollrestrict command
func (c *RestrictCommand) Handle(i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	if i.GuildID == "" {
		return RespondWithEphemeralMessage(c.session, i, msgGuildOnly)
	}

	ctx := context.Background()
	sub := data.Options[0]

	switch sub.Name {
	case "show":
		return c.handleShow(ctx, i)
	case "list":
		return c.handleList(ctx, i)
	}

	if !hasPermission(i.Member, discordgo.PermissionManageChannels) {
		return RespondWithEphemeralMessage(c.session, i, msgNeedsManage)
	}

	switch sub.Name {
	case "set":
		level := models.RestrictionLevel(optionMap(sub.Options)["level"].StringValue())
		return c.handleSet(ctx, i, level)
	case "clear":
		return c.handleSet(ctx, i, models.RestrictionNone)
	case "allow":
		return c.handleOverride(ctx, i, sub, models.OverrideAllow)
	case "deny":
		return c.handleOverride(ctx, i, sub, models.OverrideDeny)
	case "reset":
		return c.handleOverride(ctx, i, sub, models.OverrideNone)
	}
	return errors.New("unknown subcommand")
}

func (c *RestrictCommand) handleSet(ctx context.Context, i *discordgo.InteractionCreate, level models.RestrictionLevel) error {
	user := interactionUser(i)
	if user == nil {
		return errors.New("interaction has no user")
	}

	_, err := c.restrictions.SaveRestriction(ctx, &restriction.SaveRestrictionInput{
		GuildID:   i.GuildID,
		ChannelID: i.ChannelID,
		Level:     level,
		SetBy:     user.ID,
	})
	if err != nil {
		log.Printf("Error saving restriction for channel %s: %v", i.ChannelID, err)
		return RespondWithEphemeralMessage(c.session, i, fmt.Sprintf("Failed to change the roll restriction: %v", err))
	}

	log.Printf("Channel %s restricted to %q by %s", i.ChannelID, level, user.ID)
	return RespondWithMessage(c.session, i, fmt.Sprintf("<@%s> allowed %s to roll in this channel.", user.ID, level.Description()))
}

func (c *RestrictCommand) handleOverride(ctx context.Context, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption, override models.UserOverride) error {
	user := interactionUser(i)
	if user == nil {
		return errors.New("interaction has no user")
	}

	opt, ok := optionMap(sub.Options)["user"]
	if !ok {
		return errors.New("missing user option")
	}
	targetID, _ := opt.Value.(string)

	err := c.restrictions.SetUserOverride(ctx, &restriction.SetUserOverrideInput{
		ChannelID: i.ChannelID,
		UserID:    targetID,
		Override:  override,
	})
	if err != nil {
		log.Printf("Error saving roll override for %s in channel %s: %v", targetID, i.ChannelID, err)
		return RespondWithEphemeralMessage(c.session, i, fmt.Sprintf("Failed to change the user's roll permission: %v", err))
	}

	log.Printf("Roll override for %s in channel %s set to %q by %s", targetID, i.ChannelID, override, user.ID)

	var msg string
	switch override {
	case models.OverrideAllow:
		msg = fmt.Sprintf("<@%s> let <@%s> roll in this channel whatever the restriction.", user.ID, targetID)
	case models.OverrideDeny:
		msg = fmt.Sprintf("<@%s> banned <@%s> from rolling in this channel.", user.ID, targetID)
	default:
		msg = fmt.Sprintf("<@%s> put <@%s> back under this channel's roll restriction.", user.ID, targetID)
	}
	return RespondWithMessage(c.session, i, msg)
}

func (c *RestrictCommand) handleShow(ctx context.Context, i *discordgo.InteractionCreate) error {
	current, err := c.restrictions.GetRestriction(ctx, &restriction.GetRestrictionInput{
		ChannelID: i.ChannelID,
	})
	if errors.Is(err, restriction.ErrRestrictionNotFound) {
		return RespondWithEphemeralMessage(c.session, i, msgUnrestricted)
	}
	if err != nil {
		log.Printf("Error getting restriction for channel %s: %v", i.ChannelID, err)
		return RespondWithEphemeralMessage(c.session, i, fmt.Sprintf("Failed to read the roll restriction: %v", err))
	}

	return RespondWithEphemeralMessage(c.session, i, describeRestriction(current))
}

func (c *RestrictCommand) handleList(ctx context.Context, i *discordgo.InteractionCreate) error {
	output, err := c.restrictions.ListRestrictions(ctx, &restriction.ListRestrictionsInput{
		GuildID: i.GuildID,
	})
	if err != nil {
		log.Printf("Error listing restrictions for guild %s: %v", i.GuildID, err)
		return RespondWithEphemeralMessage(c.session, i, fmt.Sprintf("Failed to list roll restrictions: %v", err))
	}

	if len(output.Restrictions) == 0 {
		return RespondWithEphemeralMessage(c.session, i, msgNoneInGuild)
	}

	lines := make([]string, 0, len(output.Restrictions))
	for _, r := range output.Restrictions {
		lines = append(lines, "<#"+r.ChannelID+">: "+describeRestriction(r))
	}
	// A guild with too many to fit gets the first page.
	return RespondWithEphemeralMessage(c.session, i, chunk(lines)[0])
}

func userSubcommand(name, description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionSubCommand,
		Name:        name,
		Description: description,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "The user",
				Required:    true,
			},
		},
	}
}

func describeRestriction(r *models.Restriction) string {
	out := "Only " + r.Level.Description() + " may roll"
	if r.Level == models.RestrictionDisabled {
		out = "Nobody may roll"
	}
	if r.SetBy != "" {
		out += ", set by <@" + r.SetBy + ">"
	}
	if !r.UpdatedAt.IsZero() {
		out += fmt.Sprintf(" <t:%d:R>", r.UpdatedAt.Unix())
	}
	return out + "."
}
