package discord

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/KirkDiggler/rollengine/internal/common/uuid"
	"github.com/KirkDiggler/rollengine/internal/models"
	"github.com/KirkDiggler/rollengine/internal/repositories/restriction"
	"github.com/bwmarrin/discordgo"
)

// Option names shared by the rolling commands
const (
	optExpression = "expression"
	optSystem     = "system"
	optOptions    = "options"
	optPrivate    = "private"
	optTo         = "to"
)

const msgNothingToRoll = "Error: There is nothing to roll."

// RollCommand handles /roll, /calc and /scores. They differ only in how the
// engine reads the expression and which options they offer.
type RollCommand struct {
	BaseCommand
	rollType     models.RollType
	session      Session
	dispatcher   *dispatcher
	restrictions restriction.Repository
	ids          uuid.Generator
}

// rollDeps are what every rolling command needs
type rollDeps struct {
	session      Session
	dispatcher   *dispatcher
	restrictions restriction.Repository
	ids          uuid.Generator
}

var (
	privateOption = &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionBoolean,
		Name:        optPrivate,
		Description: "Show the results only to you",
	}
	toOption = &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionUser,
		Name:        optTo,
		Description: "Send the results privately to this user",
	}
)

func newRollCommand(base BaseCommand, rollType models.RollType, deps *rollDeps) *RollCommand {
	return &RollCommand{
		BaseCommand:  base,
		rollType:     rollType,
		session:      deps.session,
		dispatcher:   deps.dispatcher,
		restrictions: deps.restrictions,
		ids:          deps.ids,
	}
}

// rollCommand creates the /roll command: presets, flavor and expressions
func rollCommand(deps *rollDeps) *RollCommand {
	return newRollCommand(BaseCommand{
		Name:        "roll",
		Description: "Roll dice: an expression or preset, then preset parameters and optional text",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        optExpression,
				Description: "For example 2d6+3, wod 5 7, or 3[1d20] attack",
				Required:    true,
			},
			privateOption,
			toOption,
		},
	}, models.RollTypeRoll, deps)
}

// calcCommand creates the /calc command: expressions only, no presets
func calcCommand(deps *rollDeps) *RollCommand {
	return newRollCommand(BaseCommand{
		Name:        "calc",
		Description: "Evaluate an arithmetic or dice expression",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        optExpression,
				Description: "For example sqrt(2)*10 or 4d6-2",
				Required:    true,
			},
			privateOption,
		},
	}, models.RollTypeCalc, deps)
}

// scoresCommand creates the /scores command for character generation
func scoresCommand(deps *rollDeps) *RollCommand {
	return newRollCommand(BaseCommand{
		Name:        "scores",
		Description: "Generate character ability scores",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        optSystem,
				Description: "Game system",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "D&D", Value: "dnd"},
					{Name: "New Horizons", Value: "nh"},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        optOptions,
				Description: "Method (D&D 1-7) followed by optional text",
			},
			privateOption,
			toOption,
		},
	}, models.RollTypeScores, deps)
}

// Handle turns the interaction into a roll and queues it
func (c *RollCommand) Handle(i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	opts := optionMap(data.Options)
	expression := c.expression(opts)
	if len(expression) == 0 {
		return RespondWithEphemeralMessage(c.session, i, msgNothingToRoll)
	}

	user := interactionUser(i)
	if user == nil {
		return errors.New("interaction has no user")
	}

	roll := &models.Roll{
		ID:         c.ids.NewID(),
		Type:       c.rollType,
		Expression: expression,
		Source:     user.ID,
		Extra:      []string{displayName(i.Member, user)},
	}
	c.target(i, data, opts, roll)

	if roll.Output == models.OutputToChannel {
		if msg := c.restricted(i, user.ID); msg != "" {
			return RespondWithEphemeralMessage(c.session, i, msg)
		}
	}

	if c.rollType == models.RollTypeRoll && strings.EqualFold(expression[0], "fuzzfactor") &&
		!hasPermission(i.Member, discordgo.PermissionAdministrator) {
		return RespondWithEphemeralMessage(c.session, i, msgFuzzFactor)
	}

	return c.dispatcher.submit(i.Interaction, roll)
}

// expression splits the command's text options into words
func (c *RollCommand) expression(opts map[string]*discordgo.ApplicationCommandInteractionDataOption) []string {
	if c.rollType == models.RollTypeScores {
		system, ok := opts[optSystem]
		if !ok {
			return nil
		}
		expression := []string{system.StringValue()}
		if rest, ok := opts[optOptions]; ok {
			expression = append(expression, words(rest.StringValue())...)
		}
		return expression
	}

	if opt, ok := opts[optExpression]; ok {
		return words(opt.StringValue())
	}
	return nil
}

// target decides where the results go. Private wins over a target user,
// which wins over the channel. Rolls outside a guild are always private.
func (c *RollCommand) target(i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData, opts map[string]*discordgo.ApplicationCommandInteractionDataOption, roll *models.Roll) {
	if opt, ok := opts[optPrivate]; ok && opt.BoolValue() {
		roll.Output = models.OutputSelf
		roll.Target = "-"
		return
	}

	if opt, ok := opts[optTo]; ok {
		targetID, _ := opt.Value.(string)
		if targetID != "" && targetID != roll.Source {
			name := "<@" + targetID + ">"
			if data.Resolved != nil {
				if target, ok := data.Resolved.Users[targetID]; ok {
					name = displayName(data.Resolved.Members[targetID], target)
				}
			}

			roll.Output = models.OutputToUser
			roll.Target = targetID
			roll.Extra = append(roll.Extra, name)
			return
		}
	}

	if i.GuildID != "" {
		roll.Output = models.OutputToChannel
		roll.Target = i.ChannelID
		roll.Extra = append(roll.Extra, "<#"+i.ChannelID+">")
		return
	}

	roll.Output = models.OutputSelf
	roll.Target = "-"
}

// restricted checks the user's override and the channel's roll
// restriction. Anything that can't be read does not stop the roll.
func (c *RollCommand) restricted(i *discordgo.InteractionCreate, userID string) string {
	ctx := context.Background()

	override, err := c.restrictions.GetUserOverride(ctx, &restriction.GetUserOverrideInput{
		ChannelID: i.ChannelID,
		UserID:    userID,
	})
	if err != nil {
		log.Printf("Error getting roll override for %s in channel %s: %v", userID, i.ChannelID, err)
		override = models.OverrideNone
	}
	if override != models.OverrideNone {
		return checkRestriction(models.RestrictionNone, override, i.Member)
	}

	// No override, so the channel's level decides.
	current, err := c.restrictions.GetRestriction(ctx, &restriction.GetRestrictionInput{
		ChannelID: i.ChannelID,
	})
	if errors.Is(err, restriction.ErrRestrictionNotFound) {
		return ""
	}
	if err != nil {
		log.Printf("Error getting restriction for channel %s: %v", i.ChannelID, err)
		return ""
	}

	return checkRestriction(current.Level, models.OverrideNone, i.Member)
}
