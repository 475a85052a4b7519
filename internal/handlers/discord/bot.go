package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/rollengine/internal/common/clock"
	"github.com/KirkDiggler/rollengine/internal/common/uuid"
	"github.com/KirkDiggler/rollengine/internal/repositories/restriction"
	"github.com/bwmarrin/discordgo"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	dispatcher *dispatcher
	config     *Config

	cancel context.CancelFunc
	done   chan struct{}
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Pipeline runs the rolls
	Pipeline Pipeline

	// Restrictions stores per-channel roll restrictions
	Restrictions restriction.Repository

	// IDs names each roll
	IDs uuid.Generator

	// Clock times mutes
	Clock clock.Clock
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.Pipeline == nil {
		return nil, errors.New("pipeline cannot be nil")
	}

	if cfg.Restrictions == nil {
		return nil, errors.New("restriction repository cannot be nil")
	}

	if cfg.IDs == nil {
		return nil, errors.New("id generator cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds

	bot := &Bot{
		session:    session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		dispatcher: newDispatcher(session, cfg.Pipeline, cfg.Clock),
		config:     cfg,
	}

	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// handlers builds every command the bot serves
func (b *Bot) handlers() []CommandHandler {
	deps := &rollDeps{
		session:      b.session,
		dispatcher:   b.dispatcher,
		restrictions: b.config.Restrictions,
		ids:          b.config.IDs,
	}

	return []CommandHandler{
		rollCommand(deps),
		calcCommand(deps),
		scoresCommand(deps),
		NewRestrictCommand(b.session, b.config.Restrictions),
	}
}

// Start opens the Discord connection, registers commands and begins
// delivering results
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	for _, cmd := range b.handlers() {
		if err := b.RegisterCommand(cmd); err != nil {
			return fmt.Errorf("failed to register %s command: %w", cmd.GetName(), err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel
	b.done = make(chan struct{})
	go func() {
		defer close(b.done)
		b.dispatcher.run(ctx)
	}()

	log.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop stops delivering results, removes the commands and closes the
// Discord connection
func (b *Bot) Stop() error {
	if b.cancel != nil {
		b.cancel()
		<-b.done
	}

	if n := b.dispatcher.pendingCount(); n > 0 {
		log.Printf("Stopping with %d rolls still waiting on results", n)
	}

	appID := b.appID()
	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.Printf("Failed to delete command %s (ID: %s): %v", cmdName, cmdID, err)
		} else {
			log.Printf("Successfully deleted command %s (ID: %s)", cmdName, cmdID)
		}
	}

	return b.session.Close()
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// RegisterCommand registers a command with Discord, for the configured guild
// if there is one and globally otherwise
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	guildID := b.config.GuildID
	if guildID != "" {
		log.Printf("Registering command %s for guild %s", cmd.GetName(), guildID)
	} else {
		log.Printf("Registering command %s globally", cmd.GetName())
	}

	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), guildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	log.Printf("Registered command: %s with ID: %s", cmd.GetName(), createdCmd.ID)

	return nil
}

// handleInteraction routes slash commands to their handlers
func (b *Bot) handleInteraction(_ *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name
	if h, ok := b.commands[name]; ok {
		if err := h.Handle(i); err != nil {
			log.Printf("Error handling command %s: %v", name, err)
		}
	}
}
