package discord

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/rollengine/internal/common/clock"
	"github.com/KirkDiggler/rollengine/internal/models"
	"github.com/bwmarrin/discordgo"
)

const (
	msgBusy       = "Error: Unable to add roll, because the rolling system is extremely busy. Please try again momentarily."
	msgNoResults  = "The roll produced no results."
	msgDMFailed   = "Error: Unable to send the results to that user."
	msgBadResults = "Error: The rolling system returned results that could not be displayed."
)

// pendingRoll is an interaction waiting on its roll's results
type pendingRoll struct {
	interaction *discordgo.Interaction
	output      models.OutputType
	guildID     string
}

// dispatcher hands rolls to the pipeline and answers each interaction once
// its results come back
type dispatcher struct {
	session  Session
	pipeline Pipeline
	clock    clock.Clock

	mu      sync.Mutex
	pending map[string]*pendingRoll
}

func newDispatcher(session Session, pipeline Pipeline, clk clock.Clock) *dispatcher {
	return &dispatcher{
		session:  session,
		pipeline: pipeline,
		clock:    clk,
		pending:  make(map[string]*pendingRoll),
	}
}

// submit acknowledges the interaction and queues the roll. Channel rolls are
// acknowledged publicly, everything else privately.
func (d *dispatcher) submit(i *discordgo.Interaction, roll *models.Roll) error {
	var flags discordgo.MessageFlags
	if roll.Output != models.OutputToChannel {
		flags = discordgo.MessageFlagsEphemeral
	}

	err := d.session.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: flags,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to defer response: %w", err)
	}

	// Registered before submitting so results can never arrive first.
	d.mu.Lock()
	d.pending[roll.ID] = &pendingRoll{
		interaction: i,
		output:      roll.Output,
		guildID:     i.GuildID,
	}
	d.mu.Unlock()

	if d.pipeline.Submit(roll) {
		return nil
	}

	d.take(roll.ID)
	log.Printf("Roll %s from %s refused, queue is full", roll.ID, roll.Source)

	if roll.Output == models.OutputToChannel {
		// The deferred reply is public; the refusal is not.
		if err := d.session.InteractionResponseDelete(i); err != nil {
			log.Printf("Failed to delete deferred response for roll %s: %v", roll.ID, err)
		}
		return d.followup(i, msgBusy, true)
	}
	return d.edit(i, msgBusy)
}

// take removes and returns the interaction waiting on a roll
func (d *dispatcher) take(rollID string) *pendingRoll {
	d.mu.Lock()
	defer d.mu.Unlock()

	p := d.pending[rollID]
	delete(d.pending, rollID)
	return p
}

// run delivers results until ctx ends
func (d *dispatcher) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-d.pipeline.Ready():
			for results := d.pipeline.Drain(); results != nil; results = d.pipeline.Drain() {
				d.deliver(results)
			}
		}
	}
}

// deliver answers the interaction a roll came from
func (d *dispatcher) deliver(results *models.RollResults) {
	p := d.take(results.RollID)
	if p == nil {
		log.Printf("Dropping results for unknown roll %s", results.RollID)
		return
	}

	out, err := renderResults(results)
	if err != nil {
		log.Printf("Invalid results for roll %s: %v", results.RollID, err)
		if err := d.edit(p.interaction, msgBadResults); err != nil {
			log.Printf("Failed to report invalid results for roll %s: %v", results.RollID, err)
		}
		return
	}

	switch p.output {
	case models.OutputToChannel:
		err = d.deliverChannel(p, out)
	case models.OutputToUser:
		err = d.deliverUser(p, results.Target, out)
	default:
		err = d.deliverPrivate(p, append(out.chat, out.errors...))
	}
	if err != nil {
		log.Printf("Failed to deliver results for roll %s: %v", results.RollID, err)
	}

	if p.output == models.OutputToChannel {
		d.moderate(p, results.Source, out.moderation)
	}
}

func (d *dispatcher) deliverChannel(p *pendingRoll, out *rendered) error {
	messages := chunk(out.chat)
	if len(messages) == 0 {
		if err := d.session.InteractionResponseDelete(p.interaction); err != nil {
			return fmt.Errorf("failed to delete deferred response: %w", err)
		}
	} else {
		if err := d.edit(p.interaction, messages[0]); err != nil {
			return err
		}
		for _, message := range messages[1:] {
			if err := d.followup(p.interaction, message, false); err != nil {
				return err
			}
		}
	}

	for _, message := range chunk(out.errors) {
		if err := d.followup(p.interaction, message, true); err != nil {
			return err
		}
	}
	return nil
}

// deliverUser sends the chat lines to the target user and echoes
// everything to the requester
func (d *dispatcher) deliverUser(p *pendingRoll, targetID string, out *rendered) error {
	echo := append([]string{}, out.chat...)

	if len(out.chat) > 0 {
		if err := d.sendDM(targetID, out.chat); err != nil {
			log.Printf("Failed to message user %s: %v", targetID, err)
			echo = append(echo, msgDMFailed)
		}
	}

	return d.deliverPrivate(p, append(echo, out.errors...))
}

func (d *dispatcher) sendDM(userID string, lines []string) error {
	channel, err := d.session.UserChannelCreate(userID)
	if err != nil {
		return fmt.Errorf("failed to open DM channel: %w", err)
	}

	for _, message := range chunk(lines) {
		if _, err := d.session.ChannelMessageSend(channel.ID, message); err != nil {
			return fmt.Errorf("failed to send DM: %w", err)
		}
	}
	return nil
}

// deliverPrivate answers with lines only the requester sees
func (d *dispatcher) deliverPrivate(p *pendingRoll, lines []string) error {
	messages := chunk(lines)
	if len(messages) == 0 {
		messages = []string{msgNoResults}
	}

	if err := d.edit(p.interaction, messages[0]); err != nil {
		return err
	}
	for _, message := range messages[1:] {
		if err := d.followup(p.interaction, message, true); err != nil {
			return err
		}
	}
	return nil
}

// moderate carries out kicks and mutes against the requester
func (d *dispatcher) moderate(p *pendingRoll, userID string, lines []models.Line) {
	if p.guildID == "" {
		return
	}

	for _, line := range lines {
		switch line.Kind {
		case models.ResultKick:
			if err := d.session.GuildMemberDeleteWithReason(p.guildID, userID, line.Data[0]); err != nil {
				log.Printf("Failed to kick %s: %v", userID, err)
			}
		case models.ResultMute:
			seconds, err := strconv.Atoi(line.Data[1])
			if err != nil || seconds <= 0 {
				log.Printf("Ignoring mute for %s with bad duration %q", userID, line.Data[1])
				continue
			}
			until := d.clock.Now().Add(time.Duration(seconds) * time.Second)
			if err := d.session.GuildMemberTimeout(p.guildID, userID, &until); err != nil {
				log.Printf("Failed to time out %s: %v", userID, err)
				continue
			}
			log.Printf("Timed out %s until %s: %s", userID, until.Format(time.RFC3339), line.Data[0])
		}
	}
}

func (d *dispatcher) edit(i *discordgo.Interaction, content string) error {
	if _, err := d.session.InteractionResponseEdit(i, &discordgo.WebhookEdit{
		Content: &content,
	}); err != nil {
		return fmt.Errorf("failed to edit response: %w", err)
	}
	return nil
}

func (d *dispatcher) followup(i *discordgo.Interaction, content string, ephemeral bool) error {
	params := &discordgo.WebhookParams{
		Content: content,
	}
	if ephemeral {
		params.Flags = discordgo.MessageFlagsEphemeral
	}

	if _, err := d.session.FollowupMessageCreate(i, true, params); err != nil {
		return fmt.Errorf("failed to send followup: %w", err)
	}
	return nil
}

// pendingCount is how many interactions are waiting on results
func (d *dispatcher) pendingCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

// displayName picks the name a member goes by in the guild
func displayName(member *discordgo.Member, user *discordgo.User) string {
	if member != nil && member.Nick != "" {
		return member.Nick
	}
	if user == nil {
		return ""
	}
	if user.GlobalName != "" {
		return user.GlobalName
	}
	return user.Username
}

// words splits free text the way a chat command line is split
func words(text string) []string {
	return strings.Fields(text)
}
