package roll

import (
	"math"

	"github.com/KirkDiggler/rollengine/internal/models"
)

// Names of the NPCs that turn up in flavor rolls
const (
	npcHost   = "BotServ"
	npcPolice = "OperServ"
)

// toChannel reports whether the roll is being shown to a whole channel,
// the only place NPCs speak and moderation happens
func (s *service) toChannel() bool {
	return s.roll.Output == models.OutputToChannel
}

func (s *service) flavorBarrel() error {
	name := s.requester()

	s.results.AddAction("roars and beats its chest")
	s.results.AddAction("throws a barrel at " + name)
	if s.toChannel() {
		s.results.AddNPCMessage(npcHost, "Do a barrel roll!")
	}

	if save := s.RollTheBones(1, 20); save > 5 {
		s.results.AddAction("roars angrily as the barrel bounces past " + name)
		if s.toChannel() {
			s.results.AddNPCMessage(npcHost, "You did it! I was worried for a moment.")
		}
		return nil
	}

	s.results.AddAction("roars in triumph as the barrel hits " + name)
	s.results.AddError("Game over.")
	return nil
}

func (s *service) flavorStairs() error {
	if s.toChannel() {
		s.results.AddKick("shoves you down the stairs")
	}
	s.results.AddError("Have a nice trip! See you next fall!")
	return nil
}

func (s *service) flavorHay() error {
	s.results.AddAction("beats the **hell** out of " + s.requester())
	s.results.AddMessage("I'm **NOT** that kind of **SERVICE** SICKO!")
	s.results.AddError("Try OperServ or something; he might be into that.")
	return nil
}

// flavorJoint passes a joint. Every pass wears down the fuzz factor; once it
// runs out the requester is busted, muted for up to ten minutes, and the
// factor is rolled afresh.
func (s *service) flavorJoint() error {
	name := s.requester()

	s.fuzzFactor--
	s.results.AddAction("passes a 'cigarette' to " + name)

	if s.fuzzFactor > 0 {
		s.results.AddError("If you get busted, I never saw you!")
		return nil
	}

	s.results.AddAction("suddenly looks terrified, exclaims \"We never met!\", then jumps out a window")

	sentence := s.RollTheBones(1, 600)
	if s.toChannel() {
		minutes := math.Floor(sentence / 60)
		s.results.AddNPCAction(npcPolice, "busts into the room with guns blazing")
		s.results.AddNPCMessage(npcPolice, "**FREEZE!** "+name+", this is a raid!")
		s.results.AddNPCAction(npcPolice, "sentences "+name+" to "+str(minutes)+" minutes, "+
			str(sentence-minutes*60)+" seconds in prison")
		s.results.AddMute("Say no to drugs!", int(sentence))
	}

	s.fuzzFactor = s.RollTheBones(1, 100)
	return nil
}

func (s *service) flavorFuzzFactor() error {
	if s.params() < 2 {
		return s.fail("Error: Fuzz Factor setting requires an additional parameter giving what to set the Fuzz Factor to.")
	}

	input := s.roll.Expression[1]
	factor, err := s.readRounded(input)
	if err != nil {
		return err
	}
	if !(factor >= 1) {
		s.Warn("Warning: Fuzz Factor specified zero or negative value, and was set to 1 instead.")
		factor = 1
	}
	s.fuzzFactor = factor

	s.results.AddMessage("<Fuzz Factor set" + s.byline() + " to " + strFor(factor, input) + ">")
	return nil
}

func (s *service) flavorOver() error {
	s.results.AddAction("kicks " + s.requester() + " in the shin.")
	s.results.AddMessage("What am I, your dog?")
	s.results.AddError("I am not a dog, moron!")
	return nil
}

func (s *service) flavorRick() error {
	s.results.AddAction("dances in, and begins to sing")
	s.results.AddMessage("Never gonna give you up, never gonna let you down...")
	s.results.AddMessage("Never gonna run around, and desert you! Never gonna make you cry...")
	s.results.AddMessage("Never gonna say goodbye! Never gonna tell a lie, and hurt you!")
	s.results.AddMessage("You just got roll ricked. *dances out, leaving " + s.requester() + " a bill*")
	s.results.AddError("That'll be $750.")
	return nil
}

func (s *service) flavorMom() error {
	s.results.AddMessage("No thanks " + s.requester() + ". Oh, by the way, here's the $20 I owe YOUR mom for last night.")
	s.results.AddError("Yo Momma!")
	return nil
}

func (s *service) flavorDad() error {
	name := s.requester()
	s.results.AddMessage("No thanks " + name + ". Your dad would be jealous.")
	s.results.AddScene("This explains those slurping noises coming from " + name + "'s father's room last night!")
	s.results.AddError("Schwing!")
	return nil
}
