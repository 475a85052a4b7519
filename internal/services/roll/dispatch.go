package roll

import "strings"

// preset is a named roll procedure. A roll matches when its first word is
// one of names and each following word is one of the alternatives in
// follow at that position.
type preset struct {
	names  []string
	follow [][]string

	// flavor procedures only make sense for a chat audience
	flavor bool

	run func(s *service) error
}

// presets are tried in order; anything unmatched is read as an expression
var presets = []preset{
	{names: []string{"craps"}, run: (*service).rollCraps},
	{names: []string{"the"}, follow: [][]string{{"dice"}}, run: (*service).rollCraps},
	{names: []string{"dtwenty", "dt"}, run: (*service).rollD20},
	{names: []string{"exalted", "exalt", "exal", "ex"}, run: func(s *service) error { return s.rollExalted(true) }},
	{names: []string{"exalted2", "exalt2", "exal2", "ex2"}, run: func(s *service) error { return s.rollExalted(false) }},
	{names: []string{"newhorizons", "nh", "horizons", "hz"}, run: (*service).rollNewHorizons},
	{names: []string{"rtd"}, run: (*service).rollRTD},
	{names: []string{"shadowrun", "shadow", "shad"}, run: (*service).rollShadowrun},
	{names: []string{"wod"}, run: (*service).rollWOD},
	{names: []string{"rwod"}, run: (*service).rollRevisedWOD},
	{names: []string{"nwod"}, run: (*service).rollNewWOD},
	{names: []string{"nwodc"}, run: (*service).rollNewWODChance},
	{names: []string{"init"}, run: (*service).rollInitiative},
	{names: []string{"attack", "hit", "check", "save"}, run: (*service).rollDNDAlias},

	{names: []string{"barrel"}, flavor: true, run: (*service).flavorBarrel},
	{names: []string{"down"}, follow: [][]string{{"the"}, {"stairs"}}, flavor: true, run: (*service).flavorStairs},
	{names: []string{"stairs"}, flavor: true, run: (*service).flavorStairs},
	{names: []string{"in"}, follow: [][]string{{"the"}, {"hay"}}, flavor: true, run: (*service).flavorHay},
	{names: []string{"hay"}, flavor: true, run: (*service).flavorHay},
	{names: []string{"joint", "cigar"}, flavor: true, run: (*service).flavorJoint},
	{names: []string{"fuzzfactor"}, flavor: true, run: (*service).flavorFuzzFactor},
	{names: []string{"over"}, flavor: true, run: (*service).flavorOver},
	{names: []string{"rick"}, flavor: true, run: (*service).flavorRick},
	{names: []string{"your", "yo"}, follow: [][]string{{"mom", "mum", "mother", "momma"}}, flavor: true, run: (*service).flavorMom},
	{names: []string{"your", "yo"}, follow: [][]string{{"dad", "father"}}, flavor: true, run: (*service).flavorDad},
}

// matches reports whether the roll's words select this preset
func (p *preset) matches(s *service) bool {
	if !contains(p.names, s.word(0)) {
		return false
	}
	for i, alternatives := range p.follow {
		if !contains(alternatives, s.word(i+1)) {
			return false
		}
	}
	return true
}

func contains(list []string, word string) bool {
	for _, item := range list {
		if item == word {
			return true
		}
	}
	return false
}

// dispatch runs the preset the roll names, a repeated expression, or a
// plain expression
func (s *service) dispatch() error {
	for i := range presets {
		p := &presets[i]
		if !p.matches(s) {
			continue
		}
		if p.flavor && !s.roll.Output.IsChat() {
			s.results.AddError(msgFlavorUnavailable)
			return nil
		}
		return p.run(s)
	}

	if isRepeated(s.roll.Expression[0]) {
		return s.rollRepeated()
	}
	return s.rollExpression()
}

// isRepeated reports whether an expression has the count[expr] form
func isRepeated(expr string) bool {
	return strings.Contains(expr, "[") && strings.HasSuffix(expr, "]")
}
