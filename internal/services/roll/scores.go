package roll

import (
	"strings"
)

// abilities are the D&D ability scores, in the order they are rolled
var abilities = [...]string{"Str", "Dex", "Con", "Int", "Wis", "Cha"}

// dndMethods generate the score line for each D&D method, 1 based
var dndMethods = [...]func(s *service) string{
	(*service).dndInOrder,
	(*service).dndBestOfTwo,
	func(s *service) string { return s.dndPlain(6) },
	func(s *service) string { return s.dndPlain(12) },
	(*service).dndDropLowest,
	func(s *service) string {
		return s.dndLoose("Add the following dice to attributes, each starting at 8:", 7)
	},
	func(s *service) string { return s.dndLoose("Assign three dice to each attribute:", 18) },
}

// scores generates character scores for the system named by the first word
func (s *service) scores() error {
	switch s.word(0) {
	case "d&d", "dnd":
		return s.scoresDND()
	case "nh", "newhorizons", "hscores":
		return s.scoresNewHorizons()
	}
	return s.fail("Unknown system for SCORES: " + s.roll.Expression[0])
}

func (s *service) scoresDND() error {
	if s.params() < 2 {
		return s.fail("A method between 1 and 7 must be specified when generating D&D Ability Scores.")
	}

	input := s.roll.Expression[1]
	method, err := s.readRounded(input)
	if err != nil {
		return err
	}

	s.results.AddMessage("<D&D Ability Scores" + s.byline() + " [Method: " + strFor(method, input) + "]>" + s.message(2))

	if !(method >= 1 && method <= float64(len(dndMethods))) {
		return s.fail("Unrecognised method for D&D SCORES: " + strFor(method, input))
	}

	s.results.AddMessage("<" + dndMethods[int(method)-1](s) + ">")
	return nil
}

// strength formats a strength score, adding exceptional strength on an 18
func (s *service) strength(score float64) string {
	out := abilities[0] + ": " + str(score)
	if score != 18 {
		return out
	}

	exceptional := s.RollTheBones(1, 100)
	if exceptional == 100 {
		return out + "/00"
	}
	return out + "/" + twoDigits(exceptional)
}

// dndInOrder rolls 3d6 for each ability in order
func (s *service) dndInOrder() string {
	parts := []string{s.strength(s.RollTheBones(3, 6))}
	for _, ability := range abilities[1:] {
		parts = append(parts, ability+": "+str(s.RollTheBones(3, 6)))
	}
	return strings.Join(parts, " ")
}

// dndBestOfTwo rolls 3d6 twice for each ability in order, keeping the higher
func (s *service) dndBestOfTwo() string {
	best := func() float64 {
		one, two := s.RollTheBones(3, 6), s.RollTheBones(3, 6)
		if one > two {
			return one
		}
		return two
	}

	parts := []string{s.strength(best())}
	for _, ability := range abilities[1:] {
		parts = append(parts, ability+": "+str(best()))
	}
	return strings.Join(parts, " ")
}

// dndPlain rolls n scores of 3d6 to be arranged freely
func (s *service) dndPlain(n int) string {
	values := make([]float64, n)
	for i := range values {
		values[i] = s.RollTheBones(3, 6)
	}
	return joinValues(values)
}

// dndDropLowest rolls six scores of 4d6, dropping the lowest die of each
func (s *service) dndDropLowest() string {
	values := make([]float64, len(abilities))
	for i := range values {
		var dice [4]float64
		lowest := 0
		for d := range dice {
			dice[d] = s.RollTheBones(1, 6)
			if dice[d] < dice[lowest] {
				lowest = d
			}
		}

		for d, v := range dice {
			if d != lowest {
				values[i] += v
			}
		}
	}
	return joinValues(values)
}

// dndLoose rolls n single d6 for the player to hand out
func (s *service) dndLoose(title string, n int) string {
	values := make([]float64, n)
	for i := range values {
		values[i] = s.RollTheBones(1, 6)
	}
	return title + " " + joinValues(values)
}

// scoresNewHorizons rolls New Horizons powers and resistances. Word 1 is
// accepted and ignored so the free text starts at the same place as D&D.
func (s *service) scoresNewHorizons() error {
	s.results.AddMessage("<New Horizons Ability Scores" + s.byline() + ">" + s.message(2))

	physical := s.RollTheBones(3, 10) + 10
	psychic := s.RollTheBones(3, 10)
	magic := s.RollTheBones(3, 10)
	alteration := s.RollTheBones(3, 10) - 20
	if alteration < 0 {
		alteration = 0
	}

	physicalRes := s.RollTheBones(3, 10)
	psychicRes := s.RollTheBones(3, 10)
	magicRes := s.RollTheBones(3, 10)
	alterationRes := s.RollTheBones(3, 10) - 20
	if alterationRes < -5 {
		alterationRes = -5
	}

	s.results.AddMessage("<Physical Power: " + str(physical) +
		" Psychic Power: " + str(psychic) +
		" Magic Power: " + str(magic) +
		" Alteration Power: " + str(alteration) +
		" Physical Resistance: " + str(physicalRes) +
		" Psychic Resistance: " + str(psychicRes) +
		" Magic Resistance: " + str(magicRes) +
		" Alteration Resistance: " + str(alterationRes) + ">")
	return nil
}
