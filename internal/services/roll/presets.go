package roll

import (
	"strings"
)

func (s *service) rollCraps() error {
	s.results.AddMessage("<Results of Craps" + s.byline() + ">" + s.message(1))

	sum := s.RollTheBones(2, 6)
	switch sum {
	case 2:
		s.results.AddMessage("<Rolled a 2, snake eyes, you lose>")
		return nil
	case 3:
		s.results.AddMessage("<Rolled a 3, craps, you lose>")
		return nil
	case 12:
		s.results.AddMessage("<Rolled a 12, box cars, you lose>")
		return nil
	case 7:
		s.results.AddMessage("<Rolled a 7, a natural 7, you win>")
		return nil
	case 11:
		s.results.AddMessage("<Rolled an 11, a natural 11, you win>")
		return nil
	}

	point := str(sum)
	s.results.AddMessage("<Rolled a " + point + ", the point is " + point + ">")

	for rolls := 1; rolls < maxCrapsRolls; rolls++ {
		next := s.RollTheBones(2, 6)
		switch {
		case next == sum:
			s.results.AddMessage("<Rolled a " + str(next) + ", the point was " + point + ", matched point and won>")
			return nil
		case next == 7:
			s.results.AddMessage("<Rolled a 7, the point was " + point + ", sevened-out and lost>")
			return nil
		default:
			s.results.AddMessage("<Rolled a " + str(next) + ", the point was " + point + ">")
		}
	}
	return nil
}

func (s *service) rollD20() error {
	if s.params() < 2 {
		return s.fail("Error: D20 rolls require an additional parameter specifying the modifier to the roll, with an optional parameter for a target value.")
	}

	modInput := s.roll.Expression[1]
	mod, err := s.readRounded(modInput)
	if err != nil {
		return err
	}

	diff := 0.0
	diffInput := ""
	if s.params() >= 3 {
		diffInput = s.roll.Expression[2]
		if diff, err = s.readRounded(diffInput); err != nil {
			return err
		}
	}

	result := s.RollTheBones(1, 20)
	total := result + mod

	if diff == 0 {
		s.results.AddMessage("<D20 check" + s.byline() + " [Modifier: " + strFor(mod, modInput) + "]>" + s.message(3))
		s.results.AddMessage("<Roll: " + str(result) + ", Total: " + str(total) + ">")
		return nil
	}

	outcome := "Failure"
	if total >= diff {
		outcome = "Success"
	}
	s.results.AddMessage("<D20 check" + s.byline() + " [Modifier: " + strFor(mod, modInput) +
		", Diff: " + strFor(diff, diffInput) + "]>" + s.message(3))
	s.results.AddMessage("<Roll: " + str(result) + ", Total: " + str(total) + " - " + outcome + ">")
	return nil
}

// poolSize reads a dice pool size, clamping it to between 1 and 40 dice
func (s *service) poolSize(system, input, tooFew string) (float64, error) {
	count, err := s.readRounded(input)
	if err != nil {
		return 0, err
	}

	if !(count >= 1) {
		s.Warn("Warning: " + system + " roll specified zero or negative dice to roll, and will " + tooFew + " instead.")
		count = 1
	}
	if count > maxPool {
		s.Warn("Warning: " + system + " roll specified " + str(count) +
			" dice to roll, exceeding the maximum, and was capped at the maximum of 40 dice.")
		count = maxPool
	}
	return count, nil
}

// difficulty reads the optional difficulty at index 2, or returns def
func (s *service) difficulty(def float64) (float64, string, error) {
	if s.params() < 3 {
		return def, str(def), nil
	}

	input := s.roll.Expression[2]
	diff, err := s.readRounded(input)
	if err != nil {
		return 0, "", err
	}
	return diff, strFor(diff, input), nil
}

func (s *service) rollExalted(doubleTens bool) error {
	if s.params() < 2 {
		return s.fail("Error: Exalted rolls require an additional parameter specifying the number of dice to roll.")
	}

	count, err := s.poolSize("Exalted", s.roll.Expression[1], "have a single die")
	if err != nil {
		return err
	}

	s.results.AddMessage("<Exalted roll" + s.byline() + " [Dice: " + strFor(count, s.roll.Expression[1]) + "]>" + s.message(2))

	successes := 0.0
	dice := make([]float64, 0, int(count))
	for i := 0; i < int(count); i++ {
		die := s.RollTheBones(1, 10)
		dice = append(dice, die)

		if die >= 7 {
			successes++
		}
		if die == 10 && doubleTens {
			successes++
		}
	}

	s.results.AddMessage("<" + joinValues(dice) + ">")
	s.results.AddMessage("<Successes: " + str(successes) + ">")
	return nil
}

func (s *service) rollNewHorizons() error {
	if s.params() < 2 {
		return s.fail("Error: New Horizons rolls require one additional parameters specifying the number of dice to roll, with an optional parameter for the difficulty of the roll.")
	}

	count, err := s.poolSize("New Horizons", s.roll.Expression[1], "roll one die")
	if err != nil {
		return err
	}
	diff, diffText, err := s.difficulty(7)
	if err != nil {
		return err
	}

	s.results.AddMessage("<New Horizons roll" + s.byline() + " [Dice: " + strFor(count, s.roll.Expression[1]) +
		", Diff: " + diffText + "]>" + s.message(3))

	successes := 0.0
	totals := make([]float64, 0, int(count))
	for i := 0; i < int(count); i++ {
		die := s.RollTheBones(1, 10)
		total := die
		for die == 10 {
			die = s.RollTheBones(1, 10)
			total += die
		}

		if total == 1 {
			successes--
		} else if total >= diff {
			successes++
		}
		totals = append(totals, total)
	}

	s.results.AddMessage("<" + joinValues(totals) + ">")
	s.addSuccessSummary(successes)
	return nil
}

// addSuccessSummary reports successes, botches or a simple failure
func (s *service) addSuccessSummary(successes float64) {
	switch {
	case successes > 0:
		s.results.AddMessage("<Successes: " + str(successes) + ">")
	case successes < 0:
		s.results.AddMessage("<BOTCHED ROLL! Botches: " + str(-successes) + ">")
	default:
		s.results.AddMessage("<Simple Failure>")
	}
}

var rtdOutcomes = [...]string{
	"1 - Horrifyingly Bad",
	"2 - Failure",
	"3 - Partial Success",
	"4 - Success",
	"5 - Perfect Success",
	"6 - Horrifyingly Good",
}

func (s *service) rollRTD() error {
	note := ""
	if s.params() > 1 {
		note = ":" + s.message(1)
	}

	face := int(s.RollTheBones(1, 6))
	if face < 1 || face > len(rtdOutcomes) {
		face = len(rtdOutcomes)
	}

	s.results.AddMessage("<RTD roll" + s.byline() + ": " + rtdOutcomes[face-1] + note + ">")
	return nil
}

func (s *service) rollShadowrun() error {
	if s.params() < 3 {
		return s.fail("Error: Shadowrun rolls require two additional parameters specifying the number of dice to roll, and the difficulty of the roll.")
	}

	count, err := s.poolSize("Shadowrun", s.roll.Expression[1], "roll one die")
	if err != nil {
		return err
	}
	diff, diffText, err := s.difficulty(0)
	if err != nil {
		return err
	}

	s.results.AddMessage("<Shadowrun roll" + s.byline() + " [Dice: " + strFor(count, s.roll.Expression[1]) +
		", Diff: " + diffText + "]>" + s.message(3))

	successes := 0.0
	totals := make([]float64, 0, int(count))
	for i := 0; i < int(count); i++ {
		die := s.RollTheBones(1, 6)
		total := die
		for die == 6 {
			if total >= maxShadowrunDie {
				s.Warn("Warning: Shadowrun roll result exceeded maximum number of repeats, was capped at 120.")
				break
			}
			die = s.RollTheBones(1, 6)
			total += die
		}

		if total >= diff {
			successes++
		}
		totals = append(totals, total)
	}

	s.results.AddMessage("<" + joinValues(totals) + ">")
	s.results.AddMessage("<Successes: " + str(successes) + ">")
	return nil
}

func (s *service) rollWOD() error {
	if s.params() < 2 {
		return s.fail("Error: World of Darkness rolls require an additional parameters specifying the number of dice to roll, with an optional parameter for the difficulty of the roll.")
	}

	count, err := s.poolSize("World of Darkness", s.roll.Expression[1], "roll one die")
	if err != nil {
		return err
	}
	diff, diffText, err := s.difficulty(6)
	if err != nil {
		return err
	}

	s.results.AddMessage("<World of Darkness roll" + s.byline() + " [Dice: " + strFor(count, s.roll.Expression[1]) +
		", Diff: " + diffText + "]>" + s.message(3))

	successes, rerolls := 0.0, 0.0
	dice := make([]float64, 0, int(count))
	for i := 0; i < int(count); i++ {
		die := s.RollTheBones(1, 10)
		if die == 10 {
			rerolls++
		} else if die == 1 {
			successes--
		}
		if die >= diff {
			successes++
		}
		dice = append(dice, die)
	}

	s.results.AddMessage("<" + joinValues(dice) + ">")
	if successes > 0 && rerolls > 0 {
		s.results.AddMessage("<Successes: " + str(successes) + ", Rerolls: " + str(rerolls) + " (with a specialization)>")
		return nil
	}
	s.addSuccessSummary(successes)
	return nil
}

// explodeTens rolls again for as long as a ten comes up, writing the extra
// dice in brackets after the first
func (s *service) explodeTens(sb *strings.Builder, die float64) {
	if die != 10 {
		return
	}

	sb.WriteString("(")
	for die == 10 {
		die = s.RollTheBones(1, 10)
		sb.WriteString(str(die))
		if die == 10 {
			sb.WriteString(",")
		}
	}
	sb.WriteString(")")
}

func (s *service) rollRevisedWOD() error {
	if s.params() < 2 {
		return s.fail("Error: Revised Edition World of Darkness rolls require an additional parameter specifying the number of dice to roll, with an optional parameter for the difficulty of the roll.")
	}

	count, err := s.poolSize("Revised Edition World of Darkness", s.roll.Expression[1], "roll one die")
	if err != nil {
		return err
	}
	diff, diffText, err := s.difficulty(6)
	if err != nil {
		return err
	}

	s.results.AddMessage("<Revised Edition World of Darkness roll" + s.byline() + " [Dice: " +
		strFor(count, s.roll.Expression[1]) + ", Diff: " + diffText + "]>" + s.message(3))

	var line strings.Builder
	line.WriteString("<")
	successes, ones := 0.0, 0.0
	for i := 0; i < int(count); i++ {
		die := s.RollTheBones(1, 10)
		line.WriteString(str(die))

		if die >= diff {
			successes++
		} else if die == 1 {
			ones++
		}
		s.explodeTens(&line, die)

		if i != int(count)-1 {
			line.WriteString(" ")
		}
	}
	line.WriteString(">")
	s.results.AddMessage(line.String())

	switch {
	case successes > 0:
		s.results.AddMessage("<Successes: " + str(successes) + ">")
	case ones > 0:
		s.results.AddMessage("<BOTCHED ROLL!>")
	default:
		s.results.AddMessage("<Simple Failure>")
	}
	return nil
}

func (s *service) rollNewWOD() error {
	if s.params() < 2 {
		return s.fail("Error: New World of Darkness rolls require you specify the number of dice in your dice pool to roll.")
	}

	count, err := s.poolSize("New World of Darkness", s.roll.Expression[1], "roll one die")
	if err != nil {
		return err
	}

	s.results.AddMessage("<New World of Darkness roll" + s.byline() + " [Dice Pool: " +
		strFor(count, s.roll.Expression[1]) + "]>" + s.message(2))

	var line strings.Builder
	line.WriteString("<")
	successes := 0.0
	for i := 0; i < int(count); i++ {
		die := s.RollTheBones(1, 10)
		if die >= 6 {
			successes++
		}
		line.WriteString(str(die))
		s.explodeTens(&line, die)

		if i != int(count)-1 {
			line.WriteString(" ")
		}
	}
	line.WriteString(">")
	s.results.AddMessage(line.String())

	if successes > 0 {
		s.results.AddMessage("<Successes: " + str(successes) + ">")
	} else {
		s.results.AddMessage("<Failure>")
	}
	return nil
}

func (s *service) rollNewWODChance() error {
	s.results.AddMessage("<New World of Darkness chance die roll" + s.byline() + ">" + s.message(1))

	switch die := s.RollTheBones(1, 10); die {
	case 10:
		s.results.AddMessage("<SUCCESS!>")
	case 1:
		s.results.AddMessage("<DRAMATIC FAILURE!>")
	default:
		s.results.AddMessage("<Failure: " + str(die) + ">")
	}
	return nil
}

func (s *service) rollInitiative() error {
	// Initiative keeps a space after the closing bracket even with no message.
	s.results.AddMessage("<D&D Initiative roll" + s.byline() + ": " + str(s.RollTheBones(1, 10)) + "> " + s.message(1))
	return nil
}

// rollDNDAlias rolls a d20 labelled with the word that asked for it
func (s *service) rollDNDAlias() error {
	label := s.word(0)
	s.results.AddMessage("<D&D " + label + " roll" + s.byline() + ": " + str(s.RollTheBones(1, 20)) + ">" + s.message(1))
	return nil
}

// rollRepeated evaluates count[expr] count times
func (s *service) rollRepeated() error {
	full := s.roll.Expression[0]
	open := strings.Index(full, "[")
	countInput := full[:open]
	sub := full[open+1 : len(full)-1]

	count, err := s.readRounded(countInput)
	if err != nil {
		return err
	}
	if !(count >= 1) {
		s.Warn("Warning: Repeated roll specified zero or negative repeats, and will be performed once instead.")
		count = 1
	}
	if count > maxPool {
		s.Warn("Warning: Repeated roll specified " + str(count) +
			" repeats, exceeding the maximum, and was capped at the maximum of 40 repeats.")
		count = maxPool
	}

	s.results.AddMessage("<Repeated roll" + s.byline() + " [Expression: " + sub + ", Repeats: " +
		strFor(count, countInput) + "]>" + s.message(1))

	values := make([]float64, 0, int(count))
	if isPercentile(sub) {
		for i := 0; i < int(count); i++ {
			v, _ := s.percentile(sub)
			values = append(values, v)
		}
	} else {
		// Parsed once, rolled afresh on every evaluation.
		if err := s.parser.Parse(sub); err != nil {
			return s.parseFailure(err)
		}
		for i := 0; i < int(count); i++ {
			values = append(values, s.parser.Evaluate())
		}
	}

	s.results.AddMessage("<" + joinValues(values) + ">")
	return nil
}

// rollExpression evaluates the first word as an expression
func (s *service) rollExpression() error {
	input := s.roll.Expression[0]
	result, err := s.readExpression(input)
	if err != nil {
		return err
	}

	s.results.AddMessage("<Results" + s.byline() + " [" + input + "]: " + str(result) + ">" + s.message(1))
	return nil
}
