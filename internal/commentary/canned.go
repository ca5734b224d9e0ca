package commentary

import (
	"context"
	"math/rand"
)

var (
	midgameLines = []string{
		"That cell? Bold. Wrong, but bold.",
		"I've seen checkers players with better plans.",
		"Go on, take your time. The board isn't going anywhere.",
		"Interesting. Not good, just interesting.",
		"You do know the goal is three in a row, right?",
		"My circuits barely registered that one.",
	}

	botWonLines = []string{
		"Three in a row. Count them. Slowly.",
		"GG. Well, G for me anyway.",
		"I'd say good effort, but I was built to be honest.",
		"Another one for the machines.",
	}

	humanWonLines = []string{
		"Fine. You win this board. The next one is mine.",
		"Enjoy it. Screenshot it. It won't happen twice.",
		"I let you have that one. Morale matters.",
	}

	tieLines = []string{
		"A tie. How wonderfully mediocre.",
		"Nobody wins, but I lose less.",
		"A draw against me still isn't a win for you.",
	}
)

// CannedProducer serves built-in lines and never fails.
type CannedProducer struct{}

func NewCannedProducer() *CannedProducer {
	return &CannedProducer{}
}

func (that *CannedProducer) Produce(_ context.Context, req Request) (string, error) {
	return that.Line(req), nil
}

// Line picks a built-in taunt matching how the round went.
func (that *CannedProducer) Line(req Request) string {
	lines := midgameLines

	switch req.Outcome {
	case OutcomeBotWon:
		lines = botWonLines
	case OutcomeHumanWon:
		lines = humanWonLines
	case OutcomeTie:
		lines = tieLines
	}

	return lines[rand.Intn(len(lines))] //nolint: gosec // it's ok
}
