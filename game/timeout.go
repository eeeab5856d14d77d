package game

import (
	"fmt"

	"github.com/ratel-online/twentynine/card"
	"github.com/ratel-online/twentynine/consts"
)

// Timeout makes a legal move for the awaited player: a pass while bidding,
// their longest suit as trump, and while playing the weakest card of the lead
// suit or else a random card.
func (g *Game) Timeout() ([]Event, error) {
	id, ok := g.Awaiting()
	if !ok {
		return nil, consts.ErrorsWrongPhase
	}
	seat, _ := g.Seat(id)
	notice := status(fmt.Sprintf("Player %d timeout! Auto-playing.", seat+1))

	var events []Event
	var err error
	switch g.Phase {
	case PhaseBidding:
		events, err = g.SubmitBid(id, Pass{})
	case PhaseTrumpSelect:
		events, err = g.ChooseTrump(id, g.longestSuit(g.Players[seat].Hand))
	case PhasePlaying:
		events, err = g.PlayCard(id, g.fallbackCard(g.Players[seat].Hand))
	default:
		return nil, consts.ErrorsWrongPhase
	}
	if err != nil {
		return nil, err
	}
	return append([]Event{notice}, events...), nil
}

func (g *Game) longestSuit(hand card.Cards) card.Suit {
	best, count := card.Suits[0], -1
	for _, s := range card.Suits {
		if n := len(hand.BySuit(s)); n > count {
			best, count = s, n
		}
	}
	return best
}

func (g *Game) fallbackCard(hand card.Cards) card.Card {
	if len(g.Trick) > 0 && g.LeadSuit != nil {
		follow := hand.BySuit(*g.LeadSuit)
		if len(follow) > 0 {
			weakest := follow[0]
			for _, c := range follow[1:] {
				if g.Rules.Strength(c.Rank) < g.Rules.Strength(weakest.Rank) {
					weakest = c
				}
			}
			return weakest
		}
	}
	return hand[g.rng.Intn(len(hand))]
}
