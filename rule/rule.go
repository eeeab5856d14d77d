package rule

import (
	"github.com/ratel-online/twentynine/card"
)

// Classic is the four-seat, 32-card variant.
var Classic = Rules{
	Players:       4,
	TrancheSize:   4,
	Tricks:        8,
	OpeningBid:    16,
	MaxBid:        28,
	MarriageBonus: 4,
}

type Rules struct {
	Players       int `json:"players"`
	TrancheSize   int `json:"trancheSize"`
	Tricks        int `json:"tricks"`
	OpeningBid    int `json:"openingBid"`
	MaxBid        int `json:"maxBid"`
	MarriageBonus int `json:"marriageBonus"`
}

var strength = map[card.Rank]int{
	card.Jack:  8,
	card.Nine:  7,
	card.Ace:   6,
	card.Ten:   5,
	card.King:  4,
	card.Queen: 3,
	card.Eight: 2,
	card.Seven: 1,
}

var points = map[card.Rank]int{
	card.Jack: 3,
	card.Nine: 2,
	card.Ace:  1,
	card.Ten:  1,
}

// MinBid is the lowest accepted raise.
func (r Rules) MinBid() int {
	return r.OpeningBid + 1
}

func (r Rules) HandSize() int {
	return r.TrancheSize * 2
}

func (r Rules) DeckSize() int {
	return r.Players * r.HandSize()
}

func (r Rules) Strength(rank card.Rank) int {
	return strength[rank]
}

func (r Rules) Points(rank card.Rank) int {
	return points[rank]
}

func (r Rules) TrickPoints(cards []card.Card) int {
	total := 0
	for _, c := range cards {
		total += points[c.Rank]
	}
	return total
}

// Winner returns the index of the winning card. cards[0] is the lead and
// trump may be nil while it is unknown to the table.
func (r Rules) Winner(cards []card.Card, trump *card.Suit) int {
	if len(cards) == 0 {
		return -1
	}
	isTrump := func(c card.Card) bool {
		return trump != nil && c.Suit == *trump
	}
	lead := cards[0].Suit
	winner := 0
	for i := 1; i < len(cards); i++ {
		challenger, best := cards[i], cards[winner]
		switch {
		case isTrump(challenger) && !isTrump(best):
			winner = i
		case isTrump(challenger) && isTrump(best):
			if strength[challenger.Rank] > strength[best.Rank] {
				winner = i
			}
		case !isTrump(challenger) && !isTrump(best) && challenger.Suit == lead && best.Suit == lead:
			if strength[challenger.Rank] > strength[best.Rank] {
				winner = i
			}
		}
	}
	return winner
}
