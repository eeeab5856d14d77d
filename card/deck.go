package card

import (
	"fmt"
	"math/rand"
)

// NewDeck returns the 32 cards ordered by suit then rank.
func NewDeck() Cards {
	deck := make(Cards, 0, len(Suits)*len(Ranks))
	for _, s := range Suits {
		for _, r := range Ranks {
			deck = append(deck, New(r, s))
		}
	}
	return deck
}

// Shuffle returns a Fisher-Yates permutation of deck driven by rng.
func Shuffle(deck Cards, rng *rand.Rand) Cards {
	out := make(Cards, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

func NewShuffledDeck(rng *rand.Rand) Cards {
	return Shuffle(NewDeck(), rng)
}

// Tranches holds the two deals of one seat.
type Tranches struct {
	First  Cards
	Second Cards
}

// Deal splits deck into per-seat tranches. Seat i receives
// deck[i*(first+second):][:first] and then the following second cards.
func Deal(deck Cards, players, first, second int) ([]Tranches, error) {
	per := first + second
	if players <= 0 || first < 0 || second < 0 || len(deck) != players*per {
		return nil, fmt.Errorf("deal %d cards to %d players as %d+%d", len(deck), players, first, second)
	}
	out := make([]Tranches, players)
	for seat := 0; seat < players; seat++ {
		base := seat * per
		out[seat] = Tranches{
			First:  append(Cards{}, deck[base:base+first]...),
			Second: append(Cards{}, deck[base+first:base+per]...),
		}
	}
	return out, nil
}
