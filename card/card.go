package card

import (
	"fmt"
	"strings"

	"github.com/ratel-online/twentynine/consts"
)

type Suit int

const (
	_ Suit = iota
	Hearts
	Diamonds
	Clubs
	Spades
)

var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

var suitNames = map[Suit]string{
	Hearts:   "hearts",
	Diamonds: "diamonds",
	Clubs:    "clubs",
	Spades:   "spades",
}

var suitSymbols = map[Suit]string{
	Hearts:   "♥",
	Diamonds: "♦",
	Clubs:    "♣",
	Spades:   "♠",
}

func (s Suit) Valid() bool {
	return s >= Hearts && s <= Spades
}

func (s Suit) String() string {
	if name, ok := suitNames[s]; ok {
		return name
	}
	return fmt.Sprintf("suit(%d)", int(s))
}

func (s Suit) Symbol() string {
	return suitSymbols[s]
}

// Red reports whether the suit is printed in red.
func (s Suit) Red() bool {
	return s == Hearts || s == Diamonds
}

func (s Suit) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, consts.ErrorsSuitInvalid
	}
	return []byte(s.String()), nil
}

func (s *Suit) UnmarshalText(text []byte) error {
	suit, err := ParseSuit(string(text))
	if err != nil {
		return err
	}
	*s = suit
	return nil
}

// ParseSuit accepts the full name, the first letter or the symbol.
func ParseSuit(text string) (Suit, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	for _, s := range Suits {
		if text == suitNames[s] || text == suitNames[s][:1] || text == suitSymbols[s] {
			return s, nil
		}
	}
	return 0, consts.ErrorsSuitInvalid
}

type Rank int

const (
	_ Rank = iota
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var Ranks = []Rank{Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

var rankNames = map[Rank]string{
	Seven: "7",
	Eight: "8",
	Nine:  "9",
	Ten:   "10",
	Jack:  "J",
	Queen: "Q",
	King:  "K",
	Ace:   "A",
}

func (r Rank) Valid() bool {
	return r >= Seven && r <= Ace
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return fmt.Sprintf("rank(%d)", int(r))
}

func (r Rank) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, consts.ErrorsCardInvalid
	}
	return []byte(r.String()), nil
}

func (r *Rank) UnmarshalText(text []byte) error {
	rank, err := ParseRank(string(text))
	if err != nil {
		return err
	}
	*r = rank
	return nil
}

func ParseRank(text string) (Rank, error) {
	text = strings.ToUpper(strings.TrimSpace(text))
	switch text {
	case "T":
		return Ten, nil
	case "JACK":
		return Jack, nil
	case "QUEEN":
		return Queen, nil
	case "KING":
		return King, nil
	case "ACE":
		return Ace, nil
	}
	for _, r := range Ranks {
		if text == rankNames[r] {
			return r, nil
		}
	}
	return 0, consts.ErrorsCardInvalid
}

type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

func New(rank Rank, suit Suit) Card {
	return Card{Suit: suit, Rank: rank}
}

func (c Card) Valid() bool {
	return c.Suit.Valid() && c.Rank.Valid()
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// Parse reads forms such as "J hearts", "10♦", "qs" or "A of spades".
func Parse(text string) (Card, error) {
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) == 3 && fields[1] == "of" {
		fields = []string{fields[0], fields[2]}
	}
	if len(fields) == 1 {
		word := []rune(fields[0])
		if len(word) < 2 {
			return Card{}, consts.ErrorsCardInvalid
		}
		fields = []string{string(word[:len(word)-1]), string(word[len(word)-1:])}
	}
	if len(fields) != 2 {
		return Card{}, consts.ErrorsCardInvalid
	}
	rank, err := ParseRank(fields[0])
	if err != nil {
		return Card{}, err
	}
	suit, err := ParseSuit(fields[1])
	if err != nil {
		return Card{}, err
	}
	return New(rank, suit), nil
}

type Cards []Card

func (cs Cards) Contains(c Card) bool {
	return cs.IndexOf(c) >= 0
}

func (cs Cards) IndexOf(c Card) int {
	for i, v := range cs {
		if v == c {
			return i
		}
	}
	return -1
}

// Remove returns a copy without the first occurrence of c.
func (cs Cards) Remove(c Card) (Cards, bool) {
	idx := cs.IndexOf(c)
	if idx < 0 {
		return cs, false
	}
	out := make(Cards, 0, len(cs)-1)
	out = append(out, cs[:idx]...)
	out = append(out, cs[idx+1:]...)
	return out, true
}

func (cs Cards) BySuit(s Suit) Cards {
	out := make(Cards, 0)
	for _, c := range cs {
		if c.Suit == s {
			out = append(out, c)
		}
	}
	return out
}

func (cs Cards) HasSuit(s Suit) bool {
	for _, c := range cs {
		if c.Suit == s {
			return true
		}
	}
	return false
}

func (cs Cards) String() string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
