package game

import (
	"fmt"

	"github.com/ratel-online/twentynine/card"
)

type Phase int

const (
	PhaseWaiting Phase = iota
	PhaseBidding
	PhaseTrumpSelect
	PhasePlaying
	PhaseRoundOver
)

var phaseNames = map[Phase]string{
	PhaseWaiting:     "WAITING",
	PhaseBidding:     "BIDDING",
	PhaseTrumpSelect: "TRUMP_SELECT",
	PhasePlaying:     "PLAYING",
	PhaseRoundOver:   "ROUND_OVER",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

type Team string

const (
	TeamA Team = "A"
	TeamB Team = "B"
)

// TeamOf pairs opposite seats: 0 and 2 against 1 and 3.
func TeamOf(seat int) Team {
	if seat%2 == 0 {
		return TeamA
	}
	return TeamB
}

type Player struct {
	ID   int64      `json:"id"`
	Seat int        `json:"seat"`
	Hand card.Cards `json:"-"`
}

func (p *Player) Team() Team {
	return TeamOf(p.Seat)
}

func (p Player) String() string {
	return fmt.Sprintf("P%d[%d]", p.Seat+1, p.ID)
}

type Play struct {
	PlayerID int64     `json:"playerId"`
	Seat     int       `json:"seat"`
	Card     card.Card `json:"card"`
}

// BidAction is either Raise or Pass.
type BidAction interface {
	bid()
}

type Raise struct {
	Amount int
}

type Pass struct{}

func (Raise) bid() {}

func (Pass) bid() {}
