package game

import (
	"github.com/ratel-online/twentynine/card"
	"github.com/ratel-online/twentynine/consts"
)

// Event is an outbound notification. An empty To means every member of the table.
type Event struct {
	Name string
	To   []int64
	Data interface{}
}

func (e Event) Broadcast() bool {
	return len(e.To) == 0
}

func broadcast(name string, data interface{}) Event {
	return Event{Name: name, Data: data}
}

func direct(id int64, name string, data interface{}) Event {
	return Event{Name: name, To: []int64{id}, Data: data}
}

func status(msg string) Event {
	return broadcast(consts.EventGameStatus, msg)
}

// Notice tells one player why an action had no effect.
func Notice(id int64, err error) Event {
	return direct(id, consts.EventErrorMsg, err.Error())
}

type AskBid struct {
	PlayerID    int64 `json:"playerId"`
	Seat        int   `json:"seat"`
	CurrentHigh int   `json:"currentHigh"`
}

type TrumpSet struct {
	Msg  string `json:"msg"`
	Seat int    `json:"seat"`
}

type TrumpRevealed struct {
	Suit       card.Suit `json:"suit"`
	RevealerID int64     `json:"revealerId"`
	Seat       int       `json:"seat"`
}

type CardPlayed struct {
	PlayerID int64     `json:"playerId"`
	Seat     int       `json:"seat"`
	Card     card.Card `json:"card"`
}

type TrickComplete struct {
	WinnerID int64 `json:"winnerId"`
	Seat     int   `json:"seat"`
	Points   int   `json:"points"`
}

type UpdateScore struct {
	TeamA  int  `json:"teamA"`
	TeamB  int  `json:"teamB"`
	Target int  `json:"target"`
	Bidder Team `json:"bidder"`
}

type GameOver struct {
	Msg        string       `json:"msg"`
	GamePoints map[Team]int `json:"gamePoints"`
	Bidder     Team         `json:"bidder"`
	Won        bool         `json:"won"`
	RoundID    string       `json:"roundId"`
}
