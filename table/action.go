package table

import (
	"github.com/ratel-online/twentynine/card"
	"github.com/ratel-online/twentynine/game"
)

type Kind int

const (
	_ Kind = iota
	KindJoin
	KindLeave
	KindBid
	KindChooseTrump
	KindPlayCard
	KindRevealTrump
	KindClaimPair

	kindFire
	kindInspect
)

var kindNames = map[Kind]string{
	KindJoin:        "join",
	KindLeave:       "leave",
	KindBid:         "bid",
	KindChooseTrump: "chooseTrump",
	KindPlayCard:    "playCard",
	KindRevealTrump: "revealTrump",
	KindClaimPair:   "claimPair",
	kindFire:        "fire",
	kindInspect:     "inspect",
}

func (k Kind) String() string {
	return kindNames[k]
}

// Action is one request for the table's run loop.
type Action struct {
	Kind     Kind
	PlayerID int64
	Name     string
	Bid      game.BidAction
	Suit     card.Suit
	Card     card.Card

	gen     int
	inspect func(g *game.Game, seated []int64)
	reply   chan struct{}
}

func Join(id int64, name string) Action {
	return Action{Kind: KindJoin, PlayerID: id, Name: name}
}

func Leave(id int64) Action {
	return Action{Kind: KindLeave, PlayerID: id}
}

func Bid(id int64, bid game.BidAction) Action {
	return Action{Kind: KindBid, PlayerID: id, Bid: bid}
}

func ChooseTrump(id int64, suit card.Suit) Action {
	return Action{Kind: KindChooseTrump, PlayerID: id, Suit: suit}
}

func PlayCard(id int64, c card.Card) Action {
	return Action{Kind: KindPlayCard, PlayerID: id, Card: c}
}

func RevealTrump(id int64) Action {
	return Action{Kind: KindRevealTrump, PlayerID: id}
}

func ClaimPair(id int64) Action {
	return Action{Kind: KindClaimPair, PlayerID: id}
}
