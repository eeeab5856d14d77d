package game

import (
	"fmt"

	"github.com/ratel-online/twentynine/card"
	"github.com/ratel-online/twentynine/consts"
)

// SubmitBid applies one auction action for the seat on turn. The auction is
// a single pass around the table. A raise that is not above the current bid
// or exceeds the cap counts as a pass and the actor is told why.
func (g *Game) SubmitBid(id int64, action BidAction) ([]Event, error) {
	if g.Phase != PhaseBidding {
		return nil, consts.ErrorsWrongPhase
	}
	seat, ok := g.Seat(id)
	if !ok {
		return nil, consts.ErrorsPlayerUnknown
	}
	if seat != g.Turn {
		return nil, consts.ErrorsNotYourTurn
	}
	events := make([]Event, 0, 3)
	switch a := action.(type) {
	case Raise:
		switch {
		case a.Amount <= g.CurrentBid:
			events = append(events, Notice(id, consts.ErrorsBidTooLow))
		case g.Rules.MaxBid > 0 && a.Amount > g.Rules.MaxBid:
			events = append(events, Notice(id, consts.ErrorsBidTooHigh))
		default:
			g.CurrentBid = a.Amount
			g.BidWinner = seat
			g.BidderTeam = TeamOf(seat)
			events = append(events, status(fmt.Sprintf("High Bid: %d by P%d", g.CurrentBid, seat+1)))
		}
	case Pass:
	default:
		return nil, consts.ErrorsBidInvalid
	}

	g.Turn = g.next(g.Turn)
	g.Step++
	if g.Turn != 0 {
		return append(events, g.askBid()), nil
	}
	return append(events, g.closeAuction()...), nil
}

func (g *Game) closeAuction() []Event {
	events := make([]Event, 0, 3)
	if g.BidWinner < 0 {
		g.BidWinner = 0
		g.CurrentBid = g.Rules.MinBid()
		g.BidderTeam = TeamOf(0)
		events = append(events, status(fmt.Sprintf("Everyone passed. P1 takes the bid at %d.", g.CurrentBid)))
	}
	g.Phase = PhaseTrumpSelect
	g.Turn = g.BidWinner
	winner := g.Players[g.BidWinner]
	return append(events,
		direct(winner.ID, consts.EventSelectTrump, "You won bid! Pick Trump."),
		status("Bidding Over. Winner picking Trump."),
	)
}

// ChooseTrump records the bid winner's concealed trump, deals the second
// tranche and hands the lead to the bidder.
func (g *Game) ChooseTrump(id int64, suit card.Suit) ([]Event, error) {
	if g.Phase != PhaseTrumpSelect {
		return nil, consts.ErrorsWrongPhase
	}
	seat, ok := g.Seat(id)
	if !ok {
		return nil, consts.ErrorsPlayerUnknown
	}
	if seat != g.BidWinner {
		return nil, consts.ErrorsNotBidWinner
	}
	if !suit.Valid() {
		return nil, consts.ErrorsSuitInvalid
	}
	trump := suit
	g.Trump = &trump
	g.TrumpRevealed = false
	events := make([]Event, 0, len(g.Players)+2)
	events = append(events, broadcast(consts.EventTrumpSet, TrumpSet{Msg: "Trump Hidden.", Seat: seat}))
	for i, p := range g.Players {
		second := g.Stock[i]
		p.Hand = append(p.Hand, second...)
		g.Stock[i] = nil
		events = append(events, direct(p.ID, consts.EventDealSecondHand, append(card.Cards{}, second...)))
	}
	g.Turn = g.BidWinner
	g.Phase = PhasePlaying
	g.Step++
	return append(events, status("Game On! Bidder leads.")), nil
}

// RequestTrumpReveal exposes the trump suit to the table. Only the first
// request has an effect.
func (g *Game) RequestTrumpReveal(id int64) ([]Event, error) {
	seat, ok := g.Seat(id)
	if !ok {
		return nil, consts.ErrorsPlayerUnknown
	}
	switch g.Phase {
	case PhasePlaying:
	case PhaseRoundOver:
		return nil, consts.ErrorsWrongPhase
	default:
		return nil, consts.ErrorsTrumpNotSet
	}
	if g.TrumpRevealed {
		return nil, nil
	}
	g.TrumpRevealed = true
	return []Event{broadcast(consts.EventTrumpRevealed, TrumpRevealed{
		Suit:       *g.Trump,
		RevealerID: id,
		Seat:       seat,
	})}, nil
}
