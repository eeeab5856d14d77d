package game

import (
	"fmt"

	"github.com/ratel-online/twentynine/card"
	"github.com/ratel-online/twentynine/consts"
)

// PlayCard validates and applies one play. The fourth card of a trick
// resolves it and leaves it pending until CompleteTrick.
func (g *Game) PlayCard(id int64, c card.Card) ([]Event, error) {
	if g.Phase != PhasePlaying {
		return nil, consts.ErrorsWrongPhase
	}
	if g.TrickPending {
		return nil, consts.ErrorsTrickResolving
	}
	seat, ok := g.Seat(id)
	if !ok {
		return nil, consts.ErrorsPlayerUnknown
	}
	if seat != g.Turn {
		return nil, consts.ErrorsNotYourTurn
	}
	player := g.Players[seat]
	if !player.Hand.Contains(c) {
		return nil, consts.ErrorsCardNotInHand
	}
	if len(g.Trick) > 0 && c.Suit != *g.LeadSuit && player.Hand.HasSuit(*g.LeadSuit) {
		return nil, consts.ErrorsMustFollowSuit
	}

	if len(g.Trick) == 0 {
		lead := c.Suit
		g.LeadSuit = &lead
	}
	player.Hand, _ = player.Hand.Remove(c)
	g.Trick = append(g.Trick, Play{PlayerID: id, Seat: seat, Card: c})
	g.Step++
	events := []Event{broadcast(consts.EventCardPlayed, CardPlayed{PlayerID: id, Seat: seat, Card: c})}
	if len(g.Trick) < len(g.Players) {
		g.Turn = g.next(g.Turn)
		return events, nil
	}
	g.resolveTrick()
	return events, nil
}

func (g *Game) resolveTrick() {
	cards := make([]card.Card, len(g.Trick))
	for i, p := range g.Trick {
		cards[i] = p.Card
	}
	winner := g.Trick[g.Rules.Winner(cards, g.Trump)]
	g.TeamPoints[TeamOf(winner.Seat)] += g.Rules.TrickPoints(cards)
	g.TricksPlayed++
	g.TrickPending = true
	g.trickWinner = winner.Seat
}

// CompleteTrick announces the pending trick and either hands the lead to its
// winner or finalizes the round after the last trick.
func (g *Game) CompleteTrick() ([]Event, error) {
	if g.Phase != PhasePlaying || !g.TrickPending {
		return nil, consts.ErrorsWrongPhase
	}
	winner := g.Players[g.trickWinner]
	points := 0
	for _, p := range g.Trick {
		points += g.Rules.Points(p.Card.Rank)
	}
	g.Tricks = append(g.Tricks, g.Trick)
	g.Trick = nil
	g.LeadSuit = nil
	g.TrickPending = false
	g.Step++
	events := []Event{
		broadcast(consts.EventTrickComplete, TrickComplete{WinnerID: winner.ID, Seat: winner.Seat, Points: points}),
		broadcast(consts.EventUpdateScore, g.score()),
	}
	if g.TricksPlayed >= g.Rules.Tricks {
		return append(events, g.finalize()), nil
	}
	g.Turn = winner.Seat
	return append(events, status(fmt.Sprintf("Player %d Leads.", winner.Seat+1))), nil
}

func (g *Game) finalize() Event {
	scored := g.TeamPoints[g.BidderTeam]
	won := scored >= g.CurrentBid
	var msg string
	if won {
		g.GamePoints[g.BidderTeam]++
		msg = fmt.Sprintf("Team %s WON! Scored %d", g.BidderTeam, scored)
	} else {
		g.GamePoints[g.BidderTeam]--
		msg = fmt.Sprintf("Team %s LOST! Scored %d", g.BidderTeam, scored)
	}
	g.Phase = PhaseRoundOver
	points := map[Team]int{TeamA: g.GamePoints[TeamA], TeamB: g.GamePoints[TeamB]}
	return broadcast(consts.EventGameOver, GameOver{
		Msg:        msg,
		GamePoints: points,
		Bidder:     g.BidderTeam,
		Won:        won,
		RoundID:    g.RoundID,
	})
}

// ClaimPair awards the marriage bonus to a player holding the king and
// queen of the revealed trump, once per team per round.
func (g *Game) ClaimPair(id int64) ([]Event, error) {
	if g.Phase != PhasePlaying {
		return nil, consts.ErrorsWrongPhase
	}
	seat, ok := g.Seat(id)
	if !ok {
		return nil, consts.ErrorsPlayerUnknown
	}
	if !g.TrumpRevealed {
		return nil, consts.ErrorsTrumpNotRevealed
	}
	hand := g.Players[seat].Hand
	if !hand.Contains(card.New(card.King, *g.Trump)) || !hand.Contains(card.New(card.Queen, *g.Trump)) {
		return nil, consts.ErrorsInvalidClaim
	}
	team := TeamOf(seat)
	if g.Marriages[team] {
		return nil, consts.ErrorsPairClaimed
	}
	g.Marriages[team] = true
	g.TeamPoints[team] += g.Rules.MarriageBonus
	return []Event{
		status(fmt.Sprintf("MARRIAGE CLAIMED! (+%d)", g.Rules.MarriageBonus)),
		broadcast(consts.EventUpdateScore, g.score()),
	}, nil
}
