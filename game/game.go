package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/ratel-online/twentynine/card"
	"github.com/ratel-online/twentynine/consts"
	"github.com/ratel-online/twentynine/rule"
)

// Game is the state of one table. It is not safe for concurrent use; every
// method is expected to run on the table's single writer.
type Game struct {
	Rules   rule.Rules
	RoundID string
	Phase   Phase
	Players []*Player
	// Stock holds each seat's second tranche until trump is chosen.
	Stock []card.Cards

	Turn       int
	CurrentBid int
	BidWinner  int
	BidderTeam Team

	Trump         *card.Suit
	TrumpRevealed bool
	LeadSuit      *card.Suit
	Trick         []Play
	Tricks        [][]Play
	TricksPlayed  int
	// TrickPending is set while a full trick waits for CompleteTrick.
	TrickPending bool
	trickWinner  int

	TeamPoints map[Team]int
	GamePoints map[Team]int
	Marriages  map[Team]bool

	// Step changes whenever the table should wait for something new.
	Step int

	rng *rand.Rand
}

func New(rules rule.Rules, rng *rand.Rand) *Game {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Game{
		Rules:      rules,
		Phase:      PhaseWaiting,
		BidWinner:  -1,
		TeamPoints: map[Team]int{TeamA: 0, TeamB: 0},
		GamePoints: map[Team]int{TeamA: 0, TeamB: 0},
		Marriages:  map[Team]bool{},
		rng:        rng,
	}
}

// StartRound shuffles, deals the first tranche and opens the auction.
// Game points carry over from earlier rounds.
func (g *Game) StartRound(ids []int64) ([]Event, error) {
	if g.Phase != PhaseWaiting && g.Phase != PhaseRoundOver {
		return nil, consts.ErrorsWrongPhase
	}
	if len(ids) != g.Rules.Players {
		return nil, consts.ErrorsInputInvalid
	}
	seen := map[int64]bool{}
	for _, id := range ids {
		if seen[id] {
			return nil, consts.ErrorsInputInvalid
		}
		seen[id] = true
	}
	deck := card.NewShuffledDeck(g.rng)
	tranches, err := card.Deal(deck, g.Rules.Players, g.Rules.TrancheSize, g.Rules.TrancheSize)
	if err != nil {
		return nil, err
	}

	g.resetRound()
	g.RoundID = uuid.NewString()
	g.Players = make([]*Player, len(ids))
	g.Stock = make([]card.Cards, len(ids))
	events := make([]Event, 0, len(ids)+2)
	for seat, id := range ids {
		g.Players[seat] = &Player{ID: id, Seat: seat, Hand: tranches[seat].First}
		g.Stock[seat] = tranches[seat].Second
		events = append(events, direct(id, consts.EventDealCards, append(card.Cards{}, tranches[seat].First...)))
	}
	g.Phase = PhaseBidding
	g.Turn = 0
	g.Step++
	events = append(events,
		status("Bidding Phase. Player 1 starts."),
		g.askBid(),
	)
	return events, nil
}

func (g *Game) resetRound() {
	g.Players = nil
	g.Stock = nil
	g.Turn = 0
	g.CurrentBid = g.Rules.OpeningBid
	g.BidWinner = -1
	g.BidderTeam = ""
	g.Trump = nil
	g.TrumpRevealed = false
	g.LeadSuit = nil
	g.Trick = nil
	g.Tricks = nil
	g.TricksPlayed = 0
	g.TrickPending = false
	g.trickWinner = -1
	g.TeamPoints = map[Team]int{TeamA: 0, TeamB: 0}
	g.Marriages = map[Team]bool{}
}

// Abort drops the round in progress and returns to WAITING.
func (g *Game) Abort(reason string) []Event {
	if g.Phase == PhaseWaiting {
		return nil
	}
	g.resetRound()
	g.RoundID = ""
	g.Phase = PhaseWaiting
	g.Step++
	return []Event{status(reason)}
}

// Awaiting returns the player expected to act, if any.
func (g *Game) Awaiting() (int64, bool) {
	switch g.Phase {
	case PhaseBidding, PhasePlaying:
		if g.TrickPending {
			return 0, false
		}
		return g.Players[g.Turn].ID, true
	case PhaseTrumpSelect:
		return g.Players[g.BidWinner].ID, true
	}
	return 0, false
}

func (g *Game) Seat(id int64) (int, bool) {
	for _, p := range g.Players {
		if p.ID == id {
			return p.Seat, true
		}
	}
	return -1, false
}

func (g *Game) Player(id int64) *Player {
	if seat, ok := g.Seat(id); ok {
		return g.Players[seat]
	}
	return nil
}

func (g *Game) Hand(id int64) card.Cards {
	if p := g.Player(id); p != nil {
		return append(card.Cards{}, p.Hand...)
	}
	return nil
}

func (g *Game) score() UpdateScore {
	return UpdateScore{
		TeamA:  g.TeamPoints[TeamA],
		TeamB:  g.TeamPoints[TeamB],
		Target: g.CurrentBid,
		Bidder: g.BidderTeam,
	}
}

func (g *Game) askBid() Event {
	return broadcast(consts.EventAskBid, AskBid{
		PlayerID:    g.Players[g.Turn].ID,
		Seat:        g.Turn,
		CurrentHigh: g.CurrentBid,
	})
}

func (g *Game) next(seat int) int {
	return (seat + 1) % len(g.Players)
}

// Audit checks that every card of the deck sits in exactly one place and
// that hand sizes agree with the cards already played.
func (g *Game) Audit() error {
	if g.Phase == PhaseWaiting {
		return nil
	}
	if g.Turn < 0 || g.Turn >= len(g.Players) {
		return fmt.Errorf("turn %d is not a seat", g.Turn)
	}
	if g.TricksPlayed < 0 || g.TricksPlayed > g.Rules.Tricks {
		return fmt.Errorf("tricks played %d out of range", g.TricksPlayed)
	}
	seen := map[card.Card]string{}
	place := func(c card.Card, where string) error {
		if !c.Valid() {
			return fmt.Errorf("invalid card %v in %s", c, where)
		}
		if prev, ok := seen[c]; ok {
			return fmt.Errorf("%s found in %s and %s", c, prev, where)
		}
		seen[c] = where
		return nil
	}
	played := make([]int, len(g.Players))
	for i, trick := range g.Tricks {
		for _, p := range trick {
			if err := place(p.Card, fmt.Sprintf("trick %d", i+1)); err != nil {
				return err
			}
			played[p.Seat]++
		}
	}
	for _, p := range g.Trick {
		if err := place(p.Card, "current trick"); err != nil {
			return err
		}
		played[p.Seat]++
	}
	for seat, p := range g.Players {
		for _, c := range p.Hand {
			if err := place(c, p.String()); err != nil {
				return err
			}
		}
		for _, c := range g.Stock[seat] {
			if err := place(c, "stock"); err != nil {
				return err
			}
		}
		want := g.Rules.HandSize() - played[seat] - len(g.Stock[seat])
		if len(p.Hand) != want {
			return fmt.Errorf("%s holds %d cards, want %d", p, len(p.Hand), want)
		}
	}
	if len(seen) != g.Rules.DeckSize() {
		return fmt.Errorf("%d cards accounted for, want %d", len(seen), g.Rules.DeckSize())
	}
	completed := len(g.Tricks)
	if g.TrickPending {
		completed++
	}
	if completed != g.TricksPlayed {
		return fmt.Errorf("tricks played %d, resolved %d", g.TricksPlayed, completed)
	}
	return nil
}
