package render_test

import (
	"testing"

	"github.com/fatih/color"
	"github.com/ratel-online/twentynine/card"
	"github.com/ratel-online/twentynine/consts"
	"github.com/ratel-online/twentynine/game"
	"github.com/ratel-online/twentynine/render"
	"github.com/stretchr/testify/assert"
)

func TestEvent(t *testing.T) {
	color.NoColor = true
	tests := []struct {
		name string
		ev   game.Event
		want string
	}{
		{
			name: "status line",
			ev:   game.Event{Name: consts.EventGameStatus, Data: "Game On! Bidder leads."},
			want: "Game On! Bidder leads.",
		},
		{
			name: "player count",
			ev:   game.Event{Name: consts.EventUpdatePlayerCount, Data: 3},
			want: "3 players at the table",
		},
		{
			name: "deal",
			ev:   game.Event{Name: consts.EventDealCards, Data: card.Cards{card.New(card.Jack, card.Hearts), card.New(card.Ten, card.Spades)}},
			want: "Your cards: J♥ 10♠",
		},
		{
			name: "second hand",
			ev:   game.Event{Name: consts.EventDealSecondHand, Data: card.Cards{card.New(card.Seven, card.Clubs)}},
			want: "Second hand: 7♣",
		},
		{
			name: "ask bid",
			ev:   game.Event{Name: consts.EventAskBid, Data: game.AskBid{PlayerID: 7, Seat: 2, CurrentHigh: 18}},
			want: "P3 to bid, current high 18",
		},
		{
			name: "card played",
			ev:   game.Event{Name: consts.EventCardPlayed, Data: game.CardPlayed{Seat: 0, Card: card.New(card.Nine, card.Diamonds)}},
			want: "P1 played 9♦",
		},
		{
			name: "reveal",
			ev:   game.Event{Name: consts.EventTrumpRevealed, Data: game.TrumpRevealed{Suit: card.Clubs, Seat: 3}},
			want: "P4 revealed trump: ♣ clubs",
		},
		{
			name: "game over",
			ev: game.Event{Name: consts.EventGameOver, Data: game.GameOver{
				Msg:        "Team A WON! Scored 18",
				GamePoints: map[game.Team]int{game.TeamA: 1, game.TeamB: 0},
			}},
			want: "Team A WON! Scored 18. Game points A 1 : B 0",
		},
		{
			name: "score",
			ev:   game.Event{Name: consts.EventUpdateScore, Data: game.UpdateScore{TeamA: 6, TeamB: 4, Target: 20, Bidder: game.TeamB}},
			want: "Score A 6 : B 4, team B needs 20",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render.Event(tt.ev))
		})
	}
}
