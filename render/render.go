package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/ratel-online/twentynine/card"
	"github.com/ratel-online/twentynine/consts"
	"github.com/ratel-online/twentynine/game"
)

var (
	red   = color.New(color.FgHiRed).SprintfFunc()
	black = color.New(color.FgHiWhite).SprintfFunc()
)

func Card(c card.Card) string {
	if c.Suit.Red() {
		return red("%s", c.String())
	}
	return black("%s", c.String())
}

func Cards(cs card.Cards) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = Card(c)
	}
	return strings.Join(parts, " ")
}

func Suit(s card.Suit) string {
	text := s.Symbol() + " " + s.String()
	if s.Red() {
		return red("%s", text)
	}
	return black("%s", text)
}

// Event renders one line for terminal clients.
func Event(ev game.Event) string {
	switch data := ev.Data.(type) {
	case string:
		return data
	case int:
		if ev.Name == consts.EventUpdatePlayerCount {
			return fmt.Sprintf("%d players at the table", data)
		}
	case card.Cards:
		if ev.Name == consts.EventDealSecondHand {
			return "Second hand: " + Cards(data)
		}
		return "Your cards: " + Cards(data)
	case game.AskBid:
		return fmt.Sprintf("P%d to bid, current high %d", data.Seat+1, data.CurrentHigh)
	case game.TrumpSet:
		return fmt.Sprintf("%s P%d holds the trump.", data.Msg, data.Seat+1)
	case game.TrumpRevealed:
		return fmt.Sprintf("P%d revealed trump: %s", data.Seat+1, Suit(data.Suit))
	case game.CardPlayed:
		return fmt.Sprintf("P%d played %s", data.Seat+1, Card(data.Card))
	case game.TrickComplete:
		return fmt.Sprintf("P%d won the trick (+%d)", data.Seat+1, data.Points)
	case game.UpdateScore:
		return fmt.Sprintf("Score A %d : B %d, team %s needs %d", data.TeamA, data.TeamB, data.Bidder, data.Target)
	case game.GameOver:
		return fmt.Sprintf("%s. Game points A %d : B %d", data.Msg, data.GamePoints[game.TeamA], data.GamePoints[game.TeamB])
	}
	return ""
}
