package service

import (
	"strings"

	"github.com/ratel-online/twentynine/consts"
	"github.com/ratel-online/twentynine/model"
	"github.com/ratel-online/twentynine/table"
)

type servlet func(playerID int64, data interface{}) (table.Action, error)

var servlets = map[string]servlet{
	consts.EventSubmitBid:          submitBid,
	consts.EventChooseTrump:        chooseTrump,
	consts.EventPlayCard:           playCard,
	consts.EventRequestTrumpReveal: requestTrumpReveal,
	consts.EventClaimPair:          claimPair,
}

// Parse turns an inbound message into a table action.
func Parse(playerID int64, msg model.Message) (table.Action, error) {
	handler, ok := servlets[msg.Event]
	if !ok {
		return table.Action{}, consts.ErrorsEventUnknown
	}
	return handler(playerID, msg.Data)
}

// commands maps the first word typed by a terminal client to an event.
var commands = map[string]string{
	"bid":      consts.EventSubmitBid,
	"pass":     consts.EventSubmitBid,
	"trump":    consts.EventChooseTrump,
	"play":     consts.EventPlayCard,
	"reveal":   consts.EventRequestTrumpReveal,
	"pair":     consts.EventClaimPair,
	"marriage": consts.EventClaimPair,
}

// ParseCommand reads lines such as "bid 20", "pass", "trump hearts",
// "play J hearts", "reveal" or "pair".
func ParseCommand(playerID int64, text string) (table.Action, error) {
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) == 0 {
		return table.Action{}, consts.ErrorsInputInvalid
	}
	event, ok := commands[fields[0]]
	if !ok {
		return table.Action{}, consts.ErrorsInputInvalid
	}
	rest := strings.Join(fields[1:], " ")
	if fields[0] == "pass" {
		rest = "pass"
	}
	var data interface{}
	if rest != "" {
		data = rest
	}
	return servlets[event](playerID, data)
}
