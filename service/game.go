package service

import (
	"math"
	"strconv"
	"strings"

	"github.com/ratel-online/twentynine/card"
	"github.com/ratel-online/twentynine/consts"
	"github.com/ratel-online/twentynine/game"
	"github.com/ratel-online/twentynine/table"
	"github.com/spf13/cast"
)

// submitBid accepts an amount, a numeric string, "pass" or {"amount": n}.
func submitBid(playerID int64, data interface{}) (table.Action, error) {
	if m, err := cast.ToStringMapE(data); err == nil {
		data = m["amount"]
	}
	if s, ok := data.(string); ok && strings.EqualFold(strings.TrimSpace(s), "pass") {
		return table.Bid(playerID, game.Pass{}), nil
	}
	amount, err := bidAmount(data)
	if err != nil {
		return table.Action{}, consts.ErrorsBidInvalid
	}
	return table.Bid(playerID, game.Raise{Amount: amount}), nil
}

// bidAmount reads whole decimal numbers only. JSON numbers arrive as float64.
func bidAmount(data interface{}) (int, error) {
	switch v := data.(type) {
	case nil, bool:
		return 0, consts.ErrorsBidInvalid
	case string:
		return strconv.Atoi(strings.TrimSpace(v))
	case float32:
		data = float64(v)
	}
	if f, ok := data.(float64); ok {
		if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
			return 0, consts.ErrorsBidInvalid
		}
		return int(f), nil
	}
	return cast.ToIntE(data)
}

func chooseTrump(playerID int64, data interface{}) (table.Action, error) {
	if m, err := cast.ToStringMapStringE(data); err == nil {
		data = m["suit"]
	}
	text, err := cast.ToStringE(data)
	if err != nil {
		return table.Action{}, consts.ErrorsSuitInvalid
	}
	suit, err := card.ParseSuit(text)
	if err != nil {
		return table.Action{}, err
	}
	return table.ChooseTrump(playerID, suit), nil
}

// playCard accepts {"suit": "hearts", "rank": "J"} or a string like "J hearts".
func playCard(playerID int64, data interface{}) (table.Action, error) {
	if m, err := cast.ToStringMapStringE(data); err == nil {
		rank, err := card.ParseRank(m["rank"])
		if err != nil {
			return table.Action{}, consts.ErrorsCardInvalid
		}
		suit, err := card.ParseSuit(m["suit"])
		if err != nil {
			return table.Action{}, consts.ErrorsCardInvalid
		}
		return table.PlayCard(playerID, card.New(rank, suit)), nil
	}
	text, err := cast.ToStringE(data)
	if err != nil || text == "" {
		return table.Action{}, consts.ErrorsCardInvalid
	}
	c, err := card.Parse(text)
	if err != nil {
		return table.Action{}, consts.ErrorsCardInvalid
	}
	return table.PlayCard(playerID, c), nil
}

func requestTrumpReveal(playerID int64, _ interface{}) (table.Action, error) {
	return table.RevealTrump(playerID), nil
}

func claimPair(playerID int64, _ interface{}) (table.Action, error) {
	return table.ClaimPair(playerID), nil
}
