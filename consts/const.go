package consts

import (
	"time"
)

const (
	TablePlayers = 4

	TurnTimeout    = 30 * time.Second
	TrickDelay     = 2 * time.Second
	NextRoundDelay = 5 * time.Second
	AuthTimeout    = 3 * time.Second
)

// Events exchanged with clients.
const (
	EventDealCards          = "dealCards"
	EventDealSecondHand     = "dealSecondHand"
	EventAskBid             = "askBid"
	EventSubmitBid          = "submitBid"
	EventSelectTrump        = "selectTrump"
	EventChooseTrump        = "chooseTrump"
	EventTrumpSet           = "trumpSet"
	EventRequestTrumpReveal = "requestTrumpReveal"
	EventTrumpRevealed      = "trumpRevealed"
	EventPlayCard           = "playCard"
	EventCardPlayed         = "cardPlayed"
	EventTrickComplete      = "trickComplete"
	EventUpdateScore        = "updateScore"
	EventGameOver           = "gameOver"
	EventClaimPair          = "claimPair"
	EventErrorMsg           = "errorMsg"
	EventUpdatePlayerCount  = "updatePlayerCount"
	EventGameStatus         = "gameStatus"
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsExist         = NewErr(1, true, "Exist. ")
	ErrorsTimeout       = NewErr(1, false, "Timeout. ")
	ErrorsInputInvalid  = NewErr(1, false, "Input invalid. ")
	ErrorsAuthFail      = NewErr(1, true, "Auth fail. ")
	ErrorsEventUnknown  = NewErr(1, false, "Unknown event. ")
	ErrorsBidInvalid    = NewErr(1, false, "Bid invalid. ")
	ErrorsSuitInvalid   = NewErr(1, false, "Suit invalid. ")
	ErrorsCardInvalid   = NewErr(1, false, "Card invalid. ")
	ErrorsTableClosed   = NewErr(1, true, "Table closed. ")
	ErrorsPlayerUnknown = NewErr(1, false, "Not seated at this table. ")

	ErrorsWrongPhase       = NewErr(2, false, "Not allowed now. ")
	ErrorsNotYourTurn      = NewErr(2, false, "Not your turn! ")
	ErrorsMustFollowSuit   = NewErr(2, false, "Must follow suit! ")
	ErrorsCardNotInHand    = NewErr(2, false, "Card not in hand. ")
	ErrorsTrickResolving   = NewErr(2, false, "Trick is being collected. ")
	ErrorsBidTooLow        = NewErr(2, false, "Bid must be higher than the current bid, counted as pass. ")
	ErrorsBidTooHigh       = NewErr(2, false, "Bid above the maximum, counted as pass. ")
	ErrorsNotBidWinner     = NewErr(2, false, "Only the bid winner chooses trump. ")
	ErrorsTrumpNotSet      = NewErr(2, false, "Trump not set yet. ")
	ErrorsTrumpNotRevealed = NewErr(2, false, "Reveal Trump first! ")
	ErrorsInvalidClaim     = NewErr(2, false, "Invalid Claim. ")
	ErrorsPairClaimed      = NewErr(2, false, "Marriage already claimed. ")
)
