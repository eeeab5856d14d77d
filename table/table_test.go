package table_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ratel-online/twentynine/card"
	"github.com/ratel-online/twentynine/consts"
	"github.com/ratel-online/twentynine/game"
	"github.com/ratel-online/twentynine/rule"
	"github.com/ratel-online/twentynine/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ids = []int64{11, 12, 13, 14}

type recorder struct {
	sync.Mutex
	events []game.Event
}

func (r *recorder) Dispatch(ev game.Event) {
	r.Lock()
	defer r.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) named(name string) []game.Event {
	r.Lock()
	defer r.Unlock()
	list := make([]game.Event, 0)
	for _, e := range r.events {
		if e.Name == name {
			list = append(list, e)
		}
	}
	return list
}

func (r *recorder) count(name string) int {
	return len(r.named(name))
}

func options(turn, trick, next time.Duration) table.Options {
	return table.Options{
		Rules:          rule.Classic,
		TurnTimeout:    turn,
		TrickDelay:     trick,
		NextRoundDelay: next,
		Seed:           29,
	}
}

func start(t *testing.T, opts table.Options) (*table.Table, *recorder) {
	rec := &recorder{}
	tb := table.New(opts, rec)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		_ = tb.Run(ctx)
	}()
	t.Cleanup(cancel)
	return tb, rec
}

func seat(t *testing.T, tb *table.Table, members ...int64) {
	for _, id := range members {
		require.NoError(t, tb.Submit(table.Join(id, "p")))
	}
}

func snapshot(t *testing.T, tb *table.Table, fn func(g *game.Game, seated []int64)) {
	require.NoError(t, tb.Inspect(fn))
}

func TestRoundStartsOnFourthJoin(t *testing.T) {
	tb, rec := start(t, options(time.Hour, time.Hour, time.Hour))
	seat(t, tb, ids[:3]...)
	snapshot(t, tb, func(g *game.Game, seated []int64) {
		assert.Nil(t, g)
		assert.Equal(t, ids[:3], seated)
	})
	assert.Equal(t, 0, rec.count(consts.EventDealCards))

	seat(t, tb, ids[3])
	snapshot(t, tb, func(g *game.Game, seated []int64) {
		if !assert.NotNil(t, g) {
			return
		}
		assert.Equal(t, game.PhaseBidding, g.Phase)
		assert.Equal(t, ids, seated)
	})
	counts := rec.named(consts.EventUpdatePlayerCount)
	require.Len(t, counts, 4)
	for i, e := range counts {
		assert.Equal(t, i+1, e.Data)
		assert.True(t, e.Broadcast())
	}
	deals := rec.named(consts.EventDealCards)
	require.Len(t, deals, 4)
	for i, e := range deals {
		assert.Equal(t, []int64{ids[i]}, e.To)
	}
	assert.Equal(t, 1, rec.count(consts.EventAskBid))
}

func TestRejectionGoesToActor(t *testing.T) {
	tb, rec := start(t, options(time.Hour, time.Hour, time.Hour))
	require.NoError(t, tb.Submit(table.Bid(ids[0], game.Raise{Amount: 18})))
	seat(t, tb, ids...)
	require.NoError(t, tb.Submit(table.Bid(ids[2], game.Raise{Amount: 18})))
	require.NoError(t, tb.Submit(table.ChooseTrump(ids[0], card.Hearts)))
	snapshot(t, tb, func(g *game.Game, seated []int64) {
		assert.Equal(t, 0, g.Turn)
		assert.Equal(t, 16, g.CurrentBid)
	})

	errs := rec.named(consts.EventErrorMsg)
	require.Len(t, errs, 3)
	assert.Equal(t, []int64{ids[0]}, errs[0].To)
	assert.Equal(t, consts.ErrorsWrongPhase.Error(), errs[0].Data)
	assert.Equal(t, []int64{ids[2]}, errs[1].To)
	assert.Equal(t, consts.ErrorsNotYourTurn.Error(), errs[1].Data)
	assert.Equal(t, consts.ErrorsWrongPhase.Error(), errs[2].Data)
}

func TestTimeoutsFinishTheRound(t *testing.T) {
	tb, rec := start(t, options(5*time.Millisecond, 2*time.Millisecond, time.Hour))
	seat(t, tb, ids...)
	require.Eventually(t, func() bool {
		return rec.count(consts.EventGameOver) == 1
	}, 10*time.Second, 10*time.Millisecond)

	assert.Equal(t, 32, rec.count(consts.EventCardPlayed))
	assert.Equal(t, 8, rec.count(consts.EventTrickComplete))
	assert.Equal(t, 0, rec.count(consts.EventErrorMsg))
	snapshot(t, tb, func(g *game.Game, seated []int64) {
		assert.Equal(t, game.PhaseRoundOver, g.Phase)
		assert.NoError(t, g.Audit())
	})
}

func TestNextRoundKeepsGamePoints(t *testing.T) {
	tb, rec := start(t, options(2*time.Millisecond, time.Millisecond, 5*time.Millisecond))
	seat(t, tb, ids...)
	require.Eventually(t, func() bool {
		return rec.count(consts.EventGameOver) >= 2
	}, 20*time.Second, 10*time.Millisecond)

	overs := rec.named(consts.EventGameOver)
	first, second := overs[0].Data.(game.GameOver), overs[1].Data.(game.GameOver)
	assert.NotEqual(t, first.RoundID, second.RoundID)
	delta := 1
	if !second.Won {
		delta = -1
	}
	assert.Equal(t, first.GamePoints[second.Bidder]+delta, second.GamePoints[second.Bidder])
}

func TestHumanMoveResetsTimer(t *testing.T) {
	tb, rec := start(t, options(300*time.Millisecond, time.Hour, time.Hour))
	seat(t, tb, ids...)
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, tb.Submit(table.Bid(ids[0], game.Raise{Amount: 17})))

	// The first deadline has passed; the new turn must still be waiting.
	time.Sleep(200 * time.Millisecond)
	snapshot(t, tb, func(g *game.Game, seated []int64) {
		assert.Equal(t, 1, g.Turn)
		assert.Equal(t, 17, g.CurrentBid)
	})
	assert.Len(t, rec.named(consts.EventGameStatus), 2, "only the opening and bid status lines")

	require.Eventually(t, func() bool {
		var turn int
		_ = tb.Inspect(func(g *game.Game, seated []int64) {
			turn = g.Turn
		})
		return turn == 2
	}, 2*time.Second, 10*time.Millisecond)
}

func TestSeatedLeaveAbortsRound(t *testing.T) {
	tb, rec := start(t, options(time.Hour, time.Hour, time.Hour))
	seat(t, tb, ids...)
	require.NoError(t, tb.Submit(table.Bid(ids[0], game.Raise{Amount: 20})))
	require.NoError(t, tb.Submit(table.Leave(ids[2])))
	snapshot(t, tb, func(g *game.Game, seated []int64) {
		assert.Nil(t, g)
		assert.Equal(t, []int64{ids[0], ids[1], ids[3]}, seated)
	})
	counts := rec.named(consts.EventUpdatePlayerCount)
	assert.Equal(t, 3, counts[len(counts)-1].Data)

	require.NoError(t, tb.Submit(table.Join(99, "late")))
	snapshot(t, tb, func(g *game.Game, seated []int64) {
		if !assert.NotNil(t, g) {
			return
		}
		assert.Equal(t, game.PhaseBidding, g.Phase)
		assert.Equal(t, 16, g.CurrentBid)
		assert.Equal(t, 0, g.GamePoints[game.TeamA])
		assert.Equal(t, []int64{ids[0], ids[1], ids[3], 99}, seated)
	})
	assert.Equal(t, 8, rec.count(consts.EventDealCards))
}

func TestSpectatorLeaveKeepsRound(t *testing.T) {
	tb, rec := start(t, options(time.Hour, time.Hour, time.Hour))
	seat(t, tb, append(ids, 15)...)
	require.NoError(t, tb.Submit(table.Leave(15)))
	require.NoError(t, tb.Submit(table.Leave(15)))
	snapshot(t, tb, func(g *game.Game, seated []int64) {
		if !assert.NotNil(t, g) {
			return
		}
		assert.Equal(t, game.PhaseBidding, g.Phase)
		assert.Equal(t, ids, seated)
	})
	assert.Equal(t, 4, rec.count(consts.EventDealCards))
}

func TestSubmitAfterStop(t *testing.T) {
	tb := table.New(options(time.Hour, time.Hour, time.Hour), &recorder{})
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan error)
	go func() {
		stopped <- tb.Run(ctx)
	}()
	cancel()
	assert.Equal(t, context.Canceled, <-stopped)
	assert.Equal(t, consts.ErrorsTableClosed, tb.Submit(table.Join(1, "a")))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "bid", table.KindBid.String())
	assert.Equal(t, "playCard", table.PlayCard(1, card.New(card.Jack, card.Hearts)).Kind.String())
	assert.Equal(t, "", table.Kind(0).String())
}
