package table

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/twentynine/consts"
	"github.com/ratel-online/twentynine/game"
	"github.com/ratel-online/twentynine/rule"
)

// Dispatcher delivers outbound events to connected players.
type Dispatcher interface {
	Dispatch(ev game.Event)
}

type Options struct {
	Rules          rule.Rules
	TurnTimeout    time.Duration
	TrickDelay     time.Duration
	NextRoundDelay time.Duration
	// Seed drives the shuffle; zero seeds from the clock.
	Seed int64
}

func DefaultOptions() Options {
	return Options{
		Rules:          rule.Classic,
		TurnTimeout:    consts.TurnTimeout,
		TrickDelay:     consts.TrickDelay,
		NextRoundDelay: consts.NextRoundDelay,
	}
}

type member struct {
	id   int64
	name string
}

// Table owns the game of one table. Every mutation, timers included, goes
// through Submit and is applied by Run on a single goroutine.
type Table struct {
	opts       Options
	dispatcher Dispatcher
	rng        *rand.Rand

	game    *game.Game
	members []member

	actions chan Action
	done    chan struct{}

	timer *time.Timer
	gen   int
	step  int
}

func New(opts Options, dispatcher Dispatcher) *Table {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Table{
		opts:       opts,
		dispatcher: dispatcher,
		rng:        rand.New(rand.NewSource(seed)),
		actions:    make(chan Action, 64),
		done:       make(chan struct{}),
		step:       -1,
	}
}

// Submit queues an action. It fails once the table has stopped.
func (t *Table) Submit(a Action) error {
	select {
	case <-t.done:
		return consts.ErrorsTableClosed
	default:
	}
	select {
	case t.actions <- a:
		return nil
	case <-t.done:
		return consts.ErrorsTableClosed
	}
}

// Inspect runs fn on the run loop and waits for it. fn must not keep g.
func (t *Table) Inspect(fn func(g *game.Game, seated []int64)) error {
	reply := make(chan struct{})
	if err := t.Submit(Action{Kind: kindInspect, inspect: fn, reply: reply}); err != nil {
		return err
	}
	select {
	case <-reply:
		return nil
	case <-t.done:
		return consts.ErrorsTableClosed
	}
}

// Run applies actions until ctx is done.
func (t *Table) Run(ctx context.Context) error {
	defer close(t.done)
	defer t.cancel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case a := <-t.actions:
			t.apply(a)
			t.schedule()
		}
	}
}

func (t *Table) apply(a Action) {
	switch a.Kind {
	case KindJoin:
		t.join(a.PlayerID, a.Name)
	case KindLeave:
		t.leave(a.PlayerID)
	case kindFire:
		t.fire(a.gen)
	case kindInspect:
		a.inspect(t.game, t.seated())
		close(a.reply)
	default:
		t.play(a)
	}
}

func (t *Table) play(a Action) {
	if t.game == nil {
		t.notice(a.PlayerID, consts.ErrorsWrongPhase)
		return
	}
	var events []game.Event
	var err error
	switch a.Kind {
	case KindBid:
		events, err = t.game.SubmitBid(a.PlayerID, a.Bid)
	case KindChooseTrump:
		events, err = t.game.ChooseTrump(a.PlayerID, a.Suit)
	case KindPlayCard:
		events, err = t.game.PlayCard(a.PlayerID, a.Card)
	case KindRevealTrump:
		events, err = t.game.RequestTrumpReveal(a.PlayerID)
	case KindClaimPair:
		events, err = t.game.ClaimPair(a.PlayerID)
	default:
		err = consts.ErrorsInputInvalid
	}
	if err != nil {
		log.Infof("player %d %s rejected: %s\n", a.PlayerID, a.Kind, err)
		t.notice(a.PlayerID, err)
		return
	}
	t.emit(events)
	t.audit()
}

func (t *Table) join(id int64, name string) {
	if t.index(id) >= 0 {
		return
	}
	t.members = append(t.members, member{id: id, name: name})
	log.Infof("player %s[%d] joined the table, %d present\n", name, id, len(t.members))
	t.emitCount()
	t.maybeStart()
}

func (t *Table) leave(id int64) {
	idx := t.index(id)
	if idx < 0 {
		return
	}
	m := t.members[idx]
	t.members = append(t.members[:idx], t.members[idx+1:]...)
	log.Infof("player %s[%d] left the table, %d present\n", m.name, id, len(t.members))
	t.emitCount()
	if idx >= t.opts.Rules.Players || t.game == nil {
		return
	}
	t.emit(t.game.Abort(fmt.Sprintf("%s left the table. Round aborted.", m.name)))
	t.game = nil
	t.step = -1
	t.maybeStart()
}

func (t *Table) maybeStart() {
	if len(t.members) < t.opts.Rules.Players {
		return
	}
	if t.game == nil {
		t.game = game.New(t.opts.Rules, t.rng)
	}
	if t.game.Phase != game.PhaseWaiting {
		return
	}
	t.startRound()
}

func (t *Table) startRound() {
	events, err := t.game.StartRound(t.seated())
	if err != nil {
		log.Error(err)
		return
	}
	log.Infof("round %s started, seats %v\n", t.game.RoundID, t.seated())
	t.emit(events)
	t.audit()
}

func (t *Table) fire(gen int) {
	if gen != t.gen || t.game == nil {
		return
	}
	switch {
	case t.game.Phase == game.PhaseRoundOver:
		t.startRound()
		return
	case t.game.TrickPending:
		events, err := t.game.CompleteTrick()
		if err != nil {
			log.Error(err)
			return
		}
		t.emit(events)
	default:
		id, ok := t.game.Awaiting()
		if !ok {
			return
		}
		log.Infof("player %d timed out in %s\n", id, t.game.Phase)
		events, err := t.game.Timeout()
		if err != nil {
			log.Error(err)
			return
		}
		t.emit(events)
	}
	t.audit()
}

// schedule keeps exactly one pending timer matching the game's current step.
func (t *Table) schedule() {
	if t.game == nil || t.game.Phase == game.PhaseWaiting {
		t.cancel()
		t.step = -1
		return
	}
	if t.game.Step == t.step {
		return
	}
	t.step = t.game.Step
	switch {
	case t.game.Phase == game.PhaseRoundOver:
		t.arm(t.opts.NextRoundDelay)
	case t.game.TrickPending:
		t.arm(t.opts.TrickDelay)
	default:
		if _, ok := t.game.Awaiting(); ok {
			t.arm(t.opts.TurnTimeout)
		} else {
			t.cancel()
		}
	}
}

func (t *Table) arm(d time.Duration) {
	t.cancel()
	gen := t.gen
	t.timer = time.AfterFunc(d, func() {
		_ = t.Submit(Action{Kind: kindFire, gen: gen})
	})
}

// cancel stops the pending timer. Bumping gen also voids a fire that is
// already queued.
func (t *Table) cancel() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.gen++
}

func (t *Table) audit() {
	if t.game == nil {
		return
	}
	if err := t.game.Audit(); err != nil {
		log.Error(fmt.Errorf("round %s audit: %w", t.game.RoundID, err))
	}
}

func (t *Table) emit(events []game.Event) {
	for _, ev := range events {
		t.dispatcher.Dispatch(ev)
	}
}

func (t *Table) emitCount() {
	t.dispatcher.Dispatch(game.Event{Name: consts.EventUpdatePlayerCount, Data: len(t.members)})
}

func (t *Table) notice(id int64, err error) {
	t.dispatcher.Dispatch(game.Notice(id, err))
}

func (t *Table) index(id int64) int {
	for i, m := range t.members {
		if m.id == id {
			return i
		}
	}
	return -1
}

func (t *Table) seated() []int64 {
	n := t.opts.Rules.Players
	if len(t.members) < n {
		n = len(t.members)
	}
	ids := make([]int64, n)
	for i := 0; i < n; i++ {
		ids[i] = t.members[i].id
	}
	return ids
}
