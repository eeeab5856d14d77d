package database

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/twentynine/game"
	"github.com/ratel-online/twentynine/model"
	"github.com/ratel-online/twentynine/render"
)

// Dispatcher writes table events to the connected players.
type Dispatcher struct{}

func (Dispatcher) Dispatch(ev game.Event) {
	msg := model.Message{
		Event: ev.Name,
		Data:  ev.Data,
		Msg:   render.Event(ev),
	}
	if ev.Broadcast() {
		for _, player := range GetPlayers() {
			write(player, msg)
		}
		return
	}
	for _, id := range ev.To {
		if player := GetPlayer(id); player != nil {
			write(player, msg)
		}
	}
}

func write(player *Player, msg model.Message) {
	if err := player.WriteObject(msg); err != nil {
		log.Infof("write %s to %s failed: %v\n", msg.Event, player, err)
	}
}
