package database

import (
	"sort"
	"sync"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/core/model"
	"github.com/ratel-online/twentynine/consts"
)

var (
	players = hashmap.New()
	// registry serializes the check-and-set of Connect against Offline.
	registry sync.Mutex
)

// Connect registers an authenticated connection. A second login with the id
// of a player that is still online fails with ErrorsAuthFail.
func Connect(conn Conn, info *model.AuthInfo, ip string) (*Player, error) {
	registry.Lock()
	defer registry.Unlock()
	if v, ok := players.Get(info.ID); ok && v.(*Player).online {
		return nil, consts.ErrorsAuthFail
	}
	player := &Player{
		ID:     info.ID,
		IP:     ip,
		Name:   info.Name,
		Score:  info.Score,
		conn:   conn,
		online: true,
	}
	players.Set(player.ID, player)
	return player, nil
}

func GetPlayer(playerId int64) *Player {
	if v, ok := players.Get(playerId); ok {
		return v.(*Player)
	}
	return nil
}

func GetPlayers() []*Player {
	list := make([]*Player, 0)
	players.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Player))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list
}
