package database

import (
	"fmt"

	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/twentynine/consts"
)

// Conn is what the registry needs from a client connection.
type Conn interface {
	Write(packet protocol.Packet) error
	Close() error
}

type Player struct {
	ID    int64  `json:"id"`
	IP    string `json:"ip"`
	Name  string `json:"name"`
	Score int64  `json:"score"`

	conn   Conn
	online bool
}

func (p *Player) Write(bytes []byte) error {
	return p.conn.Write(protocol.Packet{
		Body: bytes,
	})
}

func (p *Player) WriteString(data string) error {
	return p.Write([]byte(data))
}

func (p *Player) WriteObject(data interface{}) error {
	return p.Write(json.Marshal(data))
}

func (p *Player) WriteError(err error) error {
	if err == consts.ErrorsExist {
		return err
	}
	return p.WriteString(err.Error() + "\n")
}

func (p *Player) Online() bool {
	registry.Lock()
	defer registry.Unlock()
	return p.online
}

// Offline drops the player from the registry and closes the connection.
func (p *Player) Offline() {
	registry.Lock()
	p.online = false
	if v, ok := players.Get(p.ID); ok && v.(*Player) == p {
		players.Del(p.ID)
	}
	registry.Unlock()
	_ = p.conn.Close()
}

func (p Player) String() string {
	return fmt.Sprintf("%s[%d]", p.Name, p.ID)
}
