package network

import (
	"strings"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/model"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/twentynine/consts"
	"github.com/ratel-online/twentynine/database"
	modelx "github.com/ratel-online/twentynine/model"
	"github.com/ratel-online/twentynine/service"
	"github.com/ratel-online/twentynine/table"
	"time"
)

// Network is interface of all kinds of network.
type Network interface {
	Serve() error
}

func handle(rwc protocol.ReadWriteCloser, tb *table.Table, ip string) error {
	c := network.Wrapper(rwc)
	log.Info("new player connected! ")
	authInfo, err := loginAuth(c)
	if err != nil || authInfo.ID == 0 {
		if err == nil {
			err = consts.ErrorsAuthFail
		}
		_ = c.Write(protocol.ErrorPacket(err))
		_ = c.Close()
		return err
	}
	player, err := database.Connect(c, authInfo, ip)
	if err != nil {
		log.Infof("player %d already connected, ip %s\n", authInfo.ID, ip)
		_ = c.Write(protocol.ErrorPacket(err))
		_ = c.Close()
		return err
	}
	log.Infof("player auth accessed, ip %s, %d:%s\n", player.IP, authInfo.ID, authInfo.Name)
	defer player.Offline()
	if err = tb.Submit(table.Join(player.ID, player.Name)); err != nil {
		return err
	}
	defer func() {
		_ = tb.Submit(table.Leave(player.ID))
	}()
	return listen(c, player, tb)
}

func listen(c *network.Conn, player *database.Player, tb *table.Table) error {
	for {
		packet, err := c.Read()
		if err != nil {
			return err
		}
		if strings.ToLower(strings.TrimSpace(packet.String())) == "exit" {
			return consts.ErrorsExist
		}
		action, err := decode(player.ID, packet)
		if err != nil {
			_ = player.WriteObject(modelx.Message{Event: consts.EventErrorMsg, Data: err.Error(), Msg: err.Error()})
			continue
		}
		if err = tb.Submit(action); err != nil {
			return err
		}
	}
}

// decode accepts a JSON message and falls back to a typed command.
func decode(playerID int64, packet *protocol.Packet) (table.Action, error) {
	msg := modelx.Message{}
	if err := packet.Unmarshal(&msg); err == nil && msg.Event != "" {
		return service.Parse(playerID, msg)
	}
	return service.ParseCommand(playerID, packet.String())
}

// 登陆验签
func loginAuth(c *network.Conn) (*model.AuthInfo, error) {
	authChan := make(chan *model.AuthInfo, 1)
	async.Async(func() {
		packet, err := c.Read()
		if err != nil {
			log.Error(err)
			return
		}
		authInfo := &model.AuthInfo{}
		err = packet.Unmarshal(authInfo)
		if err != nil {
			log.Error(err)
			return
		}
		authChan <- authInfo
	})
	select {
	case authInfo := <-authChan:
		return authInfo, nil
	case <-time.After(consts.AuthTimeout):
		return nil, consts.ErrorsAuthFail
	}
}
