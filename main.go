package main

import (
	"context"
	"fmt"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/twentynine/config"
	"github.com/ratel-online/twentynine/database"
	"github.com/ratel-online/twentynine/network"
	"github.com/ratel-online/twentynine/table"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	cfg, err := config.Load("")
	if err != nil {
		log.Error(err)
		return
	}
	tb := table.New(cfg.TableOptions(), database.Dispatcher{})
	async.Async(func() {
		log.Error(tb.Run(context.Background()))
	})
	async.Async(func() {
		log.Error(network.NewWebsocketServer(cfg.WsAddr, tb).Serve())
	})
	server := network.NewTcpServer(cfg.TcpAddr, tb)
	log.Error(server.Serve())
}
