package network

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/twentynine/table"
	"net"
)

type Tcp struct {
	addr  string
	table *table.Table
}

func NewTcpServer(addr string, tb *table.Table) Tcp {
	return Tcp{addr: addr, table: tb}
}

func (t Tcp) Serve() error {
	listener, err := net.Listen("tcp", t.addr)
	if err != nil {
		log.Error(err)
		return err
	}
	log.Infof("Tcp server listening on %s\n", t.addr)
	for {
		conn, err := listener.Accept()
		if err != nil {
			log.Infof("listener.Accept err %v\n", err)
			continue
		}
		async.Async(func() {
			err := handle(protocol.NewTcpReadWriteCloser(conn), t.table, conn.RemoteAddr().String())
			if err != nil {
				log.Error(err)
			}
		})
	}
}
