package flags

import (
	"net"
	"strconv"

	"github.com/cactus/go-statsd-client/statsd"
)

type StatsDFlag struct {
	Hostname string `long:"hostname" description:"Hostname used to connect to StatsD server" required:"true"`
	Port     int    `long:"port" description:"Port used to connect to StatsD server" required:"true"`
}

func (f *StatsDFlag) Connect() (statsd.Statter, error) {
	addr := net.JoinHostPort(f.Hostname, strconv.Itoa(f.Port))
	return statsd.NewBufferedClient(addr, "", 0, 0)
}
