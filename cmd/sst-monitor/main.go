package main

import (
	"context"
	"crypto/tls"
	"net"
	"os"
	"strconv"
	"time"

	flags "github.com/jessevdk/go-flags"

	cmdflags "github.com/junaway/serverless-stack/cmd/flags"
	"github.com/junaway/serverless-stack/pkg/cryptox"
	"github.com/junaway/serverless-stack/pkg/ioutilx"
	"github.com/junaway/serverless-stack/pkg/monitor"
	"github.com/junaway/serverless-stack/pkg/monitor/recording"
	"github.com/junaway/serverless-stack/pkg/stack"
)

const (
	probeFrequency      = 5 * time.Second
	probeTimeout        = 1 * time.Second
	probeCleanupTimeout = 10 * time.Second
	probeMaxLatency     = 100 * time.Millisecond

	histogramRefreshTime = 1 * time.Minute
	histogramWindowSize  = 5
	histogramSigfigs     = 3
)

type options struct {
	Logger cmdflags.LagerFlag

	Hostname string                 `long:"hostname" description:"Hostname used to connect to the registry API" default:"localhost"`
	Port     int                    `long:"port" description:"Port used to connect to the registry API" default:"6283"`
	CACerts  []ioutilx.FileOrString `long:"ca-certificate" description:"File paths of CA certificates used to verify the registry API"`

	StatsD cmdflags.StatsDFlag `group:"StatsD" namespace:"statsd"`
}

type histogramRecorder struct {
	histogram *monitor.ThreadSafeHistogram
}

func (r histogramRecorder) Observe(duration time.Duration) error {
	return r.histogram.RecordValue(int64(duration))
}

func main() {
	parserOpts := &options{}
	parser := flags.NewParser(parserOpts, flags.Default)
	parser.NamespaceDelimiter = "-"

	_, err := parser.Parse()
	if err != nil {
		os.Exit(1)
	}

	logger := parserOpts.Logger.Logger("sst-monitor")
	logger.Info(starting)

	statsDClient, err := parserOpts.StatsD.Connect()
	if err != nil {
		logger.Error(failedToConnectToStatsD, err)
		os.Exit(1)
	}
	defer statsDClient.Close()

	var dialOpts []stack.DialOption
	if len(parserOpts.CACerts) > 0 {
		var certs [][]byte
		for _, cert := range parserOpts.CACerts {
			b, err := cert.Bytes(ioutilx.OS, ioutilx.IOReader)
			if err != nil {
				logger.Error(failedToReadCACertificate, err)
				os.Exit(1)
			}
			certs = append(certs, b)
		}

		pool, err := cryptox.NewCertPool(certs...)
		if err != nil {
			logger.Error(failedToCreateCertPool, err)
			os.Exit(1)
		}

		dialOpts = append(dialOpts, stack.WithTLSConfig(&tls.Config{
			RootCAs: pool,
		}))
	}

	addr := net.JoinHostPort(parserOpts.Hostname, strconv.Itoa(parserOpts.Port))
	client, err := stack.Dial(addr, dialOpts...)
	if err != nil {
		logger.Error(failedToDialRegistry, err)
		os.Exit(1)
	}
	defer client.Close()

	histogram := monitor.NewThreadSafeHistogram(histogramWindowSize, histogramSigfigs)
	statter := &monitor.Statter{
		Statter:   statsDClient,
		Histogram: histogram,
	}

	recordingClient := recording.NewClient(client, histogramRecorder{histogram: histogram})

	probe := monitor.NewProbe(
		recordingClient,
		monitor.WithTimeout(probeTimeout),
		monitor.WithCleanupTimeout(probeCleanupTimeout),
		monitor.WithMaxLatency(probeMaxLatency),
	)

	RunProbeWithFrequency(
		context.Background(),
		logger.WithName("probe"),
		probe,
		statter,
		probeFrequency,
		probe.Timeout(),
		probe.CleanupTimeout(),
		probe.MaxLatency(),
		histogramRefreshTime,
	)
}
