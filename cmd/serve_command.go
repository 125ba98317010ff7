package cmd

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"os"
	"strconv"

	oidc "github.com/coreos/go-oidc"

	"github.com/junaway/serverless-stack/cmd/flags"
	"github.com/junaway/serverless-stack/pkg/api"
	"github.com/junaway/serverless-stack/pkg/api/repos"
	"github.com/junaway/serverless-stack/pkg/api/repos/db"
	"github.com/junaway/serverless-stack/pkg/api/repos/inmemory"
	"github.com/junaway/serverless-stack/pkg/ioutilx"
	"github.com/junaway/serverless-stack/pkg/logx"
	"github.com/junaway/serverless-stack/pkg/logx/cef"
	"github.com/junaway/serverless-stack/pkg/metrics/statsdx"
	"github.com/junaway/serverless-stack/pkg/oidcx"
)

type ServeCommand struct {
	Logger flags.LagerFlag

	Hostname        string `long:"listen-hostname" description:"Hostname on which to listen for API traffic" default:"0.0.0.0"`
	Port            int    `long:"listen-port" description:"Port on which to listen for API traffic" default:"6283"`
	TLSCertificate  string `long:"tls-certificate" description:"File path of TLS certificate"`
	TLSKey          string `long:"tls-key" description:"File path of TLS private key"`
	AuditFilePath   string `long:"audit-file-path" description:"File path of the security (CEF) log"`
	OIDCProviderURL string `long:"oidc-provider-url" description:"URL of the OIDC provider used to authenticate API callers"`
	StatsDHostname  string `long:"statsd-hostname" description:"Hostname used to connect to StatsD server"`
	StatsDPort      int    `long:"statsd-port" description:"Port used to connect to StatsD server"`

	DB flags.DBFlag `group:"DB" namespace:"db"`
}

func (cmd ServeCommand) Execute([]string) error {
	logger := cmd.Logger.Logger("sst").WithName("serve")
	ctx := context.Background()

	hostname := cmd.Hostname
	port := cmd.Port
	listeningLogData := []logx.Data{
		{Key: "protocol", Value: "tcp"},
		{Key: "hostname", Value: hostname},
		{Key: "port", Value: port},
	}

	listener, err := net.Listen("tcp", net.JoinHostPort(hostname, strconv.Itoa(port)))
	if err != nil {
		logger.Error(failedToListen, err, listeningLogData...)
		return err
	}

	serverOpts := []api.ServerOption{
		api.WithLogger(logger.WithName("api-server")),
	}

	if cmd.AuditFilePath != "" {
		auditFile, err := ioutilx.OpenLogFile(cmd.AuditFilePath)
		if err != nil {
			logger.Error(failedToOpenAuditFile, err)
			return err
		}
		defer auditFile.Close()

		osHostname, _ := os.Hostname()
		securityLogger := cef.NewLogger(
			auditFile,
			"junaway",
			"serverless-stack",
			Version,
			cef.Hostname(osHostname),
			port,
			logger.WithName("cef"),
		)
		serverOpts = append(serverOpts, api.WithSecurityLogger(securityLogger))
	}

	if cmd.TLSCertificate != "" || cmd.TLSKey != "" {
		certificate, err := tls.LoadX509KeyPair(cmd.TLSCertificate, cmd.TLSKey)
		if err != nil {
			logger.Error(failedToParseTLSCredentials, err)
			return err
		}

		serverOpts = append(serverOpts, api.WithTLSConfig(&tls.Config{
			Certificates: []tls.Certificate{certificate},
			MinVersion:   tls.VersionTLS12,
		}))
	}

	if cmd.StatsDHostname != "" {
		statsDFlag := flags.StatsDFlag{Hostname: cmd.StatsDHostname, Port: cmd.StatsDPort}
		statsDClient, err := statsDFlag.Connect()
		if err != nil {
			logger.Error(failedToConnectToStatsD, err)
			return err
		}
		defer statsDClient.Close()

		serverOpts = append(serverOpts, api.WithStatter(
			statsdx.NewStatter(logger.WithName("metrics"), statsDClient),
		))
	}

	if cmd.OIDCProviderURL != "" {
		issuer, err := oidcx.GetOIDCIssuer(http.DefaultClient, cmd.OIDCProviderURL)
		if err != nil {
			logger.Error(failedToDiscoverOIDCIssuer, err)
			return err
		}

		provider, err := oidc.NewProvider(ctx, issuer)
		if err != nil {
			logger.Error(failedToCreateOIDCProvider, err)
			return err
		}

		serverOpts = append(serverOpts, api.WithOIDCProvider(provider))
	}

	var (
		roleRepo   repos.RoleRepo
		accessRepo repos.AccessRepo
	)

	if cmd.DB.IsInMemory() {
		store := inmemory.NewStore()
		roleRepo, accessRepo = store, store
	} else {
		conn, err := cmd.DB.Connect(ctx, logger)
		if err != nil {
			logger.Error(failedToOpenSQLConnection, err)
			return err
		}
		defer conn.Close()

		store := db.NewStore(conn)
		roleRepo, accessRepo = store, store
	}

	server := api.NewServer(roleRepo, accessRepo, serverOpts...)

	logger.Info(starting, listeningLogData...)
	return server.Serve(listener)
}
