package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the process command line into a [StructuredConfig].
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-hash-key request integrity hash key
//	-r remote authority address (client)
//	-remote-timeout remote request timeout (client)
//	-token bearer token (client)
//	-probe-interval connectivity probe interval (client)
//	-sync-interval periodic sync interval (client)
//	-retry-base-delay first retry backoff (client)
//	-retry-max-delay backoff cap (client)
//	-max-retries failed attempts before giving up (client)
//	-batch-size concurrent items per drain pass (client)
//	-cache-timeout in-memory cache freshness (client)
//	-log-file rotating log file path (client)
//	-log-level minimum level written to the log
//	-issue-token print a bearer token for the subject and exit (server)
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var hashKey string
	var remoteAddress string
	var remoteTimeout time.Duration
	var token string
	var probeInterval time.Duration
	var syncInterval time.Duration
	var retryBaseDelay time.Duration
	var retryMaxDelay time.Duration
	var maxRetries int
	var batchSize int
	var cacheTimeout time.Duration
	var logFile, logLevel string
	var issueTokenFor string

	fs := flag.NewFlagSet("go-sync-keeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&hashKey, "hash-key", "", "Request integrity hash key")
	fs.StringVar(&remoteAddress, "r", "", "Remote authority address")
	fs.DurationVar(&remoteTimeout, "remote-timeout", 0, "Remote request timeout")
	fs.StringVar(&token, "token", "", "Bearer token for the remote authority")
	fs.DurationVar(&probeInterval, "probe-interval", 0, "Connectivity probe interval")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Periodic sync interval")
	fs.DurationVar(&retryBaseDelay, "retry-base-delay", 0, "Backoff after the first failure")
	fs.DurationVar(&retryMaxDelay, "retry-max-delay", 0, "Backoff cap")
	fs.IntVar(&maxRetries, "max-retries", 0, "Failed attempts before giving up")
	fs.IntVar(&batchSize, "batch-size", 0, "Items dispatched concurrently per drain pass")
	fs.DurationVar(&cacheTimeout, "cache-timeout", 0, "In-memory cache freshness")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	fs.StringVar(&issueTokenFor, "issue-token", "", "Print a bearer token for this subject and exit")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			HashKey:       hashKey,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    remoteAddress,
			RequestTimeout: remoteTimeout,
			Token:          token,
			ProbeInterval:  probeInterval,
		},
		Workers: Workers{
			SyncInterval:     syncInterval,
			RetryBaseDelay:   retryBaseDelay,
			RetryMaxDelay:    retryMaxDelay,
			MaxRetryAttempts: maxRetries,
			BatchSize:        batchSize,
		},
		Cache:         Cache{Timeout: cacheTimeout},
		Log:           Log{Level: logLevel, FilePath: logFile},
		JSONFilePath:  jsonConfigPath,
		IssueTokenFor: issueTokenFor,
		Args:          fs.Args(),
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be within 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
