package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the command-line arguments (without the program name).
//
// Flags:
//
//	-a                     server address in format [host]:[port]
//	-grpc-address          grpc server address in format [host]:[port]
//	-d                     database DSN
//	-db-driver             postgres, sqlite or memory
//	-u                     uploads directory
//	-posts-file            posts cache file
//	-c/-config             JSON or YAML config file path
//	-access-token-key      access token signing key
//	-refresh-token-key     refresh token signing key
//	-reset-token-key       reset token signing key
//	-token-issuer          token issuer name
//	-request-timeout       request timeout (e.g. "30s")
//	-public-url            base URL used in mailed links
//	-placeholder-url       placeholder API base URL
//	-log-level             log level
//	-verbose-errors        attach raw error text to error responses
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var cfg StructuredConfig

	fs := flag.NewFlagSet("resourcekit", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.DB.Driver, "db-driver", "", "Database driver: postgres, sqlite or memory")
	fs.StringVar(&cfg.Storage.Files.UploadsDir, "u", "", "Uploads directory")
	fs.StringVar(&cfg.Storage.Files.PostsFile, "posts-file", "", "Posts cache file")
	fs.StringVar(&cfg.ConfigFilePath, "c", "", "Config file path")
	fs.StringVar(&cfg.ConfigFilePath, "config", "", "Config file path (alias)")
	fs.StringVar(&cfg.App.AccessTokenKey, "access-token-key", "", "Access token signing key")
	fs.StringVar(&cfg.App.RefreshTokenKey, "refresh-token-key", "", "Refresh token signing key")
	fs.StringVar(&cfg.App.ResetTokenKey, "reset-token-key", "", "Reset token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.App.PublicURL, "public-url", "", "Public base URL")
	fs.StringVar(&cfg.Adapter.PlaceholderURL, "placeholder-url", "", "Placeholder API base URL")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.BoolVar(&cfg.App.VerboseErrors, "verbose-errors", false, "Attach error details to responses")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Server.GRPCAddress = grpcServerAddress.String()

	return &cfg, nil
}

// String returns a canonical host:port string for a NetAddress, or "" when
// neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. Hosts other than "localhost" must be
// IP addresses.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(strings.Trim(host, "[]")) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

