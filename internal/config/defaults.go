package config

import (
	"strings"
	"time"
)

const (
	defaultTokenIssuer          = "resourcekit"
	defaultAccessTokenDuration  = time.Hour
	defaultRefreshTokenDuration = 7 * time.Hour
	defaultResetTokenDuration   = time.Hour
	defaultBcryptCost           = 10
	defaultLogLevel             = "debug"
	defaultPublicURL            = "http://localhost:8080"
	defaultHTTPAddress          = ":8080"
	defaultUploadsDir           = "uploads"
	defaultPostsFile            = "data.json"
	defaultPlaceholderURL       = "https://jsonplaceholder.typicode.com"
	defaultAdapterTimeout       = 15 * time.Second
	defaultMailPort             = 587
)

// applyDefaults fills every unset field that has a sensible default.
// Secrets have none.
func (cfg *StructuredConfig) applyDefaults() {
	setDefault(&cfg.App.TokenIssuer, defaultTokenIssuer)
	setDefault(&cfg.App.AccessTokenDuration, defaultAccessTokenDuration)
	setDefault(&cfg.App.RefreshTokenDuration, defaultRefreshTokenDuration)
	setDefault(&cfg.App.ResetTokenDuration, defaultResetTokenDuration)
	setDefault(&cfg.App.BcryptCost, defaultBcryptCost)
	setDefault(&cfg.App.LogLevel, defaultLogLevel)
	setDefault(&cfg.App.PublicURL, defaultPublicURL)
	cfg.App.PublicURL = strings.TrimRight(cfg.App.PublicURL, "/")

	setDefault(&cfg.Server.HTTPAddress, defaultHTTPAddress)

	setDefault(&cfg.Storage.Files.UploadsDir, defaultUploadsDir)
	setDefault(&cfg.Storage.Files.PostsFile, defaultPostsFile)
	setDefault(&cfg.Storage.DB.Driver, inferDriver(cfg.Storage.DB.DSN))

	setDefault(&cfg.Adapter.PlaceholderURL, defaultPlaceholderURL)
	setDefault(&cfg.Adapter.RequestTimeout, defaultAdapterTimeout)

	setDefault(&cfg.Mail.Port, defaultMailPort)
}

// inferDriver picks a driver for dsn: none for an empty DSN, postgres for
// postgres URLs and key/value DSNs, sqlite for everything else.
func inferDriver(dsn string) string {
	switch {
	case dsn == "":
		return DriverMemory
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"),
		strings.Contains(dsn, "host="):
		return DriverPostgres
	default:
		return DriverSQLite
	}
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}
