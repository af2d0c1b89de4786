package config

import "time"

// Version information, set at build time

var Version = "development"
var CommitHash = "development"
var BuildTimestamp = "0000-00-00T00:00:00Z"

// Header carrying the bearer session token on every protected request.
const SessionTokenHeader = "X-Session-Token"

// Header the bot uses to authenticate link-code issuance.
const BotKeyHeader = "X-Bot-Key"

// Credential lifetimes. Codes are single-use and short-lived, sessions
// are long-lived and fixed (no sliding expiry).
const (
	CodeExpiry    = 10 * time.Minute
	SessionExpiry = 7 * 24 * time.Hour
)

// Main app config

type Config struct {
	Port           int    `mapstructure:"port" validate:"required"`
	Address        string `mapstructure:"address" validate:"required,ip4_addr"`
	DatabasePath   string `mapstructure:"database-path" validate:"required"`
	ResourcesDir   string `mapstructure:"resources-dir"`
	BotKey         string `mapstructure:"bot-key" validate:"required,min=16"`
	CatalogFile    string `mapstructure:"catalog-file"`
	LogLevel       string `mapstructure:"log-level" validate:"oneof=trace debug info warn error fatal panic"`
	TrustedProxies string `mapstructure:"trusted-proxies"`
}

// Identity is the principal resolved from a session token. It is what
// protected handlers key every read and mutation on.
type Identity struct {
	UserID   int64
	Username string
}
