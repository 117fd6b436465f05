// Package config loads service configuration from a YAML file and
// environment variables, in that order of precedence.
package config

import (
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/mcuadros/go-defaults"
	"github.com/rs/zerolog/log"
)

const (
	// envPrefix is the environment variable prefix for all settings
	envPrefix = "BLINDSIGHT_"
	// defaultConfigPath is where Load looks when no path is given
	defaultConfigPath = "./config/.config.yaml"
)

// Config holds the full service configuration
type Config struct {
	// Server holds HTTP server settings
	Server Server `koanf:"server" json:"server"`
	// Scan holds scan pipeline settings
	Scan Scan `koanf:"scan" json:"scan"`
	// Analyze holds analysis provider settings
	Analyze Analyze `koanf:"analyze" json:"analyze"`
	// Fetch holds terms document fetch settings
	Fetch Fetch `koanf:"fetch" json:"fetch"`
	// History holds scan history persistence settings
	History History `koanf:"history" json:"history"`
	// Notify holds webhook notification settings
	Notify Notify `koanf:"notify" json:"notify"`
}

// Server holds HTTP server settings
type Server struct {
	// Listen is the address the HTTP server binds to
	Listen string `koanf:"listen" json:"listen" default:":8080"`
	// Debug enables debug logging
	Debug bool `koanf:"debug" json:"debug" default:"false"`
	// Pretty enables human readable logging output
	Pretty bool `koanf:"pretty" json:"pretty" default:"false"`
	// ReadTimeout is the maximum duration for reading a request
	ReadTimeout time.Duration `koanf:"readTimeout" json:"readTimeout" default:"30s"`
	// WriteTimeout is the maximum duration before timing out response writes
	WriteTimeout time.Duration `koanf:"writeTimeout" json:"writeTimeout" default:"120s"`
	// ShutdownGracePeriod is how long in-flight requests get to finish on shutdown
	ShutdownGracePeriod time.Duration `koanf:"shutdownGracePeriod" json:"shutdownGracePeriod" default:"10s"`
	// MaxBodySize caps request body reads in bytes; page snapshots carry full HTML
	MaxBodySize int64 `koanf:"maxBodySize" json:"maxBodySize" default:"8388608"`
}

// Scan holds scan pipeline settings
type Scan struct {
	// SignupThreshold is the detector score at or above which a page counts as a signup flow, 0-100
	SignupThreshold int `koanf:"signupThreshold" json:"signupThreshold" default:"50"`
	// Policy is what happens on a detected signup page: consent or auto
	Policy string `koanf:"policy" json:"policy" default:"consent"`
	// SettleDelay is how long the client should wait after page load before submitting a snapshot
	SettleDelay time.Duration `koanf:"settleDelay" json:"settleDelay" default:"1500ms"`
	// CountdownSeconds is the cautionary modal unlock countdown, clamped to 5-10
	CountdownSeconds int `koanf:"countdownSeconds" json:"countdownSeconds" default:"5"`
	// NoticeSeconds is the transient notice auto-dismiss timeout
	NoticeSeconds int `koanf:"noticeSeconds" json:"noticeSeconds" default:"8"`
}

// Analyze holds analysis provider settings
type Analyze struct {
	// GatewayURL is the managed analysis gateway base URL; tried first when set
	GatewayURL string `koanf:"gatewayUrl" json:"gatewayUrl" default:""`
	// GatewayAPIKey authenticates against the managed gateway
	GatewayAPIKey string `koanf:"gatewayApiKey" json:"gatewayApiKey" sensitive:"true" default:""`
	// OpenAIAPIKey enables the OpenAI provider
	OpenAIAPIKey string `koanf:"openaiApiKey" json:"openaiApiKey" sensitive:"true" default:""`
	// GeminiAPIKey enables the Gemini provider
	GeminiAPIKey string `koanf:"geminiApiKey" json:"geminiApiKey" sensitive:"true" default:""`
	// MaxRetries is how many times a transient provider failure is retried
	MaxRetries int `koanf:"maxRetries" json:"maxRetries" default:"2"`
	// RetryBackoff is the fixed wait between retries
	RetryBackoff time.Duration `koanf:"retryBackoff" json:"retryBackoff" default:"2s"`
}

// Fetch holds terms document fetch settings
type Fetch struct {
	// Timeout bounds a single candidate fetch
	Timeout time.Duration `koanf:"timeout" json:"timeout" default:"10s"`
	// MaxRedirects caps redirect following per fetch
	MaxRedirects int `koanf:"maxRedirects" json:"maxRedirects" default:"5"`
	// MaxResponseBodySize caps response body reads in bytes
	MaxResponseBodySize int64 `koanf:"maxResponseBodySize" json:"maxResponseBodySize" default:"4194304"`
	// UserAgent is the User-Agent header sent on candidate fetches
	UserAgent string `koanf:"userAgent" json:"userAgent" default:"Mozilla/5.0 (compatible; Blindsight/1.0)"`
}

// History holds scan history persistence settings
type History struct {
	// Enabled toggles scan history persistence
	Enabled bool `koanf:"enabled" json:"enabled" default:"true"`
	// Path is the SQLite database file location
	Path string `koanf:"path" json:"path" default:"./blindsight.db"`
	// MaxEntries caps stored scans; the oldest entries are evicted first
	MaxEntries int `koanf:"maxEntries" json:"maxEntries" default:"10"`
}

// Notify holds webhook notification settings
type Notify struct {
	// WebhookURL is the Slack incoming webhook; notifications are disabled when empty
	WebhookURL string `koanf:"webhookUrl" json:"webhookUrl" sensitive:"true" default:""`
	// MinSeverity is the severity floor below which scans are not reported, 0-3
	MinSeverity int `koanf:"minSeverity" json:"minSeverity" default:"2"`
	// RequestTimeout bounds a single webhook delivery
	RequestTimeout time.Duration `koanf:"requestTimeout" json:"requestTimeout" default:"10s"`
}

// Load builds the configuration from defaults, then the YAML file at path,
// then BLINDSIGHT_-prefixed environment variables
func Load(path *string) (*Config, error) {
	k := koanf.New(".")

	conf := &Config{}
	defaults.SetDefaults(conf)

	cfgPath := defaultConfigPath
	if path != nil && *path != "" {
		cfgPath = *path
	}

	if err := k.Load(file.Provider(cfgPath), yaml.Parser()); err != nil {
		log.Debug().Err(err).Str("path", cfgPath).Msg("config file not loaded, using defaults and environment")
	}

	if err := k.Load(env.Provider(envPrefix, ".", envToKey), nil); err != nil {
		return nil, err
	}

	if err := k.Unmarshal("", conf); err != nil {
		return nil, ErrConfigUnmarshal
	}

	return conf, nil
}

// envToKey maps BLINDSIGHT_SERVER_LISTEN to server.listen
func envToKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
}
