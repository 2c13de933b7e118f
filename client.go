// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package botapi

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.astrophena.name/botapi/internal/request"
	"go.astrophena.name/botapi/internal/util/syncx"
)

// DefaultBaseURL is the address of the Telegram Bot API server.
const DefaultBaseURL = "https://api.telegram.org"

// DefaultErrorMessage is reported by [Client.ErrorResponse] when a failed
// request returned no body and Config.DefaultErrorMessage is empty.
const DefaultErrorMessage = "Telegram Bot API request failed"

var (
	// ErrNoToken is returned when a client is configured without a bot token.
	ErrNoToken = errors.New("botapi: bot token is required")
	// ErrNoDefaultConfig is returned by NewDefault and the manager
	// constructors when no client was created before in this process.
	ErrNoDefaultConfig = errors.New("botapi: no default configuration, create a client with a token first")
)

// Config configures a [Client].
type Config struct {
	// Token is the bot token issued by @BotFather. Required.
	Token string
	// Timeout limits the duration of every request. Zero means the timeout of
	// HTTPClient, or ten seconds when HTTPClient is nil.
	Timeout time.Duration
	// DefaultErrorMessage replaces an empty error body in ErrorResponse.
	DefaultErrorMessage string
	// BaseURL is the Bot API server address. Defaults to DefaultBaseURL.
	BaseURL string
	// HTTPClient is used to make requests. Defaults to a client with sane
	// timeouts.
	HTTPClient *http.Client
	// Logger receives a debug record for every request and a warning for every
	// failed one. Defaults to slog.Default().
	Logger *slog.Logger
}

// Client performs requests to the Telegram Bot API on behalf of one bot.
//
// A Client is safe for concurrent use. The error state reflects the most
// recently completed request.
type Client struct {
	token    string
	baseURL  string
	errMsg   string
	httpc    *http.Client
	scrubber *strings.Replacer
	slog     *slog.Logger

	state syncx.Protected[errorState]
}

// New returns a client for cfg and stores cfg as the process default used by
// [NewDefault].
func New(cfg Config) (*Client, error) {
	if cfg.Token == "" {
		return nil, ErrNoToken
	}
	c := &Client{
		token:    cfg.Token,
		baseURL:  strings.TrimSuffix(cfg.BaseURL, "/"),
		errMsg:   cfg.DefaultErrorMessage,
		httpc:    cfg.HTTPClient,
		scrubber: strings.NewReplacer(cfg.Token, "[EXPUNGED]"),
		slog:     cfg.Logger,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.errMsg == "" {
		c.errMsg = DefaultErrorMessage
	}
	if c.httpc == nil {
		c.httpc = request.DefaultClient
	}
	if cfg.Timeout > 0 {
		httpc := *c.httpc
		httpc.Timeout = cfg.Timeout
		c.httpc = &httpc
	}
	if c.slog == nil {
		c.slog = slog.Default()
	}
	storeDefault(cfg)
	return c, nil
}

// NewWithToken returns a client for token with default settings.
func NewWithToken(token string) (*Client, error) {
	return New(Config{Token: token})
}

var defaultConfig syncx.Protected[*Config]

func storeDefault(cfg Config) { defaultConfig.Store(&cfg) }

// DefaultConfig returns the configuration of the most recently created client
// and reports whether there is one.
func DefaultConfig() (cfg Config, ok bool) {
	if p := defaultConfig.Load(); p != nil {
		return *p, true
	}
	return cfg, false
}

// ResetDefault forgets the stored default configuration.
func ResetDefault() {
	defaultConfig.Store(nil)
}

// NewDefault returns a client for the configuration of the most recently
// created client. It fails with ErrNoDefaultConfig if there is none.
func NewDefault() (*Client, error) {
	cfg, ok := DefaultConfig()
	if !ok {
		return nil, ErrNoDefaultConfig
	}
	return New(cfg)
}

// configOrDefault returns cfg, or the stored default if cfg has no token and
// nothing else set.
func configOrDefault(cfg Config) (Config, error) {
	if cfg != (Config{}) {
		return cfg, nil
	}
	def, ok := DefaultConfig()
	if !ok {
		return cfg, ErrNoDefaultConfig
	}
	return def, nil
}

func newManager[M any](cfg Config, wrap func(*Client) *M) (*M, error) {
	cfg, err := configOrDefault(cfg)
	if err != nil {
		return nil, err
	}
	c, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return wrap(c), nil
}
