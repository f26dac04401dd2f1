package tui

import (
	"time"

	"github.com/Veraticus/caisse/internal/ledger"
	"github.com/Veraticus/caisse/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme    themes.Theme
	Store    ledger.Store
	Currency string
	ErrorTTL time.Duration
	Width    int
	Height   int
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:    themes.Default,
		Currency: "€",
		ErrorTTL: 5 * time.Second,
		Width:    80,
		Height:   24,
	}
}

// WithStore sets the record store. Without one the TUI shows empty lists
// and never touches the network.
func WithStore(store ledger.Store) Option {
	return func(c *Config) {
		c.Store = store
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithCurrency sets the suffix printed after amounts.
func WithCurrency(currency string) Option {
	return func(c *Config) {
		c.Currency = currency
	}
}

// WithErrorTTL sets how long the error banner stays up. Zero keeps it until
// it is dismissed or replaced.
func WithErrorTTL(ttl time.Duration) Option {
	return func(c *Config) {
		c.ErrorTTL = ttl
	}
}
