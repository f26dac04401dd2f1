// Package recordstore talks to the remote tabular record store (an
// Airtable-style REST API) holding the team and transactions tables.
package recordstore

import (
	"fmt"
	"net/url"
	"time"

	"github.com/Veraticus/caisse/internal/common"
)

// Defaults for the record store configuration.
const (
	DefaultBaseURL           = "https://api.airtable.com/v0"
	DefaultMembersTable      = "Equipe"
	DefaultTransactionsTable = "Transactions"
	DefaultTimeout           = 30 * time.Second
)

// Config holds the record store connection settings.
type Config struct {
	APIKey            string
	BaseID            string
	BaseURL           string
	MembersTable      string
	TransactionsTable string
	Timeout           time.Duration
}

// DefaultConfig returns a Config with sensible defaults and no credentials.
func DefaultConfig() Config {
	return Config{
		BaseURL:           DefaultBaseURL,
		MembersTable:      DefaultMembersTable,
		TransactionsTable: DefaultTransactionsTable,
		Timeout:           DefaultTimeout,
	}
}

// Enabled reports whether enough is configured to reach the store. A store
// without a credential or base ID is never contacted.
func (c Config) Enabled() bool {
	return c.APIKey != "" && c.BaseID != ""
}

// Validate checks if the configuration is usable.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("%w: record store API key is required", common.ErrMissingConfig)
	}
	if c.BaseID == "" {
		return fmt.Errorf("%w: record store base ID is required", common.ErrMissingConfig)
	}
	if c.MembersTable == "" || c.TransactionsTable == "" {
		return fmt.Errorf("%w: table names must not be empty", common.ErrInvalidConfig)
	}
	if _, err := url.ParseRequestURI(c.BaseURL); err != nil {
		return fmt.Errorf("%w: invalid base URL %q", common.ErrInvalidConfig, c.BaseURL)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout cannot be negative", common.ErrInvalidConfig)
	}
	return nil
}
