package config

import (
	"os"
	"time"

	"github.com/Veraticus/caisse/internal/recordstore"
	"github.com/spf13/viper"
)

// Viper keys for the record store.
const (
	KeyAPIKey            = "store.api_key"
	KeyBaseID            = "store.base_id"
	KeyBaseURL           = "store.base_url"
	KeyMembersTable      = "store.members_table"
	KeyTransactionsTable = "store.transactions_table"
	KeyTimeout           = "store.timeout"
)

// LoadStoreConfig loads the record store configuration from Viper and
// environment variables. It follows this precedence:
// 1. Viper configuration (from config file or CAISSE_ env vars)
// 2. Direct environment variables (AIRTABLE_*)
// 3. Default values
//
// A configuration without credentials is returned as-is; callers check
// Enabled before contacting the store.
func LoadStoreConfig() (recordstore.Config, error) {
	cfg := recordstore.DefaultConfig()

	if v := viper.GetString(KeyAPIKey); v != "" {
		cfg.APIKey = v
	}
	if v := viper.GetString(KeyBaseID); v != "" {
		cfg.BaseID = v
	}
	if v := viper.GetString(KeyBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := viper.GetString(KeyMembersTable); v != "" {
		cfg.MembersTable = v
	}
	if v := viper.GetString(KeyTransactionsTable); v != "" {
		cfg.TransactionsTable = v
	}
	if viper.IsSet(KeyTimeout) {
		cfg.Timeout = viper.GetDuration(KeyTimeout)
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("AIRTABLE_API_KEY")
	}
	if cfg.BaseID == "" {
		cfg.BaseID = os.Getenv("AIRTABLE_BASE_ID")
	}

	if !cfg.Enabled() {
		return cfg, nil
	}

	if err := cfg.Validate(); err != nil {
		return recordstore.Config{}, err
	}

	return cfg, nil
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Currency string
	ErrorTTL time.Duration
}

// Viper keys for the UI.
const (
	KeyCurrency = "ui.currency"
	KeyErrorTTL = "ui.error_ttl"
)

// DefaultErrorTTL is how long the error banner stays up by default.
const DefaultErrorTTL = 5 * time.Second

// LoadUIConfig loads presentation settings from Viper.
func LoadUIConfig() UIConfig {
	cfg := UIConfig{
		Currency: "€",
		ErrorTTL: DefaultErrorTTL,
	}
	if viper.IsSet(KeyCurrency) {
		cfg.Currency = viper.GetString(KeyCurrency)
	}
	if viper.IsSet(KeyErrorTTL) {
		cfg.ErrorTTL = viper.GetDuration(KeyErrorTTL)
	}
	return cfg
}
