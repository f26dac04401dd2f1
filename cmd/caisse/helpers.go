package main

import (
	"fmt"

	"github.com/Veraticus/caisse/internal/common"
	"github.com/Veraticus/caisse/internal/config"
	"github.com/Veraticus/caisse/internal/ledger"
	"github.com/Veraticus/caisse/internal/recordstore"
)

// newStore returns the configured record store, or nil when no credentials
// are set.
func newStore() (ledger.Store, error) {
	cfg, err := config.LoadStoreConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load store config: %w", err)
	}
	if !cfg.Enabled() {
		return nil, nil
	}

	client, err := recordstore.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create store client: %w", err)
	}
	return client, nil
}

// requireStore is newStore for commands that cannot run offline.
func requireStore() (ledger.Store, error) {
	store, err := newStore()
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, fmt.Errorf("%w: set store.api_key and store.base_id (or AIRTABLE_API_KEY and AIRTABLE_BASE_ID)",
			common.ErrMissingConfig)
	}
	return store, nil
}
