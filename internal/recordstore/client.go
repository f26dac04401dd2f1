package recordstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Veraticus/caisse/internal/common"
	"github.com/Veraticus/caisse/internal/model"
	"golang.org/x/oauth2"
)

var errMissingRecords = errors.New("response has no records")

// Client reads and writes the team and transactions tables. It keeps no
// local state between calls.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
	cfg        Config
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient sets the base HTTP client used underneath the bearer
// credential transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithClock sets the clock used to stamp new transactions.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a record store client. Requests carry cfg.APIKey as a
// bearer token.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		cfg:    cfg,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	base := c.httpClient
	if base == nil {
		base = &http.Client{}
	}

	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	authed := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: cfg.APIKey,
		TokenType:   "Bearer",
	}))
	authed.Timeout = cfg.Timeout
	c.httpClient = authed

	return c, nil
}

// FetchMembers returns every row of the team table.
func (c *Client) FetchMembers(ctx context.Context) ([]model.Member, error) {
	records, err := list[memberFields](ctx, c, c.cfg.MembersTable, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch members: %w", common.ErrConnection, err)
	}

	members := make([]model.Member, 0, len(records))
	for _, r := range records {
		members = append(members, toMember(r))
	}
	return members, nil
}

// FetchTransactions returns every row of the transactions table, newest
// first as sorted by the store.
func (c *Client) FetchTransactions(ctx context.Context) ([]model.Transaction, error) {
	query := url.Values{}
	query.Set("sort[0][field]", sortField)
	query.Set("sort[0][direction]", "desc")

	records, err := list[transactionFields](ctx, c, c.cfg.TransactionsTable, query)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch transactions: %w", common.ErrConnection, err)
	}

	transactions := make([]model.Transaction, 0, len(records))
	for _, r := range records {
		transactions = append(transactions, toTransaction(r))
	}
	return transactions, nil
}

// CreateTransaction appends a new row to the transactions table, stamped
// with the current time.
func (c *Client) CreateTransaction(ctx context.Context, draft model.Draft) error {
	if err := draft.Validate(); err != nil {
		return fmt.Errorf("%w: %w", common.ErrSave, err)
	}

	body, err := json.Marshal(newCreateRequest(draft, c.now()))
	if err != nil {
		return fmt.Errorf("%w: encode transaction: %w", common.ErrSave, err)
	}

	resp, err := c.do(ctx, http.MethodPost, c.tableURL(c.cfg.TransactionsTable, nil), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: create transaction: %w", common.ErrSave, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if err := checkStatus(resp); err != nil {
		return fmt.Errorf("%w: create transaction: %w", common.ErrSave, err)
	}

	return nil
}

// list reads every record of one table.
func list[F any](ctx context.Context, c *Client, table string, query url.Values) ([]record[F], error) {
	resp, err := c.do(ctx, http.MethodGet, c.tableURL(table, query), nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var out listResponse[F]
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if out.Records == nil {
		return nil, errMissingRecords
	}

	return *out.Records, nil
}

func (c *Client) do(ctx context.Context, method, target string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	c.logger.Debug("record store request",
		"method", method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	return resp, nil
}

func (c *Client) tableURL(table string, query url.Values) string {
	u := strings.TrimRight(c.cfg.BaseURL, "/") + "/" + url.PathEscape(c.cfg.BaseID) + "/" + url.PathEscape(table)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	err := fmt.Errorf("record store API error: %d - %s", resp.StatusCode, strings.TrimSpace(string(body)))

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return common.NewUserError(common.AuthErrorMessage, err)
	default:
		return err
	}
}
