package insights

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/finwellhq/insights-go/internal/auth"
	"github.com/finwellhq/insights-go/internal/transport"
	internalTypes "github.com/finwellhq/insights-go/internal/types"
	"github.com/pkg/errors"
)

const (
	// DefaultBaseURL is the default snapshot API base URL
	DefaultBaseURL = "https://api.finwell.app"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)

// Transport handles HTTP communication with the snapshot API
type Transport interface {
	Get(ctx context.Context, path string, params url.Values, result interface{}) error
	SetAuth(token string)
	SetSession(session *internalTypes.Session)
}

// Client fetches point-in-time snapshots from the snapshot API. It
// implements SnapshotProvider.
type Client struct {
	baseURL    string
	httpClient *http.Client
	transport  Transport
	auth       *auth.Service
	options    *ClientOptions
}

// ClientOptions configures the client
type ClientOptions struct {
	// BaseURL overrides the default API base URL
	BaseURL string

	// HTTPClient allows using a custom HTTP client
	HTTPClient *http.Client

	// Timeout sets the HTTP client timeout
	Timeout time.Duration

	// Token provides direct authentication token
	Token string

	// SessionFile path for session persistence
	SessionFile string

	// Logger for debug logging
	Logger Logger

	// RetryConfig configures retry behavior
	RetryConfig *internalTypes.RetryConfig

	// Hooks for observability
	Hooks *internalTypes.Hooks
}

// NewClient creates a new snapshot API client
func NewClient(opts *ClientOptions) (*Client, error) {
	if opts == nil {
		opts = &ClientOptions{}
	}

	// Set defaults
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}

	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{
			Timeout: DefaultTimeout,
		}
	}

	if opts.Timeout > 0 {
		opts.HTTPClient.Timeout = opts.Timeout
	}

	// Create transport using the internal package
	trans := transport.NewRESTTransport(&transport.Options{
		BaseURL:     opts.BaseURL,
		HTTPClient:  opts.HTTPClient,
		RetryConfig: opts.RetryConfig,
		Logger:      opts.Logger,
		Hooks:       opts.Hooks,
	})

	// Set auth if token provided
	if opts.Token != "" {
		trans.SetAuth(opts.Token)
	}

	c := &Client{
		baseURL:    opts.BaseURL,
		httpClient: opts.HTTPClient,
		transport:  trans,
		auth:       auth.NewService(opts.BaseURL, opts.HTTPClient, opts.Logger),
		options:    opts,
	}

	// Load session if file specified
	if opts.SessionFile != "" {
		if err := c.loadSession(opts.SessionFile); err != nil && opts.Logger != nil {
			opts.Logger.Warn("Failed to load session", "error", err)
		}
	}

	return c, nil
}

// NewClientWithToken creates a client with an auth token
func NewClientWithToken(token string) (*Client, error) {
	return NewClient(&ClientOptions{
		Token: token,
	})
}

// Login authenticates against the snapshot API and installs the resulting
// session on the transport.
func (c *Client) Login(ctx context.Context, email, password string) error {
	if err := c.auth.Login(ctx, email, password); err != nil {
		return err
	}
	session, err := c.auth.GetSession()
	if err != nil {
		return err
	}
	c.transport.SetSession(session)

	if c.options.SessionFile != "" {
		if err := c.auth.SaveSession(c.options.SessionFile); err != nil && c.options.Logger != nil {
			c.options.Logger.Warn("Failed to save session", "error", err)
		}
	}
	return nil
}

// loadSession loads a persisted session and installs it on the transport.
func (c *Client) loadSession(path string) error {
	if err := c.auth.LoadSession(path); err != nil {
		return err
	}
	session, err := c.auth.GetSession()
	if err != nil {
		return err
	}
	c.transport.SetSession(session)
	return nil
}

// FetchSnapshot retrieves the six record collections plus categories as one
// point-in-time snapshot. The reads are independent, so they are issued
// concurrently; the first failure fails the whole fetch, since a partial
// snapshot would break the report's consistency guarantee.
func (c *Client) FetchSnapshot(ctx context.Context, asOf time.Time) (*Snapshot, error) {
	ranges := resolveDateRanges(asOf)
	snap := &Snapshot{}

	// Transactions back to the start of the anomaly baseline window
	txParams := url.Values{}
	txParams.Set("from", ranges.MonthStart.AddDate(0, -3, 0).Format("2006-01-02"))
	txParams.Set("to", asOf.Format("2006-01-02"))

	asOfParams := url.Values{}
	asOfParams.Set("asOf", asOf.Format("2006-01-02"))

	fetches := []struct {
		path   string
		params url.Values
		into   func() interface{}
	}{
		{"/v1/transactions", txParams, func() interface{} { return &snap.Transactions }},
		{"/v1/budgets", asOfParams, func() interface{} { return &snap.Budgets }},
		{"/v1/goals", asOfParams, func() interface{} { return &snap.Goals }},
		{"/v1/bills", asOfParams, func() interface{} { return &snap.Bills }},
		{"/v1/accounts", asOfParams, func() interface{} { return &snap.Accounts }},
		{"/v1/recurring", asOfParams, func() interface{} { return &snap.RecurringTransactions }},
		{"/v1/categories", nil, func() interface{} { return &snap.Categories }},
	}

	var wg sync.WaitGroup
	fetchErrs := make([]error, len(fetches))

	for i, f := range fetches {
		wg.Add(1)
		go func(i int, path string, params url.Values, into interface{}) {
			defer wg.Done()
			if err := c.transport.Get(ctx, path, params, into); err != nil {
				fetchErrs[i] = errors.Wrapf(err, "failed to fetch %s", path)
			}
		}(i, f.path, f.params, f.into())
	}
	wg.Wait()

	for _, err := range fetchErrs {
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSnapshotFetch, err)
		}
	}

	return snap, nil
}
