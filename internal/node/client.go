// Package node implements the HTTP client for a Mochimo full node. The node
// serves raw trailer windows (concatenated 160-byte records) and neogenesis
// ledger totals; all decoding happens in the caller.
package node

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/ratelimit"

	"github.com/fossabot/mochimap-api/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Client is a rate-limited Mochimo full node client.
type Client struct {
	baseURL string
	http    *http.Client
	rl      ratelimit.Limiter
	metrics Metrics
}

// NewClient constructs a Client. rps caps node requests per second.
func NewClient(baseURL string, rps int, metrics Metrics) *Client {
	if rps <= 0 {
		rps = 10
	}
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		rl:      ratelimit.New(rps),
		metrics: metrics,
	}
}

// FetchTrailers fetches the raw trailer window [start, start+count). A
// negative start is an offset from the node's current head and is resolved
// by the node itself. The returned bytes are count concatenated trailers,
// oldest first.
func (c *Client) FetchTrailers(ctx context.Context, start int64, count uint64) (raw []byte, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("fetch_trailers", err, started)
	}()
	c.rl.Take()

	endpoint := fmt.Sprintf("%s/trailers?start=%d&count=%d", c.baseURL, start, count)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build trailers request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch trailers [%d,+%d): %w", start, count, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("fetch trailers [%d,+%d): unexpected status %d", start, count, resp.StatusCode)
		return nil, err
	}

	limit := int64(count)*model.TrailerSize + 1
	raw, err = io.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		return nil, fmt.Errorf("read trailers body: %w", err)
	}
	if len(raw) == 0 || len(raw)%model.TrailerSize != 0 {
		err = fmt.Errorf("trailers body size %d is not a positive multiple of %d", len(raw), model.TrailerSize)
		return nil, err
	}
	return raw, nil
}

// NeogenesisSupply returns the ledger total, in nanoMCM, recorded in the
// neogenesis block at the given position.
func (c *Client) NeogenesisSupply(ctx context.Context, position uint64) (amount uint64, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("neogenesis_supply", err, started)
	}()
	c.rl.Take()

	endpoint := c.baseURL + "/neogen/" + url.PathEscape(strconv.FormatUint(position, 10))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("build neogenesis request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch neogenesis supply %d: %w", position, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("fetch neogenesis supply %d: unexpected status %d", position, resp.StatusCode)
		return 0, err
	}

	var payload struct {
		Position uint64 `json:"position"`
		Amount   uint64 `json:"amount"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("decode neogenesis supply %d: %w", position, err)
	}
	return payload.Amount, nil
}
