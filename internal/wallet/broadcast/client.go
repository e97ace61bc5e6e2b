// Package broadcast submits signed transaction wire forms to remote JSON-RPC
// endpoints. It never retries and never reinterprets provider errors; retry
// policy belongs to the caller.
package broadcast

import (
	"context"
	"regexp"
	"sync"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var txHashPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

// Client submits raw transactions to one of several RPC endpoints, failing
// over in order when an endpoint cannot be reached. A single submission is
// only ever sent to one endpoint.
type Client struct {
	urls []string

	mu      sync.Mutex
	clients []*rpc.Client
	current int
}

// NewClient creates a client for the given endpoint URLs. Endpoints that
// cannot be dialed immediately are kept and retried on use, so a temporarily
// unreachable endpoint does not fail construction as long as one works.
func NewClient(ctx context.Context, urls []string) (*Client, error) {
	if len(urls) == 0 {
		return nil, errors.New("at least one RPC URL is required")
	}

	clients := make([]*rpc.Client, len(urls))
	connected := 0

	for i, url := range urls {
		client, err := rpc.DialContext(ctx, url)
		if err != nil {
			log.Warn().
				Str("url", url).
				Err(err).
				Msg("Failed to connect to RPC endpoint, will retry on use")
			continue
		}

		clients[i] = client
		connected++
	}

	if connected == 0 {
		return nil, errors.New("failed to connect to any RPC endpoint")
	}

	return &Client{
		urls:    urls,
		clients: clients,
	}, nil
}

// Close closes all endpoint connections.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, client := range c.clients {
		if client != nil {
			client.Close()
		}
	}
}

// SendRawTransaction submits the 0x-prefixed signed transaction hex and
// returns the provider-assigned transaction hash. Failures carry the
// endpoint and the structured HTTP status or RPC error code; they are
// surfaced as-is, without retries against other endpoints, since the
// provider may have accepted the transaction before failing.
func (c *Client) SendRawTransaction(ctx context.Context, rawTx string) (string, error) {
	client, endpoint, err := c.acquire(ctx)
	if err != nil {
		return "", err
	}

	var txHash string
	if err := client.CallContext(ctx, &txHash, "eth_sendRawTransaction", rawTx); err != nil {
		return "", classifyError(endpoint, err)
	}

	if !txHashPattern.MatchString(txHash) {
		return "", &Error{
			Endpoint: endpoint,
			Kind:     ErrorKindMalformed,
			cause:    errors.Errorf("provider returned %q instead of a transaction hash", txHash),
		}
	}

	return txHash, nil
}

// acquire returns a healthy client, starting from the endpoint that worked
// last and redialing dead connections along the way. HTTP transports connect
// lazily, so a cheap chain id call probes each candidate before it is handed
// out for the actual submission.
func (c *Client) acquire(ctx context.Context) (*rpc.Client, string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var lastErr error

	for i := 0; i < len(c.clients); i++ {
		idx := (c.current + i) % len(c.clients)

		if c.clients[idx] == nil {
			client, err := rpc.DialContext(ctx, c.urls[idx])
			if err != nil {
				log.Warn().
					Str("url", c.urls[idx]).
					Err(err).
					Msg("RPC endpoint still unreachable")
				lastErr = classifyError(c.urls[idx], err)
				continue
			}

			c.clients[idx] = client
		}

		var chainID string
		if err := c.clients[idx].CallContext(ctx, &chainID, "eth_chainId"); err != nil {
			log.Warn().
				Str("url", c.urls[idx]).
				Err(err).
				Msg("RPC endpoint health check failed")
			lastErr = classifyError(c.urls[idx], err)
			continue
		}

		c.current = idx

		return c.clients[idx], c.urls[idx], nil
	}

	return nil, "", errors.Wrap(lastErr, "all RPC endpoints are unavailable")
}
