package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/akulagin/creditcore/internal/metrics"
	"github.com/akulagin/creditcore/pkg/clients"
	"github.com/akulagin/creditcore/pkg/retry"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const (
	rpcTimeout  = time.Second * 5
	maxAttempts = 3
	baseDelay   = time.Millisecond * 500
)

// RPCClientI fetches transactions from a chain RPC node.
type RPCClientI interface {
	GetTransaction(ctx context.Context, signature string) (gjson.Result, error)
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

// RPCClient talks JSON-RPC to a Solana node. Transport failures are retried
// with exponential backoff; RPC-level errors are not.
type RPCClient struct {
	url      string
	client   clients.HTTPClientI
	strategy *retry.Strategy
}

func NewRPCClient(url string, client clients.HTTPClientI) *RPCClient {
	return &RPCClient{
		url:      url,
		client:   client,
		strategy: retry.NewStrategy(maxAttempts, baseDelay),
	}
}

// GetTransaction returns the `result` field of getTransaction, requested at
// finalized commitment; a Null result means the transaction is not visible at
// that commitment.
func (c *RPCClient) GetTransaction(ctx context.Context, signature string) (gjson.Result, error) {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "getTransaction",
		Params: []any{signature, map[string]any{
			"encoding":                       "json",
			"commitment":                     "finalized",
			"maxSupportedTransactionVersion": 0,
		}},
	})
	if err != nil {
		return gjson.Result{}, fmt.Errorf("can't marshal rpc request: %w", err)
	}

	var respBody []byte
	err = c.strategy.Do(ctx, func(ctx context.Context) error {
		respBody, err = c.post(ctx, body)
		if err != nil {
			zap.L().Warn("rpc transport error, retrying", zap.Error(err))
			return retry.Transient(err)
		}
		return nil
	})
	if err != nil {
		metrics.RPCRequests.WithLabelValues("error").Inc()
		return gjson.Result{}, err
	}

	parsed := gjson.ParseBytes(respBody)
	if rpcErr := parsed.Get("error"); rpcErr.Exists() {
		metrics.RPCRequests.WithLabelValues("error").Inc()
		return gjson.Result{}, fmt.Errorf("rpc error %d: %s", rpcErr.Get("code").Int(), rpcErr.Get("message").String())
	}

	metrics.RPCRequests.WithLabelValues("ok").Inc()
	return parsed.Get("result"), nil
}

func (c *RPCClient) post(ctx context.Context, body []byte) ([]byte, error) {
	callCtx, cancel := context.WithTimeout(ctx, rpcTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(callCtx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if e := resp.Body.Close(); e != nil {
			err = errors.Join(err, clients.ErrFailedCloseResponseBody)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected rpc status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
