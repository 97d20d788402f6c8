// Package bridge implements hosteditor.Client over the socket.io bridge the
// editor-side plugin exposes. Each editor operation is one command event
// answered by one result event, correlated by id.
package bridge

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"

	"github.com/vk/framejump/internal/ctxlog"
	"github.com/vk/framejump/internal/hosteditor"
)

const (
	commandEvent = "command"
	resultEvent  = "result"

	defaultTimeout = 10 * time.Second
)

// Config describes how to reach the editor bridge.
type Config struct {
	URL                string
	Namespace          string
	Timeout            time.Duration
	InsecureSkipVerify bool
}

// result is the editor's answer to one command, keyed back by id.
type result struct {
	ID    string `json:"id"`
	OK    bool   `json:"ok"`
	Error string `json:"error"`
	Data  any    `json:"data"`
}

// Client talks to the editor bridge. The socket is dialed lazily on the
// first call, so constructing a Client is free and never touches the
// network.
type Client struct {
	cfg Config

	mu        sync.Mutex
	manager   *socket.Manager
	io        *socket.Socket
	ready     chan error
	connected atomic.Bool

	pendingMu sync.Mutex
	pending   map[string]chan result
}

var _ hosteditor.Client = (*Client)(nil)

// New builds a Client for the given bridge endpoint without connecting.
func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Namespace == "" {
		cfg.Namespace = "/editor"
	}
	return &Client{
		cfg:     cfg,
		ready:   make(chan error, 1),
		pending: make(map[string]chan result),
	}
}

// Close tears the bridge connection down. The client can be reused; the
// next call reconnects.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.io != nil {
		c.io.Disconnect()
	}
	c.connected.Store(false)
}

// ensureConnected dials the bridge if no live connection exists, waiting
// until the socket reports connected or ctx runs out.
func (c *Client) ensureConnected(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.connected.Load() {
		return nil
	}

	logger := ctxlog.FromContext(ctx)

	if c.io == nil {
		parsedURL, err := url.Parse(c.cfg.URL)
		if err != nil {
			return fmt.Errorf("invalid bridge URL %q: %w", c.cfg.URL, err)
		}

		baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
		opts := socket.DefaultOptions()
		if parsedURL.Path != "" {
			opts.SetPath(parsedURL.Path)
		}
		if c.cfg.InsecureSkipVerify {
			logger.Warn("Skipping TLS certificate verification for the editor bridge")
			opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
		}
		opts.SetTransports(types.NewSet(transports.WebSocket))

		c.manager = socket.NewManager(baseURL, opts)
		c.io = c.manager.Socket(c.cfg.Namespace, opts)

		c.io.On(types.EventName("connect"), func(...any) {
			c.connected.Store(true)
			logger.Debug("Connected to editor bridge", "namespace", c.cfg.Namespace, "sid", c.io.Id())
			select {
			case c.ready <- nil:
			default:
			}
		})
		c.io.On(types.EventName("connect_error"), func(errs ...any) {
			var err error
			if len(errs) > 0 {
				if e, ok := errs[0].(error); ok {
					err = e
				} else {
					err = fmt.Errorf("%v", errs[0])
				}
			}
			select {
			case c.ready <- err:
			default:
			}
		})
		c.io.On(types.EventName("disconnect"), func(...any) {
			c.connected.Store(false)
		})
		c.io.On(types.EventName(resultEvent), c.dispatch)
	}

	// Drain a stale readiness signal from an earlier attempt.
	select {
	case <-c.ready:
	default:
	}

	c.io.Connect()

	select {
	case err := <-c.ready:
		if err != nil {
			return fmt.Errorf("connecting to editor bridge at %s: %w", c.cfg.URL, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("connecting to editor bridge at %s: %w", c.cfg.URL, ctx.Err())
	}
}

// dispatch routes an incoming result event to the call waiting on its id.
// Results nobody waits for are dropped; the caller timed out already.
func (c *Client) dispatch(data ...any) {
	if len(data) == 0 {
		return
	}
	var res result
	if err := decodeInto(data[0], &res); err != nil || res.ID == "" {
		return
	}

	c.pendingMu.Lock()
	ch, ok := c.pending[res.ID]
	delete(c.pending, res.ID)
	c.pendingMu.Unlock()

	if ok {
		ch <- res
	}
}

// call performs one command round-trip against the bridge.
func (c *Client) call(ctx context.Context, op string, args map[string]any) (any, error) {
	opCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	if err := c.ensureConnected(opCtx); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	ch := make(chan result, 1)

	c.pendingMu.Lock()
	c.pending[id] = ch
	c.pendingMu.Unlock()

	defer func() {
		c.pendingMu.Lock()
		delete(c.pending, id)
		c.pendingMu.Unlock()
	}()

	c.io.Emit(commandEvent, command(id, op, args))

	select {
	case res := <-ch:
		if !res.OK {
			return nil, &hosteditor.RemoteError{Op: op, Message: res.Error}
		}
		return res.Data, nil
	case <-opCtx.Done():
		return nil, fmt.Errorf("editor %s: %w", op, opCtx.Err())
	}
}
