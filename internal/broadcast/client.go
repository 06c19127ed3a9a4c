package broadcast

import (
	"context"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/openworkbench/themed/internal/logging"
)

// Client connects a window to a hub and delivers incoming messages to
// a handler.
type Client struct {
	logger zerolog.Logger
	ws     *websocket.Conn
}

// Dial connects to the hub's websocket endpoint.
func Dial(ctx context.Context, url string) (*Client, error) {
	ws, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	return &Client{logger: logging.Component("broadcast-client"), ws: ws}, nil
}

// OnBroadcast reads messages until the connection closes, invoking the
// handler for each. It blocks; run it on its own goroutine.
func (c *Client) OnBroadcast(handler func(Message)) {
	for {
		var msg Message
		if err := c.ws.ReadJSON(&msg); err != nil {
			c.logger.Debug().Err(err).Msg("broadcast stream closed")
			return
		}
		handler(msg)
	}
}

// Close closes the connection.
func (c *Client) Close() error {
	return c.ws.Close()
}
