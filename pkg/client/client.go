// Package client is a thin client for a remote bplustree server speaking
// internal/netproto, grounded in the teacher project's pkg/client package
// (same method surface, renamed from the generic Put/Get/Delete to this
// tree's Insert/Find/Delete vocabulary).
package client

import (
	"net"
	"sync"

	"github.com/pkg/errors"

	"bplustree/internal/netproto"
)

// Client is a connection to one remote bplustree server.
type Client struct {
	addr string
	conn net.Conn
	mu   sync.Mutex
}

// New constructs a Client for addr. Call Connect before use.
func New(addr string) *Client {
	return &Client{addr: addr}
}

// Connect dials addr.
func (c *Client) Connect() error {
	conn, err := net.Dial("tcp", c.addr)
	if err != nil {
		return errors.Wrap(err, "client: connect")
	}
	c.conn = conn
	return nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

func (c *Client) roundTrip(msg *netproto.Message) (*netproto.Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil, errors.New("client: not connected")
	}
	if err := netproto.WriteMessage(c.conn, msg); err != nil {
		return nil, errors.Wrap(err, "client: send request")
	}
	resp, err := netproto.ReadResponse(c.conn)
	if err != nil {
		return nil, errors.Wrap(err, "client: read response")
	}
	return resp, nil
}

// Insert stores value under key on the server.
func (c *Client) Insert(key []byte, value int) error {
	resp, err := c.roundTrip(&netproto.Message{Op: netproto.OpInsert, Key: key, Value: int64(value)})
	if err != nil {
		return err
	}
	if resp.Status != netproto.StatusOK {
		return errors.Errorf("client: server error: %s", resp.Error)
	}
	return nil
}

// Find looks up key on the server.
func (c *Client) Find(key []byte) (int, bool, error) {
	resp, err := c.roundTrip(&netproto.Message{Op: netproto.OpFind, Key: key})
	if err != nil {
		return 0, false, err
	}
	if resp.Status == netproto.StatusNotFound {
		return 0, false, nil
	}
	if resp.Status != netproto.StatusOK {
		return 0, false, errors.Errorf("client: server error: %s", resp.Error)
	}
	return int(resp.Value), true, nil
}

// Delete removes key on the server.
func (c *Client) Delete(key []byte) error {
	resp, err := c.roundTrip(&netproto.Message{Op: netproto.OpDelete, Key: key})
	if err != nil {
		return err
	}
	if resp.Status != netproto.StatusOK {
		return errors.Errorf("client: server error: %s", resp.Error)
	}
	return nil
}

// Destroy drops every record on the server's tree.
func (c *Client) Destroy() error {
	resp, err := c.roundTrip(&netproto.Message{Op: netproto.OpDestroy})
	if err != nil {
		return err
	}
	if resp.Status != netproto.StatusOK {
		return errors.Errorf("client: server error: %s", resp.Error)
	}
	return nil
}
