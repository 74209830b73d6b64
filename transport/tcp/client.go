// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package tcp

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/ffutop/onkyo-rs232/internal/config"
	"github.com/ffutop/onkyo-rs232/transport"
)

const (
	tcpTimeout   = 10 * time.Second
	tcpKeepAlive = 30 * time.Second
)

// Client implements transport.Link over a raw TCP stream to a
// serial-over-IP bridge (ser2net, RS-232 device servers).
type Client struct {
	Address string
	Timeout time.Duration

	mu     sync.Mutex
	conn   net.Conn
	closed bool
	sleep  func(time.Duration)
}

// NewClient allocates and initializes a TCP Client.
func NewClient(cfg config.TcpConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = tcpTimeout
	}
	return &Client{
		Address: cfg.Address,
		Timeout: timeout,
		sleep:   time.Sleep,
	}
}

// Write sends one frame to the bridge.
func (c *Client) Write(ctx context.Context, frame []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.connect(ctx); err != nil {
		return err
	}

	deadline := time.Now().Add(c.Timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := c.conn.SetWriteDeadline(deadline); err != nil {
		c.drop()
		return err
	}

	slog.Debug("send to receiver", "address", c.Address, "frame", strconv.Quote(string(frame)))
	if _, err := c.conn.Write(frame); err != nil {
		// Drop the stream so the next command dials a fresh one.
		c.drop()
		return err
	}
	return nil
}

// Wait blocks for d.
func (c *Client) Wait(d time.Duration) {
	c.sleep(d)
}

// Connect implements transport.Link.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connect(ctx)
}

// Close implements transport.Link.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return transport.ErrClosed
	}
	c.closed = true
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}

// connect ensures there is an active connection. Caller must hold the mutex.
func (c *Client) connect(ctx context.Context) error {
	if c.closed {
		return transport.ErrClosed
	}
	if c.conn != nil {
		return nil
	}
	d := net.Dialer{Timeout: c.Timeout, KeepAlive: tcpKeepAlive}
	conn, err := d.DialContext(ctx, "tcp", c.Address)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", c.Address, err)
	}
	slog.Debug("connected to serial bridge", "address", c.Address)
	c.conn = conn
	return nil
}

// drop closes the connection without closing the link. Caller must hold the mutex.
func (c *Client) drop() {
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
}
