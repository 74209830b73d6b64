// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package local

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/ffutop/onkyo-rs232/iscp"
	"github.com/ffutop/onkyo-rs232/transport"
)

// Client implements transport.Link without any hardware. Every frame is
// decoded, logged and kept, which makes it a dry run for scripts and a
// recorder for tests.
type Client struct {
	mu     sync.Mutex
	out    io.Writer
	frames []iscp.Frame
	closed bool
	sleep  func(time.Duration)
}

// NewClient creates a local link. If out is not nil every accepted frame is
// echoed to it, one per line.
func NewClient(out io.Writer) *Client {
	return &Client{out: out, sleep: time.Sleep}
}

// Connect is a no-op for the local link.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return transport.ErrClosed
	}
	return nil
}

// Write decodes the frame and records it.
func (c *Client) Write(ctx context.Context, frame []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return transport.ErrClosed
	}

	r := bufio.NewReader(bytes.NewReader(frame))
	for {
		f, err := iscp.ReadFrame(r)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		slog.Info("dry run", "command", f.Command.Code, "param", f.Command.Param)
		c.frames = append(c.frames, f)
		if c.out != nil {
			fmt.Fprintf(c.out, "%s\n", f)
		}
	}
}

// Wait blocks for d.
func (c *Client) Wait(d time.Duration) {
	c.sleep(d)
}

// Close marks the link closed.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return transport.ErrClosed
	}
	c.closed = true
	return nil
}

// Frames returns a copy of every frame written so far.
func (c *Client) Frames() []iscp.Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]iscp.Frame(nil), c.frames...)
}
