// Copyright (c) 2025 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package transport

import (
	"context"
	"errors"
	"time"
)

// ErrClosed is returned when a link is used or closed after Close.
var ErrClosed = errors.New("transport: link is closed")

// Link is the byte sink a receiver is driven through (serial port,
// serial-over-IP bridge, dry run).
//
// A Link performs no pacing of its own and is not safe for interleaved
// frames: callers own the link exclusively, or serialize Write+Wait pairs.
type Link interface {
	// Connect opens the underlying connection. Write connects lazily, so
	// calling Connect up front only surfaces configuration errors early.
	Connect(ctx context.Context) error
	// Write sends one complete frame.
	Write(ctx context.Context, frame []byte) error
	// Wait blocks for d, giving the device time to process the last frame.
	Wait(d time.Duration)
	// Close releases the connection. A second Close returns ErrClosed.
	Close() error
}
