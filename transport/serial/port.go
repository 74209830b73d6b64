// Copyright (c) 2014 Quoc-Viet Nguyen. All rights reserved.
// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package serial

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/ffutop/onkyo-rs232/transport"
	"github.com/grid-x/serial"
)

// serialPort has configuration and I/O controller.
type serialPort struct {
	// Serial port configuration.
	serial.Config

	mu sync.Mutex
	// port is platform-dependent data structure for serial port.
	port   io.ReadWriteCloser
	closed bool
}

func (sp *serialPort) Connect(ctx context.Context) (err error) {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	return sp.connect(ctx)
}

// connect connects to the serial port if it is not connected. Caller must hold the mutex.
func (sp *serialPort) connect(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	if sp.closed {
		return transport.ErrClosed
	}
	if sp.port == nil {
		port, err := serial.Open(&sp.Config)
		if err != nil {
			return fmt.Errorf("could not open %s: %w", sp.Config.Address, err)
		}
		slog.Debug("serial port opened", "device", sp.Config.Address, "baudRate", sp.Config.BaudRate)
		sp.port = port
	}
	return nil
}

// Close closes the serial port. Closing twice reports transport.ErrClosed.
func (sp *serialPort) Close() (err error) {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if sp.closed {
		return transport.ErrClosed
	}
	sp.closed = true
	if sp.port != nil {
		err = sp.port.Close()
		sp.port = nil
		slog.Debug("serial port closed", "device", sp.Config.Address)
	}
	return
}
