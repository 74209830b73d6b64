// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
link:
  type: tcp
  tcp:
    address: 192.168.1.20:4001
  serial:
    parity: e
receiver:
  command_delay: 120ms
log:
  level: DEBUG
  file: /var/log/onkyo.log
`)

	cfg, err := LoadConfig(path, nil)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Link.Type != "tcp" || cfg.Link.Tcp.Address != "192.168.1.20:4001" {
		t.Errorf("link = %+v", cfg.Link)
	}
	if cfg.Link.Tcp.Timeout != 10*time.Second {
		t.Errorf("tcp timeout = %v, want default 10s", cfg.Link.Tcp.Timeout)
	}
	if cfg.Link.Serial.Parity != "E" {
		t.Errorf("parity = %q, want E", cfg.Link.Serial.Parity)
	}
	if cfg.Link.Serial.BaudRate != 9600 || cfg.Link.Serial.Device != "/dev/ttyS1" {
		t.Errorf("serial defaults not applied: %+v", cfg.Link.Serial)
	}
	if cfg.Receiver.CommandDelay != 120*time.Millisecond {
		t.Errorf("command delay = %v, want 120ms", cfg.Receiver.CommandDelay)
	}
	if cfg.Log.Level != "debug" || cfg.Log.File != "/var/log/onkyo.log" || cfg.Log.MaxSize != 10 {
		t.Errorf("log = %+v", cfg.Log)
	}
}

func TestLoadConfigClampsDelay(t *testing.T) {
	path := writeConfig(t, "receiver:\n  command_delay: 10ms\n")
	cfg, err := LoadConfig(path, nil)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Receiver.CommandDelay != MinCommandDelay {
		t.Errorf("command delay = %v, want %v", cfg.Receiver.CommandDelay, MinCommandDelay)
	}
}

func TestLoadConfigFlags(t *testing.T) {
	path := writeConfig(t, "link:\n  type: serial\n  serial:\n    device: /dev/ttyUSB0\n")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	if err := fs.Parse([]string{"--link", "local", "--command_delay", "75ms", "-v", "warn", "power", "on"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path, fs)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Link.Type != "local" {
		t.Errorf("link type = %q, want flag value local", cfg.Link.Type)
	}
	if cfg.Link.Serial.Device != "/dev/ttyUSB0" {
		t.Errorf("device = %q, file value should survive an unset flag", cfg.Link.Serial.Device)
	}
	if cfg.Receiver.CommandDelay != 75*time.Millisecond {
		t.Errorf("command delay = %v, want 75ms", cfg.Receiver.CommandDelay)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log level = %q, want warn", cfg.Log.Level)
	}
	if fs.NArg() != 2 {
		t.Errorf("args = %v", fs.Args())
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), nil); err == nil {
		t.Error("missing explicit config file accepted")
	}
	if _, err := LoadConfig(writeConfig(t, "link:\n  type: usb\n"), nil); err == nil {
		t.Error("unknown link type accepted")
	}
	if _, err := LoadConfig(writeConfig(t, "link:\n  type: tcp\n"), nil); err == nil {
		t.Error("tcp link without address accepted")
	}
}
