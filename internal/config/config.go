// Copyright (c) 2025-2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// MinCommandDelay is the processing window the receiver needs after every frame.
const MinCommandDelay = 50 * time.Millisecond

// Config defines the global configuration structure
type Config struct {
	Link     LinkConfig     `mapstructure:"link"`
	Receiver ReceiverConfig `mapstructure:"receiver"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Log      LogConfig      `mapstructure:"log"`
}

// LogConfig defines logging configuration
type LogConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	File       string `mapstructure:"file"`        // Log file path, empty or "-" for stderr
	MaxSize    int    `mapstructure:"max_size"`    // Megabytes before rotation
	MaxBackups int    `mapstructure:"max_backups"` // Rotated files to keep
	MaxAge     int    `mapstructure:"max_age"`     // Days to keep rotated files
}

// LinkConfig defines how the receiver is reached
type LinkConfig struct {
	Type   string       `mapstructure:"type"`   // "serial", "tcp", "local"
	Serial SerialConfig `mapstructure:"serial"` // Used if Type is "serial"
	Tcp    TcpConfig    `mapstructure:"tcp"`    // Used if Type is "tcp"
}

// TcpConfig defines settings for a serial-over-IP bridge
type TcpConfig struct {
	Address string        `mapstructure:"address"` // e.g. "192.168.1.20:4001"
	Timeout time.Duration `mapstructure:"timeout"` // Dial and write timeout
}

// SerialConfig defines RS-232 settings
type SerialConfig struct {
	Device   string        `mapstructure:"device"`
	BaudRate int           `mapstructure:"baud_rate"`
	DataBits int           `mapstructure:"data_bits"`
	Parity   string        `mapstructure:"parity"`
	StopBits int           `mapstructure:"stop_bits"`
	Timeout  time.Duration `mapstructure:"timeout"`

	// RS485 specific
	RS485              bool          `mapstructure:"rs485"`
	DelayRtsBeforeSend time.Duration `mapstructure:"delay_rts_before_send"`
	DelayRtsAfterSend  time.Duration `mapstructure:"delay_rts_after_send"`
	RtsHighDuringSend  bool          `mapstructure:"rts_high_during_send"`
	RtsHighAfterSend   bool          `mapstructure:"rts_high_after_send"`
	RxDuringTx         bool          `mapstructure:"rx_during_tx"`
}

// ReceiverConfig defines command pacing
type ReceiverConfig struct {
	CommandDelay time.Duration `mapstructure:"command_delay"` // Pause after every frame
}

// HTTPConfig defines the control API listener
type HTTPConfig struct {
	Address string `mapstructure:"address"`
}

// flagKeys maps command line flags onto configuration keys.
var flagKeys = map[string]string{
	"link":          "link.type",
	"device":        "link.serial.device",
	"baud_rate":     "link.serial.baud_rate",
	"address":       "link.tcp.address",
	"command_delay": "receiver.command_delay",
	"http":          "http.address",
	"log_level":     "log.level",
	"log_file":      "log.file",
}

// RegisterFlags defines the command line flags understood by LoadConfig.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP("config", "c", "", "Configuration file path.")
	fs.StringP("link", "t", "serial", "Link type (serial, tcp, local).")
	fs.StringP("device", "p", "/dev/ttyS1", "Serial port device name.")
	fs.IntP("baud_rate", "s", 9600, "Serial port speed.")
	fs.StringP("address", "a", "", "Serial-over-IP bridge address (host:port).")
	fs.DurationP("command_delay", "d", MinCommandDelay, "Pause after every command, at least 50ms.")
	fs.String("http", ":8080", "HTTP listen address for the serve command.")
	fs.StringP("log_level", "v", "info", "Log verbosity level (debug, info, warn, error).")
	fs.StringP("log_file", "L", "", "Log file name ('-' for logging to STDERR only).")
}

// LoadConfig loads configuration from file, with flags from fs taking
// precedence. A missing file is only an error if configFile names one.
func LoadConfig(configFile string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("/etc/onkyo-rs232/")
		v.AddConfigPath("$HOME/.onkyo-rs232")
		v.AddConfigPath(".")
	}

	// Set defaults
	v.SetDefault("link.type", "serial")
	v.SetDefault("link.serial.device", "/dev/ttyS1")
	v.SetDefault("link.serial.baud_rate", 9600)
	v.SetDefault("link.serial.data_bits", 8)
	v.SetDefault("link.serial.parity", "N")
	v.SetDefault("link.serial.stop_bits", 1)
	v.SetDefault("link.serial.timeout", 500*time.Millisecond)
	v.SetDefault("link.tcp.timeout", 10*time.Second)
	v.SetDefault("receiver.command_delay", MinCommandDelay)
	v.SetDefault("http.address", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.fixup(); err != nil {
		return nil, err
	}
	return &config, nil
}

// fixup validates the link selection and fills what the file left empty.
func (c *Config) fixup() error {
	c.Link.Type = strings.ToLower(c.Link.Type)
	switch c.Link.Type {
	case "serial":
		if c.Link.Serial.Device == "" {
			return fmt.Errorf("serial link needs a device")
		}
	case "tcp":
		if c.Link.Tcp.Address == "" {
			return fmt.Errorf("tcp link needs an address")
		}
	case "local":
	default:
		return fmt.Errorf("unknown link type %q", c.Link.Type)
	}

	fixupSerial(&c.Link.Serial)
	if c.Link.Tcp.Timeout <= 0 {
		c.Link.Tcp.Timeout = 10 * time.Second
	}
	if c.Receiver.CommandDelay < MinCommandDelay {
		c.Receiver.CommandDelay = MinCommandDelay
	}
	c.Log.Level = strings.ToLower(c.Log.Level)
	return nil
}

func fixupSerial(s *SerialConfig) {
	s.Parity = strings.ToUpper(s.Parity)
	if s.BaudRate == 0 {
		s.BaudRate = 9600
	}
	if s.DataBits == 0 {
		s.DataBits = 8
	}
	if s.StopBits == 0 {
		s.StopBits = 1
	}
	if s.Parity == "" {
		s.Parity = "N"
	}
	if s.Timeout == 0 {
		s.Timeout = 500 * time.Millisecond
	}
}
