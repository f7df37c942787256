// Package configuration defines the server's YAML configuration file
// format.
package configuration

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v2"
)

// Configuration is the server's top-level configuration, read from a
// single YAML file at startup.
type Configuration struct {
	// Version must be "0.1"; reserved for future format changes.
	Version string `yaml:"version"`

	// Loglevel is the level at which server operations are logged:
	// error, warn, info, or debug.
	Loglevel Loglevel `yaml:"loglevel"`

	// HTTP holds the server's listen address and LDP context path.
	HTTP HTTP `yaml:"http"`

	// Storage selects and configures the pluggable Backend.
	Storage Storage `yaml:"storage"`
}

// HTTP configures the server's listener and the base URL it presents
// resources under.
type HTTP struct {
	// Addr is the bind address, e.g. ":8080".
	Addr string `yaml:"addr"`

	// Prefix is the path new containers and resources are rooted under,
	// e.g. "/r". Defaults to "/r".
	Prefix string `yaml:"prefix"`

	// AppBase is the absolute external base URL clients see, e.g.
	// "http://localhost:8080". Used to build absolute Location headers
	// and to resolve relative IRIs in request bodies.
	AppBase string `yaml:"appbase"`
}

// Loglevel is the level at which operations are logged.
type Loglevel string

// UnmarshalYAML implements yaml.Unmarshaler, lowercasing and validating
// the configured level.
func (l *Loglevel) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	s = strings.ToLower(s)
	switch s {
	case "error", "warn", "info", "debug":
	default:
		return fmt.Errorf("configuration: invalid loglevel %q, must be one of [error, warn, info, debug]", s)
	}
	*l = Loglevel(s)
	return nil
}

// Parameters is a driver-specific key-value configuration map.
type Parameters map[string]interface{}

// Storage names the active Backend and its Parameters as a
// single-key map, so a YAML file can write:
//
//	storage:
//	  memory: {}
type Storage map[string]Parameters

// Type returns the configured backend name, e.g. "memory".
func (s Storage) Type() string {
	for k := range s {
		return k
	}
	return ""
}

// Parameters returns the Parameters for the configured backend.
func (s Storage) Parameters() Parameters {
	return s[s.Type()]
}

// Parse decodes a Configuration from YAML.
func Parse(rd io.Reader) (*Configuration, error) {
	buf, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("configuration: read: %w", err)
	}

	var c Configuration
	if err := yaml.Unmarshal(buf, &c); err != nil {
		return nil, fmt.Errorf("configuration: %w", err)
	}

	if c.HTTP.Prefix == "" {
		c.HTTP.Prefix = "/r"
	}
	if c.HTTP.Addr == "" {
		c.HTTP.Addr = ":8080"
	}
	if c.Storage == nil {
		c.Storage = Storage{"memory": Parameters{}}
	}
	if c.Loglevel == "" {
		c.Loglevel = "info"
	}

	return &c, nil
}
