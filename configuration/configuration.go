// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configuration

import (
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/caarlos0/env/v11"

	"github.com/minond/acm/formats"
	"github.com/minond/acm/internal/argv"
	"github.com/minond/acm/internal/fields"
	"github.com/minond/acm/internal/loader"
	"github.com/minond/acm/internal/logger"
	"github.com/minond/acm/models"
)

// Configuration resolves keys for one resolution context. The zero value is
// not usable; build one with [New].
//
// Lookups, Set and Link are safe for concurrent use. Readers, Formats and
// Fields may be changed between lookups but not concurrently with them.
type Configuration struct {
	// Readers lists the enabled sources in priority order. It may be
	// reordered or shortened; see [DefaultReaders].
	Readers []Reader

	argv   map[string]any
	env    map[string]string
	paths  []string
	loader *loader.Loader
	logger *logger.Logger

	mu   sync.RWMutex
	user map[string]any
}

// New builds a Configuration from opts, filling in defaults for every
// omitted field.
func New(opts Options) *Configuration {
	log := logger.Nop()
	if opts.Logger != nil {
		log = &logger.Logger{Logger: *opts.Logger}
	}

	args := opts.Argv
	if args == nil {
		args = argv.Parse(os.Args[1:])
	}

	links := opts.FileLinks
	if links == nil {
		links = make(map[string]string)
	}

	c := &Configuration{
		Readers: DefaultReaders(),
		argv:    args,
		env:     opts.Env,
		paths:   opts.searchPaths(),
		logger:  log,
		user:    make(map[string]any),
	}

	environment := opts.Env
	if environment == nil {
		environment = env.ToMap(os.Environ())
	}

	c.loader = loader.New(formats.NewRegistry(), log)
	c.loader.Paths = c.paths
	c.loader.Links = links
	c.loader.Fields["env"] = environment
	c.loader.Fields["process"] = fields.Process(os.Args)

	return c
}

// Get returns the value for key, or nil when no reader defines it.
// Use [Configuration.Lookup] to tell a missing key from a nil value.
func (c *Configuration) Get(key string) (any, error) {
	value, _, err := c.Lookup(key)
	return value, err
}

// Lookup asks each reader in turn for key and returns the first value
// found. found is false when no reader defines key.
//
// Errors come from the file reader: a file that exists but cannot be read,
// expanded or parsed.
func (c *Configuration) Lookup(key string) (value any, found bool, err error) {
	for _, reader := range c.Readers {
		value, found, err = c.read(reader, key)
		if err != nil {
			return nil, false, fmt.Errorf("error reading %q from %s: %w", key, reader, err)
		}
		if found {
			c.logger.Debug().Str("key", key).Stringer("reader", reader).Msg("config value resolved")
			return value, true, nil
		}
	}

	return nil, false, nil
}

// String returns the value for key formatted with fmt.Sprint.
func (c *Configuration) String(key string) (string, bool, error) {
	value, found, err := c.Lookup(key)
	if err != nil || !found {
		return "", found, err
	}

	if s, ok := value.(string); ok {
		return s, true, nil
	}

	return fmt.Sprint(value), true, nil
}

// Set stores value under key. It takes precedence over every other source
// for that exact key from now on.
func (c *Configuration) Set(key string, value any) *Configuration {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.user[key] = value
	return c
}

// Link maps the logical file name to an explicit file. Names already loaded
// are not affected.
func (c *Configuration) Link(name, path string) *Configuration {
	c.loader.Link(name, path)
	return c
}

// Load returns the merged document for a logical file name, as read by the
// file reader. The document is cached and shared: changes made to it are
// visible to later lookups.
func (c *Configuration) Load(name string) (models.Document, bool, error) {
	return c.loader.Load(name)
}

// Formats returns the registry used to parse configuration files. Parsers
// registered on it apply to files not loaded yet.
func (c *Configuration) Formats() *formats.Registry {
	return c.loader.Formats
}

// Fields returns the map substituted into file contents. It holds "env" and
// "process" by default and may be extended.
func (c *Configuration) Fields() map[string]any {
	return c.loader.Fields
}

// Paths returns the search directories in precedence order.
func (c *Configuration) Paths() []string {
	return slices.Clone(c.paths)
}

// Argv returns the parsed command-line argument tree.
func (c *Configuration) Argv() map[string]any {
	return c.argv
}

// Env returns the environment map given at construction, or nil when the
// process environment is used.
func (c *Configuration) Env() map[string]string {
	return c.env
}
