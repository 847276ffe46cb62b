// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configuration

import (
	"os"

	"github.com/minond/acm/internal/keys"
)

// Reader names a configuration source.
type Reader string

// Configuration sources, listed in their default priority order.
const (
	ReaderUser Reader = "user"
	ReaderArgv Reader = "argv"
	ReaderEnv  Reader = "env"
	ReaderFile Reader = "file"
)

func (r Reader) String() string {
	return string(r)
}

// DefaultReaders returns a new slice holding every reader in the default
// order: user, argv, env, file.
func DefaultReaders() []Reader {
	return []Reader{ReaderUser, ReaderArgv, ReaderEnv, ReaderFile}
}

func (c *Configuration) read(reader Reader, key string) (any, bool, error) {
	switch reader {
	case ReaderUser:
		value, ok := c.readFromUser(key)
		return value, ok, nil
	case ReaderArgv:
		value, ok := c.readFromArgv(key)
		return value, ok, nil
	case ReaderEnv:
		value, ok := c.readFromEnv(key)
		return value, ok, nil
	case ReaderFile:
		return c.readFromFile(key)
	default:
		return nil, false, ErrUnknownReader
	}
}

func (c *Configuration) readFromUser(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	value, ok := c.user[key]
	return value, ok
}

func (c *Configuration) readFromArgv(key string) (any, bool) {
	if key == "" {
		return nil, false
	}

	return keys.Dig(c.argv, key)
}

func (c *Configuration) readFromEnv(key string) (string, bool) {
	name := keys.ParseEntryVariable(key)
	if name == "" {
		return "", false
	}

	if c.env == nil {
		return os.LookupEnv(name)
	}

	value, ok := c.env[name]
	return value, ok
}

func (c *Configuration) readFromFile(key string) (any, bool, error) {
	file, path := keys.ParseEntryPath(key)
	if file == "" {
		return nil, false, nil
	}

	doc, found, err := c.loader.Load(file)
	if err != nil || !found {
		return nil, false, err
	}

	value, ok := keys.Dig(doc, path)
	return value, ok, nil
}
