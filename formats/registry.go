// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package formats

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Registry is an insertion-ordered mapping from file extension to [Parser].
// It is safe for concurrent use and may be modified at any time.
type Registry struct {
	mu         sync.RWMutex
	extensions []string
	parsers    map[string]Parser
}

// NewRegistry returns a registry holding the built-in parsers, in this
// order: ini, json5, json, yaml, yml, toml. yaml and yml share one parser.
func NewRegistry() *Registry {
	r := NewEmptyRegistry()

	yaml := Lazy(newYAMLParser)

	r.Set("ini", Lazy(newINIParser))
	r.Set("json5", Lazy(newJSON5Parser))
	r.Set("json", Lazy(newJSONParser))
	r.Set("yaml", yaml)
	r.Set("yml", yaml)
	r.Set("toml", Lazy(newTOMLParser))

	return r
}

// NewEmptyRegistry returns a registry with no parsers.
func NewEmptyRegistry() *Registry {
	return &Registry{
		parsers: make(map[string]Parser),
	}
}

// Set registers p for ext, replacing any parser already registered for it.
// A replaced extension keeps its position; a new one is appended.
func (r *Registry) Set(ext string, p Parser) {
	ext = normalizeExtension(ext)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.parsers[ext]; !ok {
		r.extensions = append(r.extensions, ext)
	}
	r.parsers[ext] = p
}

// Lookup returns the parser registered for ext.
func (r *Registry) Lookup(ext string) (Parser, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.parsers[normalizeExtension(ext)]
	return p, ok
}

// MustLookup is like Lookup but returns an error wrapping
// [ErrUnknownExtension] when ext is not registered.
func (r *Registry) MustLookup(ext string) (Parser, error) {
	p, ok := r.Lookup(ext)
	if !ok {
		return nil, fmt.Errorf("%w: .%s", ErrUnknownExtension, normalizeExtension(ext))
	}

	return p, nil
}

// Delete removes ext from the registry.
func (r *Registry) Delete(ext string) {
	ext = normalizeExtension(ext)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.parsers[ext]; !ok {
		return
	}
	delete(r.parsers, ext)
	r.extensions = slices.DeleteFunc(r.extensions, func(e string) bool { return e == ext })
}

// Extensions returns the registered extensions in registry order.
func (r *Registry) Extensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.extensions)
}

func normalizeExtension(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
