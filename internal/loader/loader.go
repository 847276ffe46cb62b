// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/minond/acm/formats"
	"github.com/minond/acm/internal/fields"
	"github.com/minond/acm/internal/logger"
	"github.com/minond/acm/internal/merge"
	"github.com/minond/acm/models"
)

// Loader resolves logical file names into merged documents.
//
// Paths, Links and Fields are read on every cache miss, so they may be
// changed between loads; documents already cached are not affected.
type Loader struct {
	// Paths lists the search directories in precedence order. Duplicates
	// are ignored after their first occurrence.
	Paths []string

	// Links maps a logical name to an explicit file, merged after every
	// search-path match. Use [Loader.Link] once loads may run concurrently.
	Links map[string]string

	// Formats selects the parser for each extension.
	Formats *formats.Registry

	// Fields are substituted into raw file contents before parsing.
	Fields map[string]any

	fs     FileSystem
	logger *logger.Logger

	mu    sync.RWMutex
	cache map[string]entry
	group singleflight.Group
}

type entry struct {
	doc   models.Document
	found bool
}

// New returns a Loader reading from the real file system.
func New(registry *formats.Registry, log *logger.Logger) *Loader {
	return NewWithFS(OSFS{}, registry, log)
}

// NewWithFS returns a Loader reading through fsys.
func NewWithFS(fsys FileSystem, registry *formats.Registry, log *logger.Logger) *Loader {
	if log == nil {
		log = logger.Nop()
	}

	return &Loader{
		Links:   make(map[string]string),
		Formats: registry,
		Fields:  make(map[string]any),
		fs:      fsys,
		logger:  log.WithComponent("loader"),
		cache:   make(map[string]entry),
	}
}

// Load returns the merged document for the logical name. found is false,
// with a nil error, when no file matched and no link exists.
//
// Successful results, including "not found", are cached. Errors are not.
// Concurrent loads of one name read the files once.
func (l *Loader) Load(name string) (doc models.Document, found bool, err error) {
	if e, ok := l.cached(name); ok {
		return e.doc, e.found, nil
	}

	v, err, _ := l.group.Do(name, func() (any, error) {
		if e, ok := l.cached(name); ok {
			return e, nil
		}

		e, err := l.scan(name)
		if err != nil {
			return nil, err
		}

		l.mu.Lock()
		l.cache[name] = e
		l.mu.Unlock()

		return e, nil
	})
	if err != nil {
		return nil, false, err
	}

	e := v.(entry)
	return e.doc, e.found, nil
}

// Link maps name to an explicit file. It is safe to call concurrently with
// Load; names already cached are not affected.
func (l *Loader) Link(name, path string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.Links[name] = path
}

func (l *Loader) link(name string) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	path, ok := l.Links[name]
	return path, ok
}

func (l *Loader) cached(name string) (entry, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	e, ok := l.cache[name]
	return e, ok
}

func (l *Loader) scan(name string) (entry, error) {
	l.logger.Debug().Str("name", name).Msg("config cache miss")

	var merged models.Document
	found := false

	for _, dir := range uniq(l.Paths) {
		for _, ext := range l.Formats.Extensions() {
			path := filepath.Join(dir, name) + "." + ext

			if !l.exists(path) {
				continue
			}

			doc, err := l.ReadFile(path, ext)
			if err != nil {
				return entry{}, err
			}

			merged = merge.Merge(merged, doc)
			found = true
			l.logger.Debug().Str("name", name).Str("path", path).Msg("config file merged")
		}
	}

	if link, ok := l.link(name); ok {
		ext := strings.TrimPrefix(filepath.Ext(link), ".")
		if ext == "" {
			return entry{}, fmt.Errorf("%w: %s", ErrNoExtension, link)
		}

		doc, err := l.ReadFile(link, ext)
		if err != nil {
			return entry{}, err
		}

		merged = merge.Merge(merged, doc)
		found = true
		l.logger.Debug().Str("name", name).Str("path", link).Msg("linked config file merged")
	}

	return entry{doc: merged, found: found}, nil
}

// ReadFile reads, expands and parses a single file with the parser
// registered for ext.
//
// An unregistered extension is an error wrapping
// [formats.ErrUnknownExtension]. Read and parse errors are returned as is,
// with the file path added.
func (l *Loader) ReadFile(path, ext string) (models.Document, error) {
	parser, err := l.Formats.MustLookup(ext)
	if err != nil {
		return nil, fmt.Errorf("invalid extension on %s: %w", path, err)
	}

	raw, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	raw, err = fields.Expand(raw, l.Fields)
	if err != nil {
		return nil, fmt.Errorf("error expanding config file %s: %w", path, err)
	}

	doc, err := parser.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("error parsing config file %s: %w", path, err)
	}

	return doc, nil
}

// exists reports whether path is a regular file. Any stat failure counts as
// a missing file.
func (l *Loader) exists(path string) bool {
	info, err := l.fs.Stat(path)
	return err == nil && !info.IsDir()
}

// uniq removes duplicates from paths keeping the first occurrence of each.
func uniq(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	out := make([]string, 0, len(paths))

	for _, p := range paths {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	return out
}
