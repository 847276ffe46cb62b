// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package formats

//go:generate mockgen -source=parser.go -destination=../internal/mock/parser_mock.go -package=mock

import (
	"sync"

	"github.com/minond/acm/models"
)

// Parser converts the raw text of a configuration file into a document.
type Parser interface {
	// Parse decodes raw. It returns an error when the text is malformed or
	// when its top level value is not an object.
	Parse(raw []byte) (models.Document, error)
}

// ParserFunc adapts an ordinary function to the [Parser] interface.
type ParserFunc func(raw []byte) (models.Document, error)

// Parse calls f(raw).
func (f ParserFunc) Parse(raw []byte) (models.Document, error) {
	return f(raw)
}

// Lazy returns a Parser that calls build the first time it is used and
// delegates to the result from then on.
func Lazy(build func() Parser) Parser {
	return &lazyParser{build: build}
}

type lazyParser struct {
	once   sync.Once
	build  func() Parser
	parser Parser
}

func (l *lazyParser) Parse(raw []byte) (models.Document, error) {
	l.once.Do(func() {
		l.parser = l.build()
	})

	return l.parser.Parse(raw)
}
