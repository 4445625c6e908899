// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// defaultFontSource parses the embedded Go Regular font once per process.
var defaultFontSource = sync.OnceValues(func() (*text.FontSource, error) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("ggchart: load default font: %w", err)
	}
	return src, nil
})

// DefaultFace returns the built-in caption face at the given size.
func DefaultFace(size float64) (text.Face, error) {
	src, err := defaultFontSource()
	if err != nil {
		return nil, err
	}
	return src.Face(size), nil
}
