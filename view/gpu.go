// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package view

import (
	"fmt"

	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gpucontext"
)

// NewGPU creates a view whose pixels are uploaded to a texture on the
// device of provider. The provider usually comes from
// gogpu.App.GPUContextProvider().
func NewGPU(provider gpucontext.DeviceProvider, width, height int) (*View, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	canvas, err := ggcanvas.New(provider, width, height)
	if err != nil {
		return nil, fmt.Errorf("view: create GPU canvas: %w", err)
	}
	return newView(canvas, width, height), nil
}

// RenderTo draws the last painted frame into a gogpu window.
// Only GPU views can render; software views return ErrNotGPU.
//
// Example:
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    if v.NeedsDisplay() {
//	        _ = v.Paint()
//	    }
//	    _ = v.RenderTo(dc.AsTextureDrawer())
//	})
func (v *View) RenderTo(dc gpucontext.TextureDrawer) error {
	if v.closed {
		return ErrViewClosed
	}
	canvas, ok := v.surface.(*ggcanvas.Canvas)
	if !ok {
		return ErrNotGPU
	}
	if err := canvas.RenderTo(dc); err != nil {
		return fmt.Errorf("view: render: %w", err)
	}
	return nil
}
