//go:build !gl

package view

import (
	"context"

	"github.com/pkg/errors"
)

// RunGL reports that the binary was built without the gl tag
func RunGL(context.Context, Simulation, WindowOptions) error {
	return errors.Wrap(ErrRendererUnavailable, "[RunGL] rebuild with -tags gl")
}
