//go:build !ebiten

package view

import (
	"context"

	"github.com/pkg/errors"
)

// RunEbiten reports that the binary was built without the ebiten tag
func RunEbiten(context.Context, Simulation, WindowOptions) error {
	return errors.Wrap(ErrRendererUnavailable, "[RunEbiten] rebuild with -tags ebiten")
}
