//go:build !ebiten && !gl

package view

import (
	"context"
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-mesh/model"
)

func TestStubsReportUnavailable(t *testing.T) {
	e, err := model.New(4, nil, model.Options{})
	if err != nil {
		t.Fatal(err)
	}
	opts := WindowOptions{Size: 100, GenerationsPerSecond: 20}

	if err := RunEbiten(context.Background(), e, opts); !errors.Is(err, ErrRendererUnavailable) {
		t.Fatalf("RunEbiten err = %v, expected ErrRendererUnavailable", err)
	}
	if err := RunGL(context.Background(), e, opts); !errors.Is(err, ErrRendererUnavailable) {
		t.Fatalf("RunGL err = %v, expected ErrRendererUnavailable", err)
	}
}
