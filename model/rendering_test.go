package model

import (
	"bytes"
	"strings"
	"testing"
)

func TestTerminalRendererDisplay(t *testing.T) {
	e := mustEngine(t, 3, Cell{X: 0, Y: 0}, Cell{X: 2, Y: 1})
	var out bytes.Buffer
	r := &TerminalRenderer{Out: &out}
	if err := r.Display(e.EmitMesh(), e.Size()); err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		gridPosBlock + gridPosEmpty + gridPosEmpty,
		gridPosEmpty + gridPosEmpty + gridPosBlock,
		gridPosEmpty + gridPosEmpty + gridPosEmpty,
	}, "\n") + "\n"
	if out.String() != want {
		t.Fatalf("frame =\n%q\nexpected\n%q", out.String(), want)
	}
}

func TestTerminalRendererViewport(t *testing.T) {
	e := mustEngine(t, 10, Cell{X: 9, Y: 9}, Cell{X: 1, Y: 0})
	var out bytes.Buffer
	r := &TerminalRenderer{Out: &out, Viewport: 2}
	if err := r.Display(e.EmitMesh(), e.Size()); err != nil {
		t.Fatal(err)
	}
	want := gridPosEmpty + gridPosBlock + "\n" + gridPosEmpty + gridPosEmpty + "\n"
	if out.String() != want {
		t.Fatalf("frame = %q, expected %q", out.String(), want)
	}
}

func TestTerminalRendererClear(t *testing.T) {
	var out bytes.Buffer
	r := &TerminalRenderer{Out: &out}
	if err := r.Clear(); err != nil {
		t.Fatal(err)
	}
	if out.String() != ansiClear {
		t.Fatalf("clear wrote %q", out.String())
	}
}

func TestTallyPoolReturnsEmptyMaps(t *testing.T) {
	p := NewTallyPool()
	tally := p.Get()
	tally[Cell{X: 1, Y: 1}] = 3
	p.Put(tally)
	if got := p.Get(); len(got) != 0 {
		t.Fatalf("pooled tally has %d entries, expected 0", len(got))
	}
}
