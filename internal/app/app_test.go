package app

import (
	"testing"
	"time"

	"github.com/atomicstack/composite-widgets/internal/input"
)

func TestOptionsMapsDirection(t *testing.T) {
	cfg := Config{Width: 80, RTL: true, TypeaheadWindow: time.Second}
	opts := cfg.Options()
	if opts.Direction != input.RTL {
		t.Fatalf("expected RTL, got %v", opts.Direction)
	}
	if opts.Width != 80 || opts.TypeaheadWindow != time.Second {
		t.Fatalf("unexpected options %+v", opts)
	}
	if (Config{}).Options().Direction != input.LTR {
		t.Fatalf("expected LTR by default")
	}
}
