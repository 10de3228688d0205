package ggfx

import (
	"log/slog"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	p := New()
	if p.opts.emptyChain != EmptyChainStrict {
		t.Errorf("emptyChain = %v, want Strict", p.opts.emptyChain)
	}
	if p.opts.errorWidth != DefaultErrorBitmapWidth {
		t.Errorf("errorWidth = %d, want %d", p.opts.errorWidth, DefaultErrorBitmapWidth)
	}
	if p.renderer() != defaultRenderer() {
		t.Error("default pipeline should use the shared renderer")
	}
	if p.log() != Logger() {
		t.Error("default pipeline should log through the package logger")
	}
}

func TestOptions(t *testing.T) {
	r := NewSoftwareRenderer(WithWorkers(1))
	l := slog.New(nopHandler{})
	p := New(
		WithRenderer(r),
		WithLogger(l),
		WithEmptyChainPolicy(EmptyChainPermissive),
		WithErrorBitmapWidth(128),
	)
	if p.renderer() != r {
		t.Error("WithRenderer not applied")
	}
	if p.log() != l {
		t.Error("WithLogger not applied")
	}
	if p.opts.emptyChain != EmptyChainPermissive {
		t.Errorf("emptyChain = %v, want Permissive", p.opts.emptyChain)
	}
	if p.opts.errorWidth != 128 {
		t.Errorf("errorWidth = %d, want 128", p.opts.errorWidth)
	}
}

func TestWithErrorBitmapWidth_IgnoresNonPositive(t *testing.T) {
	for _, w := range []int{0, -5} {
		if got := New(WithErrorBitmapWidth(w)).opts.errorWidth; got != DefaultErrorBitmapWidth {
			t.Errorf("WithErrorBitmapWidth(%d): errorWidth = %d, want default", w, got)
		}
	}
}

func TestEmptyChainPolicy_String(t *testing.T) {
	tests := []struct {
		p    EmptyChainPolicy
		want string
	}{
		{EmptyChainStrict, "Strict"},
		{EmptyChainPermissive, "Permissive"},
		{EmptyChainPolicy(9), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.p, got, tt.want)
		}
	}
}
