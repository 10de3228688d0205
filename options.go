package ggfx

import "log/slog"

// EmptyChainPolicy decides how a block returning an empty filter list is
// resolved.
type EmptyChainPolicy uint8

const (
	// EmptyChainStrict fails with ErrMissingReturn. This is the default.
	EmptyChainStrict EmptyChainPolicy = iota

	// EmptyChainPermissive treats an empty list like None: the input passes
	// through unchanged.
	EmptyChainPermissive
)

// String returns a human-readable name for the policy.
func (p EmptyChainPolicy) String() string {
	switch p {
	case EmptyChainStrict:
		return "Strict"
	case EmptyChainPermissive:
		return "Permissive"
	default:
		return "Unknown"
	}
}

// Option configures a Pipeline during creation.
//
// Example:
//
//	p := ggfx.New(
//	    ggfx.WithRenderer(ggfx.NewSoftwareRenderer(ggfx.WithWorkers(2))),
//	    ggfx.WithEmptyChainPolicy(ggfx.EmptyChainPermissive),
//	)
type Option func(*pipelineOptions)

// pipelineOptions holds optional configuration for Pipeline creation.
type pipelineOptions struct {
	renderer   Renderer
	logger     *slog.Logger
	emptyChain EmptyChainPolicy
	errorWidth int
}

// DefaultErrorBitmapWidth is the width of error bitmaps unless
// WithErrorBitmapWidth overrides it.
const DefaultErrorBitmapWidth = 320

// defaultOptions returns the default pipeline options.
func defaultOptions() pipelineOptions {
	return pipelineOptions{
		renderer:   nil, // Will be set to the shared SoftwareRenderer if nil
		logger:     nil, // Falls back to the package logger
		emptyChain: EmptyChainStrict,
		errorWidth: DefaultErrorBitmapWidth,
	}
}

// WithRenderer sets the renderer used to materialize filter output.
func WithRenderer(r Renderer) Option {
	return func(o *pipelineOptions) {
		o.renderer = r
	}
}

// WithLogger sets a logger for this pipeline only. Without it the pipeline
// logs through [Logger] at call time.
func WithLogger(l *slog.Logger) Option {
	return func(o *pipelineOptions) {
		o.logger = l
	}
}

// WithEmptyChainPolicy sets how empty filter lists are resolved.
func WithEmptyChainPolicy(p EmptyChainPolicy) Option {
	return func(o *pipelineOptions) {
		o.emptyChain = p
	}
}

// WithErrorBitmapWidth sets the width of the bitmaps returned in place of a
// failed result. Non-positive values keep the default.
func WithErrorBitmapWidth(w int) Option {
	return func(o *pipelineOptions) {
		if w > 0 {
			o.errorWidth = w
		}
	}
}
