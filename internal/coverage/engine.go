package coverage

import "go.uber.org/zap"

// Engine runs the coverage aggregation stages for a single sample. It holds
// the shared depth threshold so that exon classification and variant
// partitioning always agree on the cutoff.
type Engine struct {
	threshold int
	logger    *zap.Logger
}

// New creates an engine for the given depth threshold.
func New(threshold int) *Engine {
	return &Engine{
		threshold: threshold,
		logger:    zap.NewNop(),
	}
}

// SetLogger sets the logger for warning and info messages.
func (e *Engine) SetLogger(l *zap.Logger) {
	e.logger = l
}

// Threshold returns the depth threshold the engine was built with.
func (e *Engine) Threshold() int {
	return e.threshold
}
