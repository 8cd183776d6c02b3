package wardroplog

import "go.uber.org/zap"

// Nop returns a logger that discards everything, the same as the
// zap.NewNop default a constraint.Context uses when no logger is configured.
func Nop() *zap.Logger { return zap.NewNop() }

// New returns a production JSON logger suitable for a long-running solve
// session; callers that want development-friendly console output should
// build their own zap.Logger and pass it through constraint.WithLogger
// directly.
func New() (*zap.Logger, error) {
	return zap.NewProduction()
}
