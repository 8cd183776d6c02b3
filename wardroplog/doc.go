// Package wardroplog is a thin wrapper around go.uber.org/zap: Nop returns
// a logger that discards everything, New a production logger. It holds no
// package-level logger of its own; callers pass one to constraint.WithLogger.
package wardroplog
