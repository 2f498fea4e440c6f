package ports

import "context"

// Runtime defines the host primitive that executes a located source unit.
//
// Execute runs the file at absPath to completion. It fails with an error
// matching domain.ErrMalformedSource, domain.ErrRuntimeFailure or
// domain.ErrSourceNotFound; any other failure is treated as a runtime failure
// by callers.
//
//go:generate mockgen -source=runtime.go -destination=mocks/mock_runtime.go -package=mocks
type Runtime interface {
	Execute(ctx context.Context, absPath string) error
}
