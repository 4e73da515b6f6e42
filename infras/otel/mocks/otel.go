package mocks

import (
	"context"

	"resort/infras/otel"
)

type noopOtel struct{}

// NewOtel returns an otel.Otel whose scopes record nothing. Service and
// handler tests use it.
func NewOtel() otel.Otel {
	return noopOtel{}
}

func (noopOtel) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, NewScope()
}
