package web

import (
	"context"
	"errors"
	"fmt"
)

// ErrMissingParams is returned when the request context holds no decoded
// input of the requested type.
var ErrMissingParams = errors.New("request params not found")

type paramsKey struct{}

// NewContextWithParams stores the decoded request input in ctx.
//
//nolint:ireturn //This function needs to return a context.
func NewContextWithParams(ctx context.Context, params any) context.Context {
	return context.WithValue(ctx, paramsKey{}, params)
}

// ParamsFromContext returns the request input stored by NewContextWithParams.
//
//nolint:ireturn //This is a generic function.
func ParamsFromContext[T any](ctx context.Context) (T, error) {
	params, ok := ctx.Value(paramsKey{}).(T)
	if !ok {
		return params, fmt.Errorf("%w: want %T", ErrMissingParams, params)
	}
	return params, nil
}
