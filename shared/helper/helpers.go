package helper

import (
	"context"
	"errors"
	"fmt"
)

var ErrNoContextValue = errors.New("no value registered in context")

// ContextKey namespaces values this module stores on a context.Context.
type ContextKey string

// GetTypedValueOf looks key up in ctx and asserts it to T.
// Returns an error if the key is missing or holds another type.
func GetTypedValueOf[T any](ctx context.Context, key ContextKey) (T, error) {
	var zero T

	raw := ctx.Value(key)
	if raw == nil {
		return zero, fmt.Errorf("%w: %v", ErrNoContextValue, key)
	}

	val, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected type for %v: %T", key, raw)
	}

	return val, nil
}
