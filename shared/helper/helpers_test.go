package helper_test

import (
	"context"
	"testing"

	"github.com/on-the-ground/splaymemo/shared/helper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const key helper.ContextKey = "test_key"

func TestGetTypedValueOf(t *testing.T) {
	ctx := context.WithValue(context.Background(), key, 42)

	v, err := helper.GetTypedValueOf[int](ctx, key)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	_, err = helper.GetTypedValueOf[string](ctx, key)
	assert.Error(t, err)

	_, err = helper.GetTypedValueOf[int](context.Background(), key)
	assert.ErrorIs(t, err, helper.ErrNoContextValue)
}
