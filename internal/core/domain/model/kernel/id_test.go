package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecomove/internal/core/domain/model/kernel"
)

func TestNewID(t *testing.T) {
	tests := []struct {
		name    string
		value   int64
		wantErr bool
	}{
		{name: "positive", value: 42, wantErr: false},
		{name: "zero", value: 0, wantErr: true},
		{name: "negative", value: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := kernel.NewID(tt.value)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Zero(t, id)
			} else {
				require.NoError(t, err)
				assert.NoError(t, id.Validate())
				assert.Equal(t, tt.value, id.Int64())
			}
		})
	}
}

func TestID_IsEqual(t *testing.T) {
	first, err := kernel.NewID(7)
	require.NoError(t, err)

	second, err := kernel.NewID(7)
	require.NoError(t, err)

	third, err := kernel.NewID(8)
	require.NoError(t, err)

	assert.True(t, first.IsEqual(second))
	assert.False(t, first.IsEqual(third))
}

func TestID_String(t *testing.T) {
	id, err := kernel.NewID(123)
	require.NoError(t, err)
	assert.Equal(t, "123", id.String())
}
