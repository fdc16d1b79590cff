package kernel_test

import (
	"strconv"
	"testing"

	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomCodeGenerator(t *testing.T) {
	var gen kernel.RandomCodeGenerator

	for range 200 {
		code, err := gen.Generate()
		require.NoError(t, err)
		require.Len(t, code, 6)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}

func TestSequenceCodeGenerator(t *testing.T) {
	gen := kernel.NewSequenceCodeGenerator("111111", "222222")

	for _, want := range []string{"111111", "222222", "222222"} {
		code, err := gen.Generate()
		require.NoError(t, err)
		assert.Equal(t, want, code)
	}

	_, err := kernel.NewSequenceCodeGenerator().Generate()
	require.Error(t, err)
}
