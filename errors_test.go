package rivgo

import (
	"errors"
	"testing"

	"github.com/hupe1980/rivgo/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil))

	inner := &sparse.ErrSizeMismatch{Expected: 4, Actual: 5}
	err := translateError(inner)

	var dm *ErrDimensionMismatch
	require.ErrorAs(t, err, &dm)
	assert.Equal(t, 4, dm.Expected)
	assert.Equal(t, 5, dm.Actual)

	var sm *sparse.ErrSizeMismatch
	assert.ErrorAs(t, err, &sm, "the original error stays reachable")

	other := errors.New("other")
	assert.Same(t, other, translateError(other))
}

func TestReexportedErrors(t *testing.T) {
	v := sparse.New(4).Freeze()
	_, err := v.Put(0, 1)
	assert.ErrorIs(t, err, ErrImmutable)
}
