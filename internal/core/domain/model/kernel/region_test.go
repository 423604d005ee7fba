package kernel_test

import (
	"testing"

	"ownplate/internal/core/domain/model/kernel"
	"ownplate/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegion(t *testing.T) {
	t.Run("two decimal region", func(t *testing.T) {
		region, err := kernel.NewRegion(kernel.TwoDecimalMultiple, "en")

		require.NoError(t, err)
		assert.Equal(t, 100, region.Multiple())
		assert.Equal(t, "en", region.DefaultLocale())
		require.NoError(t, region.Validate())
	})

	t.Run("zero decimal region", func(t *testing.T) {
		region, err := kernel.NewRegion(kernel.ZeroDecimalMultiple, "ja")

		require.NoError(t, err)
		assert.Equal(t, 1, region.Multiple())
	})

	t.Run("unsupported multiple", func(t *testing.T) {
		_, err := kernel.NewRegion(10, "en")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("empty locale", func(t *testing.T) {
		_, err := kernel.NewRegion(kernel.TwoDecimalMultiple, "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRegion_Validate(t *testing.T) {
	t.Run("zero value is not constructed", func(t *testing.T) {
		var region kernel.Region
		require.ErrorIs(t, region.Validate(), kernel.ErrRegionIsNotConstructed)
	})
}
