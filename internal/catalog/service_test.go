package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllReturnsSeedOrderCopy(t *testing.T) {
	seed := SeedProperties()
	svc := NewService(seed)

	all := svc.All()
	require.Equal(t, seed, all)

	// Mutating the returned slice must not leak into the service.
	all[0].Title = "clobbered"
	require.NotEqual(t, "clobbered", svc.All()[0].Title)
}

func TestNewServiceCopiesInput(t *testing.T) {
	seed := SeedProperties()
	svc := NewService(seed)

	seed[0].Title = "mutated after construction"
	require.NotEqual(t, "mutated after construction", svc.All()[0].Title)
}

func TestSearchClampsOffsetPastEnd(t *testing.T) {
	svc := NewService(SeedProperties())
	total := len(svc.All())

	res := svc.Search(DefaultCriteria(), total+10, DefaultBatchSize)
	require.Empty(t, res.Properties)
	require.Equal(t, total, res.Total)
	require.False(t, res.HasMore)
}

func TestSearchZeroLimitFallsBackToDefaultBatch(t *testing.T) {
	svc := NewService(SeedProperties())

	res := svc.Search(DefaultCriteria(), 0, 0)
	require.LessOrEqual(t, len(res.Properties), DefaultBatchSize)
	require.Equal(t, len(svc.All()), res.Total)
}
