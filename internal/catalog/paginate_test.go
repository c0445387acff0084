package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func fakeList(n int) []Property {
	out := make([]Property, n)
	for i := range out {
		out[i] = Property{ID: fmt.Sprintf("p%d", i)}
	}
	return out
}

func TestPaginatorBatches(t *testing.T) {
	p := NewPaginator(fakeList(14), 6)

	first := p.Next()
	require.Len(t, first, 6)
	require.Equal(t, "p0", first[0].ID)
	require.True(t, p.HasMore())

	second := p.Next()
	require.Len(t, second, 6)
	require.Equal(t, "p6", second[0].ID)
	require.True(t, p.HasMore())

	third := p.Next()
	require.Len(t, third, 2)
	require.False(t, p.HasMore())
	require.Nil(t, p.Next())
}

func TestPaginatorExactMultiple(t *testing.T) {
	p := NewPaginator(fakeList(12), 6)
	require.Len(t, p.Next(), 6)
	require.True(t, p.HasMore())
	require.Len(t, p.Next(), 6)
	require.False(t, p.HasMore())
}

func TestPaginatorResetRewindsToFirstBatch(t *testing.T) {
	p := NewPaginator(fakeList(10), 6)
	_ = p.Next()

	p.Reset(fakeList(3))
	require.True(t, p.HasMore())
	batch := p.Next()
	require.Len(t, batch, 3)
	require.Equal(t, "p0", batch[0].ID)
	require.False(t, p.HasMore())
}

func TestPaginatorDefaultBatchSize(t *testing.T) {
	p := NewPaginator(fakeList(7), 0)
	require.Len(t, p.Next(), DefaultBatchSize)
}

func TestServiceSearch(t *testing.T) {
	svc := NewService(SeedProperties())

	res := svc.Search(DefaultCriteria(), 0, 6)
	require.Equal(t, 6, res.Total)
	require.Len(t, res.Properties, 6)
	require.False(t, res.HasMore)

	res = svc.Search(DefaultCriteria(), 0, 4)
	require.Len(t, res.Properties, 4)
	require.True(t, res.HasMore)

	res = svc.Search(DefaultCriteria(), 4, 4)
	require.Len(t, res.Properties, 2)
	require.False(t, res.HasMore)

	c := DefaultCriteria()
	c.Type = TypeCondo
	res = svc.Search(c, 0, 6)
	require.Equal(t, 1, res.Total)
	require.Equal(t, "4", res.Properties[0].ID)
}

func TestServiceLookups(t *testing.T) {
	svc := NewService(SeedProperties())

	p, ok := svc.GetByID("3")
	require.True(t, ok)
	require.Equal(t, "Suburban Family Home", p.Title)

	_, ok = svc.GetByID("999")
	require.False(t, ok)

	featured := svc.Featured()
	require.Len(t, featured, 3)
	for _, f := range featured {
		require.True(t, f.Featured)
	}
}
