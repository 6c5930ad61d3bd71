package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate(t *testing.T) {
	p, err := Paginate("", 10, 25)
	require.NoError(t, err)
	assert.Equal(t, Page{Number: 1, Size: 10, Total: 25, TotalPages: 3, HasNext: true, Next: 2}, p)
	assert.Equal(t, 0, p.Offset())

	p, err = Paginate("last", 10, 25)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Number)
	assert.Equal(t, 20, p.Offset())
	assert.False(t, p.HasNext)
	assert.Equal(t, 2, p.Previous)

	p, err = Paginate("2", 12, 24)
	require.NoError(t, err)
	assert.Equal(t, 2, p.TotalPages)
	assert.Equal(t, 12, p.Offset())
}

func TestPaginateEmptyCollection(t *testing.T) {
	p, err := Paginate("1", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)

	_, err = Paginate("2", 10, 0)
	assert.ErrorIs(t, err, ErrInvalidPage)
}

func TestPaginateRejectsBadPages(t *testing.T) {
	for _, raw := range []string{"0", "-1", "4", "abc", "1.5"} {
		_, err := Paginate(raw, 10, 25)
		assert.ErrorIs(t, err, ErrInvalidPage, raw)
	}
}
