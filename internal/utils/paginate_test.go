package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	t.Run("13 items at page size 10", func(t *testing.T) {
		pg := Paginate(1, 10, 13)
		assert.Equal(t, 1, pg.Page)
		assert.Equal(t, 2, pg.TotalPages)
		assert.Equal(t, 0, pg.Offset())
		assert.True(t, pg.HasNext())
		assert.False(t, pg.HasPrev())

		pg = Paginate(2, 10, 13)
		assert.Equal(t, 2, pg.Page)
		assert.Equal(t, 10, pg.Offset())
		assert.False(t, pg.HasNext())

		// Beyond the end clamps to the last valid page, same window as page 2.
		pg = Paginate(3, 10, 13)
		assert.Equal(t, 2, pg.Page)
		assert.Equal(t, 10, pg.Offset())
	})

	t.Run("page below one clamps to one", func(t *testing.T) {
		pg := Paginate(0, 10, 25)
		assert.Equal(t, 1, pg.Page)

		pg = Paginate(-4, 10, 25)
		assert.Equal(t, 1, pg.Page)
	})

	t.Run("empty listing still has one page", func(t *testing.T) {
		pg := Paginate(7, 10, 0)
		assert.Equal(t, 1, pg.Page)
		assert.Equal(t, 1, pg.TotalPages)
		assert.Equal(t, 0, pg.Offset())
		assert.False(t, pg.HasNext())
	})

	t.Run("exact multiple has no trailing page", func(t *testing.T) {
		pg := Paginate(2, 10, 20)
		assert.Equal(t, 2, pg.TotalPages)
		assert.Equal(t, 2, pg.Page)
	})
}
