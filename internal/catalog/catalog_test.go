package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Mamlesh45/Myntra-Clone/pkg/errors"
)

func TestNew_SeedsItems(t *testing.T) {
	c := New(12)

	assert.Equal(t, 12, c.Len())

	item, err := c.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "Product 1", item.DisplayName)
	assert.Equal(t, "images/product-1.jpg", item.ImageRef)

	item, err = c.Get(11)
	require.NoError(t, err)
	assert.Equal(t, "Product 12", item.DisplayName)
}

func TestGet_UnknownIdentity(t *testing.T) {
	c := New(3)

	_, err := c.Get(3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	_, err = c.Get(-1)
	require.Error(t, err)
}

func TestList_IdentityOrder(t *testing.T) {
	c := New(4)

	items := c.List()
	require.Len(t, items, 4)
	for i, item := range items {
		assert.Equal(t, i, item.Identity)
	}
}

func TestList_ReturnsCopy(t *testing.T) {
	c := New(2)

	items := c.List()
	items[0].DisplayName = "mutated"

	item, err := c.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "Product 1", item.DisplayName)
}
