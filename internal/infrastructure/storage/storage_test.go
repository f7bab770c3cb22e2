package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "https://storage.googleapis.com/shop/products/shoe.png", PublicURL("shop", "products/shoe.png"))
	assert.Equal(t, "https://storage.googleapis.com/shop/profiles/7-1700000000000-my%20face.png",
		PublicURL("shop", "profiles/7-1700000000000-my face.png"))
}
