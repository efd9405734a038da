package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tableorder/internal/cache"
)

func TestCache_SetGet(t *testing.T) {
	c := cache.New()

	c.Set("menus:store:1", []string{"americano"}, time.Minute)

	v, ok := c.Get("menus:store:1")
	assert.True(t, ok)
	assert.Equal(t, []string{"americano"}, v)
}

func TestCache_MissingKey(t *testing.T) {
	c := cache.New()

	_, ok := c.Get("menus:store:404")
	assert.False(t, ok)
}

func TestCache_Expiry(t *testing.T) {
	c := cache.New()

	c.Set("k", "v", 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	_, ok := c.Get("k")
	assert.False(t, ok)
}

func TestCache_Delete(t *testing.T) {
	c := cache.New()

	c.Set("k", "v", time.Minute)
	c.Delete("k")

	_, ok := c.Get("k")
	assert.False(t, ok)
}
