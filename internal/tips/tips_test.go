package tips

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreDismiss(t *testing.T) {
	store := NewStoreAt(t.TempDir())

	assert.False(t, store.Dismissed())

	assert.NoError(t, store.Dismiss())
	assert.True(t, store.Dismissed())

	// Dismissing again is harmless.
	assert.NoError(t, store.Dismiss())
	assert.True(t, store.Dismissed())
}

func TestStoresAreIndependent(t *testing.T) {
	first := NewStoreAt(t.TempDir())
	second := NewStoreAt(t.TempDir())

	assert.NoError(t, first.Dismiss())

	assert.True(t, first.Dismissed())
	assert.False(t, second.Dismissed())
}
