//go:build unit

package hash

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestCRC32HashAlgorithm_GetTableSize(t *testing.T) {
	t.Run("returns the exact table size", func(t *testing.T) {
		// Prepare
		h := NewCRC32HashAlgorithm(10)

		// Execute
		tableSize := h.GetTableSize()

		// Check
		assert.Equal(t, int64(10), tableSize, "correct tableSize value")
	})
}

func TestCRC32HashAlgorithm_HashFunc1(t *testing.T) {
	t.Run("creates a valid bucket number", func(t *testing.T) {
		// Prepare
		h := NewCRC32HashAlgorithm(7)

		// Execute
		bucketNo := h.HashFunc1("bruno")

		// Check
		assert.Equal(t, int64(6), bucketNo, "create a valid bucket number")
	})
}

func TestCRC32HashAlgorithm_SetTableSize(t *testing.T) {
	t.Run("sets table size", func(t *testing.T) {
		// Prepare
		h := NewCRC32HashAlgorithm(10)

		// Execute
		h.SetTableSize(7)

		// Check
		assert.Equal(t, int64(7), h.GetTableSize(), "correct tableSize value")
		assert.Equal(t, int64(1), h.HashFunc1("ana"), "hashes against new size")
	})

	t.Run("raises non positive size to 1", func(t *testing.T) {
		// Prepare
		h := NewCRC32HashAlgorithm(10)

		// Execute
		h.SetTableSize(0)

		// Check
		assert.Equal(t, int64(1), h.GetTableSize(), "table size raised")
		assert.Equal(t, int64(0), h.HashFunc1("ana"), "only bucket 0 exists")
	})
}
