package hash

import (
	"github.com/spaolacci/murmur3"
)

// Murmur3HashAlgorithm - Bucket selection using the 32 bit murmur3 hash of the key modulo the table size.
// Spreads clustered keys far better than CharSumHashAlgorithm.
type Murmur3HashAlgorithm struct {
	tableSize int64
}

// NewMurmur3HashAlgorithm - Returns a pointer to a new Murmur3HashAlgorithm instance
func NewMurmur3HashAlgorithm(tableSize int64) *Murmur3HashAlgorithm {
	ha := &Murmur3HashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm, values lower than 1 are raised to 1
//   - tableSize is the number of buckets the index will address
func (M *Murmur3HashAlgorithm) SetTableSize(tableSize int64) {
	M.tableSize = max(1, tableSize)
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (M *Murmur3HashAlgorithm) HashFunc1(key string) int64 {
	h := int64(murmur3.Sum32([]byte(key)))
	return h % M.tableSize
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (M *Murmur3HashAlgorithm) GetTableSize() int64 {
	return M.tableSize
}
