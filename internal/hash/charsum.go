package hash

// CharSumHashAlgorithm - The reference bucket selection algorithm: the sum of the key's Unicode code points
// modulo the table size. It is deliberately weak, anagrams and keys with similar letters pile up in the same
// buckets, which makes skew and overflow easy to observe.
type CharSumHashAlgorithm struct {
	tableSize int64
}

// NewCharSumHashAlgorithm - Returns a pointer to a new CharSumHashAlgorithm instance
func NewCharSumHashAlgorithm(tableSize int64) *CharSumHashAlgorithm {
	ha := &CharSumHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm, values lower than 1 are raised to 1
//   - tableSize is the number of buckets the index will address
func (C *CharSumHashAlgorithm) SetTableSize(tableSize int64) {
	C.tableSize = max(1, tableSize)
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (C *CharSumHashAlgorithm) HashFunc1(key string) int64 {
	var sum int64
	for _, r := range key {
		sum += int64(r)
	}
	return sum % C.tableSize
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (C *CharSumHashAlgorithm) GetTableSize() int64 {
	return C.tableSize
}
