package hashfunc

// HashAlgorithm - Interface that permits a caller of the Table to supply a custom bucket
// selection algorithm suited for its particular distribution of keys.
// An instance belongs to the one Table it was given to. Sharing it between tables makes lookups on the table built
// first fail with TableSizeMismatch, since every build resizes the instance.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called every time an index is built, with the number of buckets computed from the record count
	// and the load factor. Any table size the instance already had is overwritten.
	//   - tableSize is the number of buckets the index will address
	SetTableSize(tableSize int64)

	// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in an error down stream.
	HashFunc1(key string) int64

	// GetTableSize - Returns the table size the implemented hash function is supporting
	// It is very important that this function return the actual table size and not just the table size given
	// in a call to SetTableSize. If the implementation rounds the size (to a power of 2, a prime etc.) that has to
	// be reflected here since the index allocates exactly this many buckets.
	GetTableSize() int64
}
