package hash

import (
	"fmt"

	"github.com/iur1nott/pagedhash/errs"
	"github.com/iur1nott/pagedhash/hashfunc"
	"github.com/iur1nott/pagedhash/internal/conf"
)

// BucketCount - Returns the number of buckets for a static hash table, max(1, totalRecords / loadFactor + 1).
//   - totalRecords is the number of records the index will hold, 0 (zero) or more
//   - loadFactor is the target max entries per bucket (FR), must be higher than 0 (zero)
//
// It returns:
//   - bucketCount which is at least 1
//   - err is of type errs.InvalidConfiguration if any argument is out of range
func BucketCount(totalRecords, loadFactor int64) (bucketCount int64, err error) {
	if loadFactor <= 0 {
		err = errs.InvalidConfiguration{Msg: fmt.Sprintf("load factor must be a positive value higher than 0 (zero), got %d", loadFactor)}
		return
	}
	if totalRecords < 0 {
		err = errs.InvalidConfiguration{Msg: fmt.Sprintf("total records can not be negative, got %d", totalRecords)}
		return
	}

	bucketCount = max(1, totalRecords/loadFactor+1)

	return
}

// NewHashAlgorithm - Returns one of the built-in hash algorithms by name, with a table size of 1 until
// the index sets the real one.
//   - name is one of conf.HashCharSum, conf.HashCRC32 or conf.HashMurmur3, empty means conf.HashCharSum
func NewHashAlgorithm(name string) (hashAlgorithm hashfunc.HashAlgorithm, err error) {
	switch name {
	case "", conf.HashCharSum:
		hashAlgorithm = NewCharSumHashAlgorithm(1)
	case conf.HashCRC32:
		hashAlgorithm = NewCRC32HashAlgorithm(1)
	case conf.HashMurmur3:
		hashAlgorithm = NewMurmur3HashAlgorithm(1)
	default:
		err = errs.InvalidConfiguration{Msg: fmt.Sprintf("unknown hash algorithm %q", name)}
	}

	return
}
