package index

import (
	"fmt"

	"github.com/iur1nott/pagedhash/errs"
	"github.com/iur1nott/pagedhash/hashfunc"
	"github.com/iur1nott/pagedhash/internal/bucket"
	"github.com/iur1nott/pagedhash/internal/hash"
	"github.com/iur1nott/pagedhash/internal/model"
	"github.com/iur1nott/pagedhash/internal/utils"
	"go.uber.org/zap"
)

// Result - Outcome of an index lookup
//   - Key is the key searched for
//   - Found is true if the key was resolved to a record
//   - Record is the resolved record, zero value if not found
//   - Location is the slot the record was resolved from, zero value if not found
//   - BucketNo is the bucket the key hashes to
//   - ChainLength is the number of entries in that bucket's chain
//   - SegmentsVisited is the number of bucket segments examined
//   - PagesRead is SegmentsVisited plus one data page if an entry was found in the chain
type Result struct {
	Key             string
	Found           bool
	Record          model.Record
	Location        model.Pointer
	BucketNo        int64
	ChainLength     int64
	SegmentsVisited int64
	PagesRead       int64
}

// Stat - Statistics on the overall usage and distribution over buckets
//   - TotalRecords is the number of records indexed (NR)
//   - LoadFactor is the target max entries per bucket (FR), also the capacity of each bucket segment
//   - BucketsNeeded is the bucket count computed from TotalRecords and LoadFactor
//   - BucketCount is the number of buckets actually allocated (NB), as reported by the hash algorithm
//   - TotalCollisions is the sum of collisions over all buckets
//   - CollisionRate is TotalCollisions / TotalRecords
//   - TotalOverflowSegments is the number of overflow segments over all buckets
//   - BucketsWithOverflow is the number of buckets having at least one overflow segment
//   - BucketsWithOverflowRate is BucketsWithOverflow / BucketCount
//   - OverflowEntries is the number of entries stored outside their head segment
//   - OverflowEntryRate is OverflowEntries / TotalRecords
//   - BucketDistribution is the number of entries per bucket, nil unless asked for
type Stat struct {
	TotalRecords            int64
	LoadFactor              int64
	BucketsNeeded           int64
	BucketCount             int64
	TotalCollisions         int64
	CollisionRate           float64
	TotalOverflowSegments   int64
	BucketsWithOverflow     int64
	BucketsWithOverflowRate float64
	OverflowEntries         int64
	OverflowEntryRate       float64
	BucketDistribution      []int64
}

// HashIndex - A static hash index over paginated records. The bucket count is fixed when built and never
// changes, collisions are handled by chaining overflow segments to the bucket.
// The hash algorithm is owned by the index once passed to NewHashIndex, it must not be shared with another index.
// A HashIndex is not safe for concurrent use.
type HashIndex struct {
	hashAlgorithm hashfunc.HashAlgorithm
	logger        *zap.Logger
	pages         []model.Page
	buckets       []*bucket.Bucket
	totalRecords  int64
	loadFactor    int64
	bucketsNeeded int64
	built         bool
}

// NewHashIndex - Returns a pointer to a new, not yet built, HashIndex
//   - hashAlgorithm is an optional custom hash algorithm, nil gives the char sum reference algorithm
//   - logger is an optional logger, nil gives a no-op logger
func NewHashIndex(hashAlgorithm hashfunc.HashAlgorithm, logger *zap.Logger) *HashIndex {
	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewCharSumHashAlgorithm(1)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &HashIndex{hashAlgorithm: hashAlgorithm, logger: logger}
}

// Build - Builds the index from scratch over the given pages. Any earlier build is thrown away, and if the
// build fails the earlier build is kept as is.
//   - pages are the paginated records, they must not change while the index is in use
//   - totalRecords is the number of records held by pages, used to size the bucket count
//   - loadFactor is the target max entries per bucket, must be higher than 0 (zero)
//
// It returns:
//   - err is of type errs.InvalidConfiguration for a bad load factor, or a standard error if the hash
//     algorithm produced a bucket number out of range
func (H *HashIndex) Build(pages []model.Page, totalRecords, loadFactor int64) (err error) {
	bucketsNeeded, err := hash.BucketCount(totalRecords, loadFactor)
	if err != nil {
		return
	}

	H.hashAlgorithm.SetTableSize(bucketsNeeded)
	defer func() {
		// A failed rebuild must leave the algorithm hashing for the buckets still in use
		if err != nil && H.built {
			H.hashAlgorithm.SetTableSize(H.bucketsNeeded)
		}
	}()
	tableSize := H.hashAlgorithm.GetTableSize()
	if tableSize <= 0 {
		err = fmt.Errorf("hash algorithm reports a table size of %d, it must be higher than 0 (zero)", tableSize)
		return
	}

	buckets := make([]*bucket.Bucket, tableSize)
	for i := range buckets {
		buckets[i] = bucket.NewBucket(loadFactor)
	}

	for _, page := range pages {
		for offset, record := range page.Records {
			var bucketNo int64
			bucketNo, err = H.bucketNo(record.Key, tableSize)
			if err != nil {
				err = fmt.Errorf("error while indexing record in page %d offset %d: %w", page.PageNumber, offset, err)
				return
			}
			buckets[bucketNo].Insert(model.Entry{
				Key:     record.Key,
				Pointer: model.Pointer{PageNumber: page.PageNumber, Offset: int64(offset)},
			})
		}
	}

	H.pages = pages
	H.buckets = buckets
	H.totalRecords = totalRecords
	H.loadFactor = loadFactor
	H.bucketsNeeded = bucketsNeeded
	H.built = true

	H.logger.Debug("hash index built",
		zap.Int64("records", totalRecords),
		zap.Int64("loadFactor", loadFactor),
		zap.Int64("bucketsNeeded", bucketsNeeded),
		zap.Int64("buckets", tableSize),
		zap.Int64("collisions", H.totalCollisions()))

	return
}

// GetBucketNo - Returns which bucket number the given key results in
//   - key is the identifier of a record
//
// It returns:
//   - bucketNo is the bucket the key hashes to
//   - err is of type errs.IndexNotBuilt before a successful Build, of type errs.TableSizeMismatch if the hash
//     algorithm was resized after Build, or a standard error if the hash algorithm produced a bucket number out of range
func (H *HashIndex) GetBucketNo(key string) (bucketNo int64, err error) {
	if !H.built {
		err = errs.IndexNotBuilt{}
		return
	}

	bucketCount := int64(len(H.buckets))
	if tableSize := H.hashAlgorithm.GetTableSize(); tableSize != bucketCount {
		err = errs.TableSizeMismatch{Msg: fmt.Sprintf("hash algorithm table size is %d but the index was built with %d buckets, rebuild the index", tableSize, bucketCount)}
		return
	}

	return H.bucketNo(key, bucketCount)
}

// Lookup - Finds the record for key through its bucket chain and charges the cost in pages read.
// Each bucket segment examined costs one page, an entry found in the chain costs one more page for fetching
// the data page. If the fetched slot does not hold the key, or does not exist, the lookup reports not found
// but keeps the data page charge.
//   - key is the identifier of a record
//
// It returns:
//   - result holds the outcome and its cost, a missing key is not an error
//   - err is of type errs.IndexNotBuilt before a successful Build, of type errs.TableSizeMismatch if the hash
//     algorithm was resized after Build, or a standard error if the hash algorithm produced a bucket number out of range
func (H *HashIndex) Lookup(key string) (result Result, err error) {
	result.Key = key

	result.BucketNo, err = H.GetBucketNo(key)
	if err != nil {
		return
	}

	b := H.buckets[result.BucketNo]
	result.ChainLength = b.Len()

	entry, visited, found := b.Find(key)
	result.SegmentsVisited = visited
	result.PagesRead = visited
	if !found {
		return
	}

	result.PagesRead++
	record, ok := H.resolve(entry.Pointer)
	if !ok || record.Key != key {
		H.logger.Warn("index entry does not resolve to its key",
			zap.String("key", key),
			zap.Int64("page", entry.Pointer.PageNumber),
			zap.Int64("offset", entry.Pointer.Offset))
		return
	}

	result.Found = true
	result.Record = record
	result.Location = entry.Pointer

	return
}

// Stat - Walks through all buckets and produces a Stat struct.
//   - includeDistribution set to true includes a slice of length BucketCount with number of entries per bucket, false leaves Stat.BucketDistribution nil.
func (H *HashIndex) Stat(includeDistribution bool) (stat Stat) {
	stat.TotalRecords = H.totalRecords
	stat.LoadFactor = H.loadFactor
	stat.BucketsNeeded = H.bucketsNeeded
	stat.BucketCount = int64(len(H.buckets))

	if includeDistribution {
		stat.BucketDistribution = make([]int64, len(H.buckets))
	}

	for i, b := range H.buckets {
		stat.TotalCollisions += b.CollisionCount()
		stat.TotalOverflowSegments += b.OverflowSegmentCount()
		stat.OverflowEntries += b.OverflowEntryCount()
		if b.OverflowSegmentCount() > 0 {
			stat.BucketsWithOverflow++
		}
		if includeDistribution {
			stat.BucketDistribution[i] = b.Len()
		}
	}

	stat.CollisionRate = utils.Ratio(stat.TotalCollisions, stat.TotalRecords)
	stat.OverflowEntryRate = utils.Ratio(stat.OverflowEntries, stat.TotalRecords)
	stat.BucketsWithOverflowRate = utils.Ratio(stat.BucketsWithOverflow, stat.BucketCount)

	return
}

// Bucket - Returns the bucket with the given number
//   - bucketNo is the bucket's number, 0 (zero) up to BucketCount - 1
//
// It returns:
//   - b is a pointer to the bucket, it must not be modified
//   - err is of type errs.IndexNotBuilt before a successful Build, or of type errs.NoBucketFound if out of range
func (H *HashIndex) Bucket(bucketNo int64) (b *bucket.Bucket, err error) {
	if !H.built {
		err = errs.IndexNotBuilt{}
		return
	}
	if bucketNo < 0 || bucketNo >= int64(len(H.buckets)) {
		err = errs.NoBucketFound{Msg: fmt.Sprintf("no bucket %d, index has %d buckets", bucketNo, len(H.buckets))}
		return
	}

	b = H.buckets[bucketNo]

	return
}

// bucketNo - Hashes key and checks the result against the table size
func (H *HashIndex) bucketNo(key string, tableSize int64) (bucketNo int64, err error) {
	bucketNo = H.hashAlgorithm.HashFunc1(key)
	if bucketNo < 0 || bucketNo >= tableSize {
		err = fmt.Errorf("received bucket number %d from hash algorithm is outside permitted range [0, %d)", bucketNo, tableSize)
		return
	}

	return
}

// resolve - Fetches the record a pointer addresses
func (H *HashIndex) resolve(pointer model.Pointer) (record model.Record, ok bool) {
	if pointer.PageNumber < 0 || pointer.PageNumber >= int64(len(H.pages)) {
		return
	}
	page := H.pages[pointer.PageNumber]
	if pointer.Offset < 0 || pointer.Offset >= int64(len(page.Records)) {
		return
	}

	return page.Records[pointer.Offset], true
}

// totalCollisions - Sums collisions over all buckets
func (H *HashIndex) totalCollisions() (collisions int64) {
	for _, b := range H.buckets {
		collisions += b.CollisionCount()
	}

	return
}
