package pagedhash

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/iur1nott/pagedhash/errs"
	"github.com/iur1nott/pagedhash/internal/model"
	"github.com/iur1nott/pagedhash/internal/paging"
	"github.com/iur1nott/pagedhash/internal/utils"
	"go.uber.org/zap"
)

// Load - Appends one record per key, payload being the key itself. Keys are trimmed and blank ones dropped.
// Pages and index built earlier no longer cover all records and are discarded, the table goes to state Loaded.
//   - keys are raw key lines
func (T *Table) Load(keys []string) {
	cleaned := utils.CleanKeys(keys)
	for _, key := range cleaned {
		T.records = append(T.records, model.NewRecord(key))
	}

	T.pages = nil
	T.pageByteBudget = 0
	T.state = Loaded

	T.logger.Debug("records loaded",
		zap.Int("lines", len(keys)),
		zap.Int("loaded", len(cleaned)),
		zap.Int("records", len(T.records)))
}

// LoadFrom - Reads newline separated keys from r and loads them as Load does.
// Nothing is loaded if reading fails.
//   - r is the source of key lines, for instance an uploaded file
func (T *Table) LoadFrom(r io.Reader) (err error) {
	lines := make([]string, 0)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err = scanner.Err(); err != nil {
		err = fmt.Errorf("error while reading keys: %w", err)
		return
	}

	T.Load(lines)

	return
}

// Paginate - Packs the records into pages of at most pageByteBudget bytes, replacing any earlier pages.
// An index built over earlier pages is discarded. On error nothing changes.
//   - pageByteBudget is the max number of serialized bytes per page, must be higher than 0 (zero)
//
// It returns:
//   - err is of type InvalidConfiguration if the budget is not positive
func (T *Table) Paginate(pageByteBudget int64) (err error) {
	pages, err := paging.Paginate(T.records, pageByteBudget)
	if err != nil {
		return
	}

	T.pages = pages
	T.pageByteBudget = pageByteBudget
	T.state = Paginated

	T.logger.Debug("records paginated",
		zap.Int("records", len(T.records)),
		zap.Int64("pageByteBudget", pageByteBudget),
		zap.Int("pages", len(pages)))

	return
}

// BuildIndex - Builds the static hash index over the current pages. Calling it again rebuilds from scratch.
// Callers sharing a Table must serialize calls to BuildIndex.
//   - loadFactor is the target max entries per bucket, must be higher than 0 (zero)
//
// It returns:
//   - err is of type NotPaginated before Paginate, of type InvalidConfiguration for a bad load factor, or a standard error if indexing failed
func (T *Table) BuildIndex(loadFactor int64) (err error) {
	if T.state != Paginated && T.state != Indexed {
		err = errs.NotPaginated{Msg: fmt.Sprintf("index can not be built in state %s, paginate first", T.state)}
		return
	}

	err = T.index.Build(T.pages, int64(len(T.records)), loadFactor)
	if err != nil {
		return
	}

	T.state = Indexed

	return
}

// TableScan - Searches for key by reading pages in order. Each visited page is charged in full, even when the
// key is found part way through it.
//   - key is the identifier of a record
//
// It returns:
//   - result holds the outcome and its cost, a missing key is not an error
//   - err is of type NotPaginated before Paginate
func (T *Table) TableScan(key string) (result ScanResult, err error) {
	if T.state != Paginated && T.state != Indexed {
		err = errs.NotPaginated{Msg: fmt.Sprintf("table can not be scanned in state %s, paginate first", T.state)}
		return
	}

	result.Key = key
	result.RecordsRead = make([]Entry, 0)

	for _, page := range T.pages {
		result.PagesRead++
		for offset, record := range page.Records {
			pointer := Pointer{PageNumber: page.PageNumber, Offset: int64(offset)}
			result.RecordsRead = append(result.RecordsRead, Entry{Key: record.Key, Pointer: pointer})
			if record.Key == key {
				result.Found = true
				result.Record = record
				result.Location = pointer
				return
			}
		}
	}

	return
}

// LookupViaIndex - Searches for key through the hash index
//   - key is the identifier of a record
//
// It returns:
//   - result holds the outcome, the bucket and its chain length, and the cost; a missing key is not an error
//   - err is of type IndexNotBuilt before BuildIndex, or of type TableSizeMismatch if the hash algorithm was resized
//     by another table since BuildIndex
func (T *Table) LookupViaIndex(key string) (result IndexResult, err error) {
	if T.state != Indexed {
		err = errs.IndexNotBuilt{Msg: fmt.Sprintf("index lookup not possible in state %s, build the index first", T.state)}
		return
	}

	return T.index.Lookup(key)
}

// Stat - Returns page and index statistics.
//   - includeDistribution set to true includes the number of entries per bucket
//
// It returns:
//   - buildStat is a BuildStat struct
//   - err is of type IndexNotBuilt before BuildIndex
func (T *Table) Stat(includeDistribution bool) (buildStat BuildStat, err error) {
	if T.state != Indexed {
		err = errs.IndexNotBuilt{Msg: fmt.Sprintf("no statistics in state %s, build the index first", T.state)}
		return
	}

	buildStat = BuildStat{
		PageCount:      int64(len(T.pages)),
		PageByteBudget: T.pageByteBudget,
		Stat:           T.index.Stat(includeDistribution),
	}

	return
}

// BucketChain - Returns a copy of a bucket's chain, segment 0 (zero) being the head bucket and every following
// segment an overflow bucket
//   - bucketNo is the bucket's number, 0 (zero) up to BucketCount - 1
//
// It returns:
//   - segments holds the entries of each segment in insertion order
//   - err is of type IndexNotBuilt before BuildIndex, or of type NoBucketFound if there is no such bucket
func (T *Table) BucketChain(bucketNo int64) (segments [][]Entry, err error) {
	if T.state != Indexed {
		err = errs.IndexNotBuilt{Msg: fmt.Sprintf("no buckets in state %s, build the index first", T.state)}
		return
	}

	b, err := T.index.Bucket(bucketNo)
	if err != nil {
		return
	}

	iter := b.Segments()
	for iter.HasNext() {
		entries, _ := iter.Next()
		segments = append(segments, append([]Entry(nil), entries...))
	}

	return
}

// Pages - Returns a summary per page, empty before Paginate
func (T *Table) Pages() (pageInfo []PageInfo) {
	pageInfo = make([]PageInfo, len(T.pages))
	for i, p := range T.pages {
		pageInfo[i] = PageInfo{
			PageNumber:    p.PageNumber,
			RecordCount:   p.Len(),
			OccupiedBytes: p.OccupiedBytes,
			Full:          p.IsFull(T.pageByteBudget),
		}
	}

	return
}

// Page - Returns a copy of the page with the given number
//   - pageNumber is the page's number, 0 (zero) up to NumberOfPages - 1
//
// It returns:
//   - page is the page with its records
//   - err is of type NoPageFound if there is no such page
func (T *Table) Page(pageNumber int64) (page Page, err error) {
	if pageNumber < 0 || pageNumber >= int64(len(T.pages)) {
		err = errs.NoPageFound{Msg: fmt.Sprintf("no page %d, table has %d pages", pageNumber, len(T.pages))}
		return
	}

	page = T.pages[pageNumber]
	page.Records = append([]Record(nil), page.Records...)

	return
}

// Records - Returns a copy of all loaded records in load order
func (T *Table) Records() []Record {
	return append([]Record(nil), T.records...)
}

// NumberOfPages - Returns the number of pages, 0 (zero) before Paginate
func (T *Table) NumberOfPages() int {
	return len(T.pages)
}

// State - Returns the table's current state
func (T *Table) State() State {
	return T.state
}

// Name - Returns the table's name
func (T *Table) Name() string {
	return T.name
}

// String - Readable form of the table
func (T *Table) String() string {
	return fmt.Sprintf("Table(name='%s', records=%d, pages=%d, pageByteBudget=%d bytes, state=%s)",
		T.name, len(T.records), len(T.pages), T.pageByteBudget, T.state)
}
