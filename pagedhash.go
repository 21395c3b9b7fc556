package pagedhash

import (
	"fmt"

	"github.com/iur1nott/pagedhash/errs"
	"github.com/iur1nott/pagedhash/hashfunc"
	"github.com/iur1nott/pagedhash/internal/index"
	"github.com/iur1nott/pagedhash/internal/model"
	"go.uber.org/zap"
)

// Record - One key/value unit stored in a page
type Record = model.Record

// Page - An ordered, size bounded container of records
type Page = model.Page

// Pointer - Addresses one record slot by page number and offset within the page
type Pointer = model.Pointer

// Entry - A key together with the slot it was read from or points at
type Entry = model.Entry

// IndexResult - Outcome of a lookup through the hash index
type IndexResult = index.Result

// State - Where a Table is in its lifecycle, Empty -> Loaded -> Paginated -> Indexed
type State int

const (
	// Empty - No records loaded yet
	Empty State = iota
	// Loaded - Records loaded, no valid pages
	Loaded
	// Paginated - Pages partition the records, no index
	Paginated
	// Indexed - Pages partition the records and the hash index is built over them
	Indexed
)

// String - Name of the state
func (S State) String() string {
	switch S {
	case Empty:
		return "Empty"
	case Loaded:
		return "Loaded"
	case Paginated:
		return "Paginated"
	case Indexed:
		return "Indexed"
	default:
		return fmt.Sprintf("State(%d)", int(S))
	}
}

// TableConf - Is a struct to be passed in the call to NewTable
//   - Name is the name of the table, it can not be empty
//   - HashAlgorithm is an optional custom hash algorithm for the index, nil gives the char sum reference algorithm.
//     The table takes ownership of the instance and resizes it on every BuildIndex, give each table its own instance
//   - Logger is an optional logger, nil gives a no-op logger
type TableConf struct {
	Name          string
	HashAlgorithm hashfunc.HashAlgorithm
	Logger        *zap.Logger
}

// ScanResult - Outcome of a table scan
//   - Key is the key searched for
//   - Found is true if a record with the key was met
//   - Record is the first matching record, zero value if not found
//   - Location is the slot of the matching record, zero value if not found
//   - PagesRead is the number of pages visited, a page is charged in full as soon as it is visited
//   - RecordsRead lists every record examined, in order, up to and including the match
type ScanResult struct {
	Key         string
	Found       bool
	Record      Record
	Location    Pointer
	PagesRead   int64
	RecordsRead []Entry
}

// PageInfo - Summary of one page, enough for listing pages before drilling down with Table.Page
//   - Full is true if the page's occupied bytes reached the page byte budget
type PageInfo struct {
	PageNumber    int64
	RecordCount   int
	OccupiedBytes int64
	Full          bool
}

// BuildStat - Statistics from a built table
//   - PageCount is the number of data pages
//   - PageByteBudget is the budget the pages were packed with
//   - Stat holds the index statistics (NR, NB, FR, collisions, overflow and their rates)
type BuildStat struct {
	PageCount      int64
	PageByteBudget int64
	index.Stat
}

// Table - Owns the loaded records, the pages they are packed into and the hash index over those pages.
// It exposes the two access paths, TableScan and LookupViaIndex, both charging their cost in pages read.
// A Table is meant for single threaded use, wrap it in a SyncTable to share it between goroutines.
type Table struct {
	name           string
	logger         *zap.Logger
	records        []Record
	pages          []Page
	pageByteBudget int64
	index          *index.HashIndex
	state          State
}

// NewTable - Returns a new empty table.
//   - conf is a TableConf struct holding name, optional hash algorithm and optional logger
//
// It returns:
//   - table is a pointer to a Table struct in state Empty
//   - err is of type InvalidConfiguration if the name is empty
func NewTable(conf TableConf) (table *Table, err error) {
	if conf.Name == "" {
		err = errs.InvalidConfiguration{Msg: "name can not be empty"}
		return
	}

	logger := conf.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("table", conf.Name))

	table = &Table{
		name:    conf.Name,
		logger:  logger,
		records: make([]Record, 0),
		index:   index.NewHashIndex(conf.HashAlgorithm, logger),
		state:   Empty,
	}

	return
}

// BuildFromKeys - Creates a table, loads keys, paginates and builds the index in one go.
//   - keys are raw key lines, blank ones are dropped
//   - conf is a TableConf struct, see NewTable
//   - pageByteBudget is the max number of serialized bytes per page, must be higher than 0 (zero)
//   - loadFactor is the target max entries per bucket, must be higher than 0 (zero)
//
// It returns:
//   - table is a pointer to a Table struct in state Indexed
//   - buildStat is a BuildStat struct with page and index statistics
//   - err is of type InvalidConfiguration for bad parameters, or a standard error if indexing failed
func BuildFromKeys(keys []string, conf TableConf, pageByteBudget, loadFactor int64) (
	table *Table,
	buildStat BuildStat,
	err error,
) {
	table, err = NewTable(conf)
	if err != nil {
		return
	}

	table.Load(keys)

	err = table.Paginate(pageByteBudget)
	if err != nil {
		return
	}

	err = table.BuildIndex(loadFactor)
	if err != nil {
		return
	}

	buildStat, err = table.Stat(false)

	return
}
