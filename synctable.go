package pagedhash

import (
	"io"

	"github.com/sasha-s/go-deadlock"
)

// SyncTable - Wraps a Table so it can be shared between goroutines. Lookups run under a read lock,
// everything that changes the table runs under the write lock.
type SyncTable struct {
	latch deadlock.RWMutex
	table *Table
}

// NewSyncTable - Returns a pointer to a new SyncTable guarding table.
// The table must not be used directly afterwards.
func NewSyncTable(table *Table) *SyncTable {
	return &SyncTable{table: table}
}

// Load - See Table.Load
func (S *SyncTable) Load(keys []string) {
	S.latch.Lock()
	defer S.latch.Unlock()
	S.table.Load(keys)
}

// LoadFrom - See Table.LoadFrom
func (S *SyncTable) LoadFrom(r io.Reader) error {
	S.latch.Lock()
	defer S.latch.Unlock()
	return S.table.LoadFrom(r)
}

// Paginate - See Table.Paginate
func (S *SyncTable) Paginate(pageByteBudget int64) error {
	S.latch.Lock()
	defer S.latch.Unlock()
	return S.table.Paginate(pageByteBudget)
}

// BuildIndex - See Table.BuildIndex
func (S *SyncTable) BuildIndex(loadFactor int64) error {
	S.latch.Lock()
	defer S.latch.Unlock()
	return S.table.BuildIndex(loadFactor)
}

// TableScan - See Table.TableScan
func (S *SyncTable) TableScan(key string) (ScanResult, error) {
	S.latch.RLock()
	defer S.latch.RUnlock()
	return S.table.TableScan(key)
}

// LookupViaIndex - See Table.LookupViaIndex
func (S *SyncTable) LookupViaIndex(key string) (IndexResult, error) {
	S.latch.RLock()
	defer S.latch.RUnlock()
	return S.table.LookupViaIndex(key)
}

// Stat - See Table.Stat
func (S *SyncTable) Stat(includeDistribution bool) (BuildStat, error) {
	S.latch.RLock()
	defer S.latch.RUnlock()
	return S.table.Stat(includeDistribution)
}

// BucketChain - See Table.BucketChain
func (S *SyncTable) BucketChain(bucketNo int64) ([][]Entry, error) {
	S.latch.RLock()
	defer S.latch.RUnlock()
	return S.table.BucketChain(bucketNo)
}

// Pages - See Table.Pages
func (S *SyncTable) Pages() []PageInfo {
	S.latch.RLock()
	defer S.latch.RUnlock()
	return S.table.Pages()
}

// Page - See Table.Page
func (S *SyncTable) Page(pageNumber int64) (Page, error) {
	S.latch.RLock()
	defer S.latch.RUnlock()
	return S.table.Page(pageNumber)
}

// State - See Table.State
func (S *SyncTable) State() State {
	S.latch.RLock()
	defer S.latch.RUnlock()
	return S.table.State()
}
