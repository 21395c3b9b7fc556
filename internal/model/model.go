package model

import (
	"fmt"
	"strings"

	"github.com/iur1nott/pagedhash/internal/conf"
)

// Record - Represents one key/value unit stored in a page. A record is immutable once created.
// The key must not contain the record delimiter, the payload may.
type Record struct {
	Key     string
	Payload string
}

// NewRecord - Returns a record where the payload is the key itself
func NewRecord(key string) Record {
	return Record{Key: key, Payload: key}
}

// NewRecordWithPayload - Returns a record with an explicit payload
func NewRecordWithPayload(key, payload string) Record {
	return Record{Key: key, Payload: payload}
}

// Serialize - Returns the fixed serialized form key|payload
func (R Record) Serialize() string {
	return R.Key + conf.RecordDelimiter + R.Payload
}

// Size - Returns the number of bytes of the serialized form, encoded as UTF-8
func (R Record) Size() int64 {
	return int64(len(R.Key) + len(conf.RecordDelimiter) + len(R.Payload))
}

// String - Readable form of the record
func (R Record) String() string {
	return fmt.Sprintf("Record(key='%s', payload='%s')", R.Key, R.Payload)
}

// Deserialize - Rebuilds a record from its serialized form by splitting at the first delimiter
func Deserialize(serialized string) (record Record, err error) {
	key, payload, found := strings.Cut(serialized, conf.RecordDelimiter)
	if !found {
		err = fmt.Errorf("serialized record has no '%s' delimiter: %q", conf.RecordDelimiter, serialized)
		return
	}

	record = Record{Key: key, Payload: payload}

	return
}

// Page - Represents an ordered, size bounded container of records
//   - PageNumber is the sequential number assigned when paginating, equal to its position among pages
//   - Records are kept in insertion order
//   - OccupiedBytes is always the sum of the serialized sizes of Records
type Page struct {
	PageNumber    int64
	Records       []Record
	OccupiedBytes int64
}

// NewPage - Returns a new empty page
func NewPage(pageNumber int64) Page {
	return Page{PageNumber: pageNumber, Records: make([]Record, 0)}
}

// Append - Adds a record at the end of the page and updates the occupied bytes
func (P *Page) Append(record Record) {
	P.Records = append(P.Records, record)
	P.OccupiedBytes += record.Size()
}

// Len - Returns number of records in the page
func (P Page) Len() int {
	return len(P.Records)
}

// IsFull - Returns true if the page has reached the given byte budget
func (P Page) IsFull(pageByteBudget int64) bool {
	return P.OccupiedBytes >= pageByteBudget
}

// String - Readable form of the page
func (P Page) String() string {
	return fmt.Sprintf("Page %d with %d records (%d bytes)", P.PageNumber, len(P.Records), P.OccupiedBytes)
}

// Pointer - Addresses one record slot, by page number and offset within the page
type Pointer struct {
	PageNumber int64
	Offset     int64
}

// Entry - Represents one index entry, the key it was hashed from together with the slot it points at
type Entry struct {
	Key     string
	Pointer Pointer
}
