package errs

// InvalidConfiguration - Custom error to inform that a configuration value (page byte budget, load factor, name etc.)
// was rejected before any state was touched
type InvalidConfiguration struct {
	Msg string
}

// Error - Used to notify that a configuration value is invalid
func (E InvalidConfiguration) Error() string {
	if E.Msg == "" {
		return "invalid configuration"
	}
	return E.Msg
}

// Is - Matches any InvalidConfiguration regardless of message
func (E InvalidConfiguration) Is(target error) bool {
	_, ok := target.(InvalidConfiguration)
	return ok
}

// IndexNotBuilt - Custom error to inform that an index lookup was attempted before the index was built
type IndexNotBuilt struct {
	Msg string
}

// Error - Used to notify that the index is not built
func (E IndexNotBuilt) Error() string {
	if E.Msg == "" {
		return "index not built"
	}
	return E.Msg
}

// Is - Matches any IndexNotBuilt regardless of message
func (E IndexNotBuilt) Is(target error) bool {
	_, ok := target.(IndexNotBuilt)
	return ok
}

// NotPaginated - Custom error to inform that an operation needs pages but the table has not been paginated
type NotPaginated struct {
	Msg string
}

// Error - Used to notify that the table is not paginated
func (E NotPaginated) Error() string {
	if E.Msg == "" {
		return "table not paginated"
	}
	return E.Msg
}

// Is - Matches any NotPaginated regardless of message
func (E NotPaginated) Is(target error) bool {
	_, ok := target.(NotPaginated)
	return ok
}

// NoPageFound - Custom error to inform that a page number is outside the table's pages
type NoPageFound struct {
	Msg string
}

// Error - Used to notify that no page was found
func (E NoPageFound) Error() string {
	if E.Msg == "" {
		return "no page found"
	}
	return E.Msg
}

// Is - Matches any NoPageFound regardless of message
func (E NoPageFound) Is(target error) bool {
	_, ok := target.(NoPageFound)
	return ok
}

// TableSizeMismatch - Custom error to inform that the hash algorithm no longer addresses the buckets the index
// was built with, typically because the same algorithm instance was used to build another index
type TableSizeMismatch struct {
	Msg string
}

// Error - Used to notify that the hash algorithm's table size changed after the index was built
func (E TableSizeMismatch) Error() string {
	if E.Msg == "" {
		return "hash algorithm table size does not match the index"
	}
	return E.Msg
}

// Is - Matches any TableSizeMismatch regardless of message
func (E TableSizeMismatch) Is(target error) bool {
	_, ok := target.(TableSizeMismatch)
	return ok
}

// NoBucketFound - Custom error to inform that a bucket number is outside the index's buckets
type NoBucketFound struct {
	Msg string
}

// Error - Used to notify that no bucket was found
func (E NoBucketFound) Error() string {
	if E.Msg == "" {
		return "no bucket found"
	}
	return E.Msg
}

// Is - Matches any NoBucketFound regardless of message
func (E NoBucketFound) Is(target error) bool {
	_, ok := target.(NoBucketFound)
	return ok
}
