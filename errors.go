package pagedhash

import "github.com/iur1nott/pagedhash/errs"

// InvalidConfiguration - A configuration value (page byte budget, load factor, name) was rejected before any state was touched
type InvalidConfiguration = errs.InvalidConfiguration

// IndexNotBuilt - An index lookup was attempted before BuildIndex succeeded
type IndexNotBuilt = errs.IndexNotBuilt

// NotPaginated - An operation that needs pages was attempted before Paginate succeeded
type NotPaginated = errs.NotPaginated

// NoPageFound - A page number outside the table's pages was asked for
type NoPageFound = errs.NoPageFound

// TableSizeMismatch - The hash algorithm was resized after BuildIndex, for instance by building another table with it
type TableSizeMismatch = errs.TableSizeMismatch

// NoBucketFound - A bucket number outside the index's buckets was asked for
type NoBucketFound = errs.NoBucketFound
