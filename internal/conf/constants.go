package conf

// DefaultPageByteBudget - Number of bytes a page may hold unless the caller says otherwise
const DefaultPageByteBudget int64 = 64

// DefaultLoadFactor - Target max entries per bucket (FR) unless the caller says otherwise
const DefaultLoadFactor int64 = 4

// RecordDelimiter - Separates key from payload in a serialized record, a key must never contain it
const RecordDelimiter = "|"

// HashCharSum - Name of the reference hash algorithm (sum of code points)
const HashCharSum = "charsum"

// HashCRC32 - Name of the crc32 (IEEE) based hash algorithm
const HashCRC32 = "crc32"

// HashMurmur3 - Name of the murmur3 (32 bit) based hash algorithm
const HashMurmur3 = "murmur3"
