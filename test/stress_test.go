//go:build stress

package test

import (
	"bufio"
	"fmt"
	"github.com/iur1nott/pagedhash"
	"github.com/iur1nott/pagedhash/hashfunc"
	"github.com/iur1nott/pagedhash/internal/hash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

const letters = "abcdefghijklmnopqrstuvwxyzáéíóúãõç"

func createAndStoreTestdata(rnd *rand.Rand, amount int, fileName string) (keys []string, err error) {
	f, err := os.OpenFile(fileName, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	alphabet := []rune(letters)
	w := bufio.NewWriter(f)
	keys = make([]string, 0, amount)
	for i := 0; i < amount; i++ {
		n := 1 + rnd.Intn(30)
		key := make([]rune, n)
		for j := range key {
			key[j] = alphabet[rnd.Intn(len(alphabet))]
		}
		keys = append(keys, string(key))
		if _, err = fmt.Fprintln(w, string(key)); err != nil {
			return
		}
		// Sprinkle blank lines, they must be dropped
		if i%97 == 0 {
			if _, err = fmt.Fprintln(w, "   "); err != nil {
				return
			}
		}
	}
	err = w.Flush()

	return
}

type TestCaseStressTest struct {
	hashName       string
	hashAlgorithm  hashfunc.HashAlgorithm
	nTestdata      int
	pageByteBudget int64
	loadFactor     int64
}

func TestStress(t *testing.T) {
	t.Run("stress tests for all hash algorithms", func(t *testing.T) {
		// Prepare
		tests := []TestCaseStressTest{
			{hashName: "CharSum", hashAlgorithm: hash.NewCharSumHashAlgorithm(1), nTestdata: 100000, pageByteBudget: 256, loadFactor: 4},
			{hashName: "CRC32", hashAlgorithm: hash.NewCRC32HashAlgorithm(1), nTestdata: 100000, pageByteBudget: 256, loadFactor: 4},
			{hashName: "Murmur3", hashAlgorithm: hash.NewMurmur3HashAlgorithm(1), nTestdata: 100000, pageByteBudget: 40, loadFactor: 2},
		}

		for _, test := range tests {
			t.Run(fmt.Sprintf("keeps page and index invariants for %s", test.hashName), func(t *testing.T) {
				// Prepare test data
				rnd := rand.New(rand.NewSource(123))
				fileName := filepath.Join(t.TempDir(), "testdata.txt")
				keys, err := createAndStoreTestdata(rnd, test.nTestdata, fileName)
				require.NoError(t, err, "create testdata")

				tbl, err := pagedhash.NewTable(pagedhash.TableConf{Name: "stress", HashAlgorithm: test.hashAlgorithm})
				require.NoError(t, err, "create table")

				f, err := os.Open(fileName)
				require.NoError(t, err, "open testdata")
				err = tbl.LoadFrom(f)
				_ = f.Close()
				require.NoError(t, err, "load testdata")

				// Execute
				err = tbl.Paginate(test.pageByteBudget)
				require.NoError(t, err, "paginate")
				err = tbl.BuildIndex(test.loadFactor)
				require.NoError(t, err, "build index")

				// Check partition and budget
				records := tbl.Records()
				assert.Len(t, records, test.nTestdata, "blank lines dropped")
				var position int
				for _, info := range tbl.Pages() {
					page, err := tbl.Page(info.PageNumber)
					require.NoError(t, err, "get page")
					if page.OccupiedBytes > test.pageByteBudget {
						assert.Equal(t, 1, page.Len(), "only a lone oversized record exceeds the budget")
					}
					for _, r := range page.Records {
						if !assert.Equal(t, records[position], r, "pages partition records in order") {
							return
						}
						position++
					}
				}
				assert.Equal(t, len(records), position, "every record in a page")

				// Check statistics
				stat, err := tbl.Stat(true)
				require.NoError(t, err, "get stat")
				expectedBuckets, _ := hash.BucketCount(int64(test.nTestdata), test.loadFactor)
				assert.Equal(t, expectedBuckets, stat.BucketCount, "static bucket count")
				var sum int64
				for _, n := range stat.BucketDistribution {
					sum += n
				}
				assert.Equal(t, int64(test.nTestdata), sum, "one entry per record")

				// Check both access paths agree on a sample
				for i := 0; i < 500; i++ {
					key := keys[rnd.Intn(len(keys))]
					scan, err := tbl.TableScan(key)
					require.NoError(t, err, "scan")
					idx, err := tbl.LookupViaIndex(key)
					require.NoError(t, err, "index lookup")
					assert.True(t, scan.Found, "scan finds %s", key)
					assert.True(t, idx.Found, "index finds %s", key)
					assert.Equal(t, scan.Location, idx.Location, "same first occurrence of %s", key)
					assert.Equal(t, scan.Location.PageNumber+1, scan.PagesRead, "scan cost is page number plus one")
					assert.Equal(t, idx.SegmentsVisited+1, idx.PagesRead, "index cost is segments plus one")
				}
			})
		}
	})
}
