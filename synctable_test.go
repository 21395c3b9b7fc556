//go:build integration

package pagedhash

import (
	"fmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sync"
	"testing"
)

func TestSyncTable(t *testing.T) {
	t.Run("serves concurrent lookups on a built table", func(t *testing.T) {
		// Prepare
		keys := make([]string, 100)
		for i := range keys {
			keys[i] = fmt.Sprintf("key-%d", i)
		}
		st := NewSyncTable(newTestTable(t))
		st.Load(keys)
		require.NoError(t, st.Paginate(64), "paginates")
		require.NoError(t, st.BuildIndex(4), "builds index")

		// Execute
		var wg sync.WaitGroup
		misses := make(chan string, len(keys))
		for _, k := range keys {
			wg.Add(1)
			go func(key string) {
				defer wg.Done()
				scan, err1 := st.TableScan(key)
				idx, err2 := st.LookupViaIndex(key)
				if err1 != nil || err2 != nil || !scan.Found || !idx.Found {
					misses <- key
				}
			}(k)
		}
		wg.Wait()
		close(misses)

		// Check
		assert.Empty(t, misses, "every key found by both access paths")
		assert.Equal(t, Indexed, st.State(), "indexed")
		stat, err := st.Stat(false)
		assert.NoError(t, err, "stat")
		assert.Equal(t, int64(100), stat.TotalRecords, "NR")
		assert.Equal(t, int64(len(st.Pages())), stat.PageCount, "page count")
		_, err = st.Page(0)
		assert.NoError(t, err, "page 0")
	})

	t.Run("rebuilds while readers run", func(t *testing.T) {
		// Prepare
		st := NewSyncTable(newTestTable(t, "ana", "bruno", "carla"))
		require.NoError(t, st.Paginate(11), "paginates")
		require.NoError(t, st.BuildIndex(1), "builds index")

		// Execute
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				_ = st.BuildIndex(2)
			}()
			go func() {
				defer wg.Done()
				_, _ = st.LookupViaIndex("bruno")
			}()
		}
		wg.Wait()

		// Check
		res, err := st.LookupViaIndex("bruno")
		assert.NoError(t, err, "looks up")
		assert.True(t, res.Found, "found")
	})
}
