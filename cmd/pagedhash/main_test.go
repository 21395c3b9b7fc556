//go:build integration

package main

import (
	"bytes"
	"fmt"
	"github.com/dsnet/golib/memfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	t.Run("builds from a file and reports both access paths", func(t *testing.T) {
		// Prepare
		fileName := filepath.Join(t.TempDir(), "keys.txt")
		err := os.WriteFile(fileName, []byte("ana\nbruno\n\ncarla\n"), 0644)
		assert.NoError(t, err, "writes keys")
		var out bytes.Buffer

		// Execute
		err = run(nil, &out, zaptest.NewLogger(t), options{
			fileName:   fileName,
			pageSize:   11,
			loadFactor: 1,
			hashName:   "charsum",
			find:       []string{"carla", "zzz"},
			scan:       []string{"carla"},
			showPages:  true,
			showDist:   true,
			chain:      -1,
		})

		// Check
		assert.NoError(t, err, "runs")
		s := out.String()
		assert.Contains(t, s, "Page 2", "pages listed")
		assert.Contains(t, s, "Record(key='carla', payload='carla')", "records listed")
		assert.Contains(t, s, "bucket 3 (chain length 1)", "index bucket reported")
		assert.Contains(t, s, "cost 2 page(s)", "index cost")
		assert.Contains(t, s, "cost 3 page(s)", "scan cost")
		assert.Contains(t, s, "not found", "miss reported")
		assert.Contains(t, s, "full", "pages at the budget marked")
		assert.NotContains(t, s, "segment(s)", "no chain asked for")
	})

	t.Run("reads keys from stdin and shows a bucket chain", func(t *testing.T) {
		// Prepare
		stdin := memfile.New(make([]byte, 0))
		for _, key := range []string{"ab", "ba", "abc"} {
			_, err := fmt.Fprintln(stdin, key)
			require.NoError(t, err, "writes key")
		}
		_, err := stdin.Seek(0, io.SeekStart)
		require.NoError(t, err, "rewinds")
		var out bytes.Buffer

		// Execute
		err = run(stdin, &out, zaptest.NewLogger(t), options{
			pageSize:   64,
			loadFactor: 1,
			hashName:   "charsum",
			find:       []string{"ba"},
			chain:      3,
		})

		// Check
		assert.NoError(t, err, "runs")
		s := out.String()
		assert.Contains(t, s, "Bucket 3", "chain shown")
		assert.Contains(t, s, "2 segment(s)", "head and one overflow")
		assert.Contains(t, s, "overflow 1", "overflow segment listed")
		assert.Contains(t, s, "ba -> page 0, record 1", "overflow entry listed")
		assert.Contains(t, s, "bucket 3 (chain length 2)", "index bucket reported")
		assert.Contains(t, s, "cost 3 page(s)", "two segments plus the data page")
	})

	t.Run("fails on a bucket outside the index", func(t *testing.T) {
		// Prepare
		var out bytes.Buffer

		// Execute
		err := run(strings.NewReader("ana\n"), &out, zaptest.NewLogger(t), options{pageSize: 64, loadFactor: 4, chain: 7})

		// Check
		assert.Error(t, err, "no bucket 7")
	})

	t.Run("rejects unknown hash algorithm", func(t *testing.T) {
		// Prepare
		var out bytes.Buffer

		// Execute
		err := run(nil, &out, zaptest.NewLogger(t), options{hashName: "md5", pageSize: 64, loadFactor: 4})

		// Check
		assert.Error(t, err, "unknown hash")
	})

	t.Run("fails on missing file", func(t *testing.T) {
		// Prepare
		var out bytes.Buffer

		// Execute
		err := run(nil, &out, zaptest.NewLogger(t), options{fileName: filepath.Join(t.TempDir(), "none.txt"), pageSize: 64, loadFactor: 4})

		// Check
		assert.Error(t, err, "missing file")
	})
}

func TestSplitKeys(t *testing.T) {
	t.Run("splits and trims", func(t *testing.T) {
		// Execute
		keys := splitKeys(" ana, ,bruno,")

		// Check
		assert.Equal(t, []string{"ana", "bruno"}, keys, "two keys")
	})

	t.Run("empty input gives no keys", func(t *testing.T) {
		// Execute and Check
		assert.Empty(t, splitKeys(""), "no keys")
	})
}
