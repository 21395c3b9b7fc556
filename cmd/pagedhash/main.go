// Command pagedhash loads keys into a paged table, builds a static hash index over it and compares the
// cost in pages read of a table scan against an index lookup.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/iur1nott/pagedhash"
	"github.com/iur1nott/pagedhash/internal/conf"
	"github.com/iur1nott/pagedhash/internal/hash"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	fileName := flag.String("file", "", "file with one key per line, stdin if empty")
	pageSize := flag.Int64("page-size", conf.DefaultPageByteBudget, "page size in bytes")
	loadFactor := flag.Int64("fr", conf.DefaultLoadFactor, "max entries per bucket (FR)")
	hashName := flag.String("hash", conf.HashCharSum, "hash algorithm: charsum, crc32 or murmur3")
	find := flag.String("find", "", "comma separated keys to look up through the index")
	scan := flag.String("scan", "", "comma separated keys to look up with a table scan")
	showPages := flag.Bool("pages", false, "list pages and their records")
	showDist := flag.Bool("dist", false, "show number of entries per bucket")
	chain := flag.Int64("chain", -1, "show the head and overflow segments of this bucket")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err = run(os.Stdin, os.Stdout, logger, options{
		fileName:   *fileName,
		pageSize:   *pageSize,
		loadFactor: *loadFactor,
		hashName:   *hashName,
		find:       splitKeys(*find),
		scan:       splitKeys(*scan),
		showPages:  *showPages,
		showDist:   *showDist,
		chain:      *chain,
	}); err != nil {
		logger.Fatal("pagedhash failed", zap.Error(err))
	}
}

type options struct {
	fileName   string
	pageSize   int64
	loadFactor int64
	hashName   string
	find       []string
	scan       []string
	showPages  bool
	showDist   bool
	chain      int64
}

func run(stdin io.Reader, out io.Writer, logger *zap.Logger, opts options) (err error) {
	hashAlgorithm, err := hash.NewHashAlgorithm(opts.hashName)
	if err != nil {
		return
	}

	table, err := pagedhash.NewTable(pagedhash.TableConf{Name: "keys", HashAlgorithm: hashAlgorithm, Logger: logger})
	if err != nil {
		return
	}

	in := stdin
	if opts.fileName != "" {
		var f *os.File
		f, err = os.Open(opts.fileName)
		if err != nil {
			return
		}
		defer func(f *os.File) { _ = f.Close() }(f)
		in = f
	}

	if err = table.LoadFrom(in); err != nil {
		return
	}
	if err = table.Paginate(opts.pageSize); err != nil {
		return
	}
	if err = table.BuildIndex(opts.loadFactor); err != nil {
		return
	}

	stat, err := table.Stat(opts.showDist)
	if err != nil {
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	printStat(w, stat)
	if opts.showDist {
		printDistribution(w, stat.BucketDistribution)
	}
	if opts.chain >= 0 {
		var segments [][]pagedhash.Entry
		segments, err = table.BucketChain(opts.chain)
		if err != nil {
			return
		}
		printChain(w, opts.chain, segments)
	}
	if opts.showPages {
		if err = printPages(w, table); err != nil {
			return
		}
	}

	for _, key := range opts.find {
		var res pagedhash.IndexResult
		res, err = table.LookupViaIndex(key)
		if err != nil {
			return
		}
		printIndexResult(w, res)
	}

	for _, key := range opts.scan {
		var res pagedhash.ScanResult
		res, err = table.TableScan(key)
		if err != nil {
			return
		}
		printScanResult(w, res)
	}

	return
}

func printStat(w io.Writer, stat pagedhash.BuildStat) {
	fmt.Fprintln(w, "NR\tNB\tFR\tCOLLISIONS\tCOLLISION RATE\tOVERFLOW SEGMENTS\tOVERFLOW RATE\tOVERFLOW ENTRIES\tPAGES")
	fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%.2f%%\t%d\t%.2f%%\t%d (%.2f%%)\t%d\n",
		stat.TotalRecords, stat.BucketCount, stat.LoadFactor,
		stat.TotalCollisions, stat.CollisionRate*100,
		stat.TotalOverflowSegments, stat.BucketsWithOverflowRate*100,
		stat.OverflowEntries, stat.OverflowEntryRate*100,
		stat.PageCount)
	fmt.Fprintln(w)
}

func printDistribution(w io.Writer, distribution []int64) {
	fmt.Fprintln(w, "BUCKET\tENTRIES\t")
	for i, n := range distribution {
		fmt.Fprintf(w, "%d\t%d\t%s\n", i, n, strings.Repeat("#", int(n)))
	}
	fmt.Fprintln(w)
}

func printChain(w io.Writer, bucketNo int64, segments [][]pagedhash.Entry) {
	fmt.Fprintf(w, "Bucket %d\t%d segment(s)\t\n", bucketNo, len(segments))
	for i, entries := range segments {
		kind := "head"
		if i > 0 {
			kind = "overflow"
		}
		fmt.Fprintf(w, "\t%s %d\t", kind, i)
		for _, e := range entries {
			fmt.Fprintf(w, "%s -> page %d, record %d  ", e.Key, e.Pointer.PageNumber, e.Pointer.Offset)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}

func printPages(w io.Writer, table *pagedhash.Table) error {
	for _, info := range table.Pages() {
		full := ""
		if info.Full {
			full = "full"
		}
		fmt.Fprintf(w, "Page %d\t%d records\t%d bytes\t%s\n", info.PageNumber, info.RecordCount, info.OccupiedBytes, full)
		page, err := table.Page(info.PageNumber)
		if err != nil {
			return err
		}
		for _, r := range page.Records {
			fmt.Fprintf(w, "\t- %s\t\n", r)
		}
	}
	fmt.Fprintln(w)

	return nil
}

func printIndexResult(w io.Writer, res pagedhash.IndexResult) {
	fmt.Fprintf(w, "index\t%q\tbucket %d (chain length %d)\t", res.Key, res.BucketNo, res.ChainLength)
	if res.Found {
		fmt.Fprintf(w, "found at page %d, record %d, payload %q\tcost %d page(s)\n",
			res.Location.PageNumber, res.Location.Offset, res.Record.Payload, res.PagesRead)
		return
	}
	fmt.Fprintf(w, "not found\tcost %d page(s)\n", res.PagesRead)
}

func printScanResult(w io.Writer, res pagedhash.ScanResult) {
	fmt.Fprintf(w, "scan\t%q\t%d record(s) read\t", res.Key, len(res.RecordsRead))
	if res.Found {
		fmt.Fprintf(w, "found at page %d, record %d, payload %q\tcost %d page(s)\n",
			res.Location.PageNumber, res.Location.Offset, res.Record.Payload, res.PagesRead)
		return
	}
	fmt.Fprintf(w, "not found\tcost %d page(s)\n", res.PagesRead)
}

func splitKeys(s string) (keys []string) {
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}

	return
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	cfg.Encoding = "console"

	return cfg.Build()
}
