// Package hist batches int64 observations and periodically renders a
// plain-text distribution report: an exact summary line (count, min, mean,
// max, stddev), HdrHistogram percentiles and a bar chart of the bins.
package hist

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"

	"github.com/quantstats/descriptive"
)

type Opts struct {
	Name  string
	Scale string // unit label appended to reported values, e.g. "us"

	// BatchSize is the number of observations per report. Add flushes a
	// report and resets every time this many have been recorded.
	BatchSize int64

	// Lowest/Highest trackable value and significant digits for the
	// underlying HdrHistogram.
	Min       int64
	Max       int64
	Precision int

	// MinPct drops distribution bins holding less than this percentage
	// of the batch from the bar chart.
	MinPct float64

	Writer io.Writer
}

// Hist records observations into both an exact accumulator and an
// HdrHistogram. The accumulator supplies the headline summary, the
// histogram the percentiles and bins.
type Hist struct {
	opts Opts

	stats *descriptive.Stats[int64]
	hdr   *hdrhistogram.Histogram
	tabw  *tabwriter.Writer

	reports int
}

func New(opts Opts) *Hist {
	return &Hist{
		opts:  opts,
		stats: descriptive.NewStats[int64](),
		hdr:   hdrhistogram.New(opts.Min, opts.Max, opts.Precision),
		tabw:  tabwriter.NewWriter(opts.Writer, 2, 2, 2, byte(' '), 0),
	}
}

// Add records each of xs as one observation. Values outside the trackable
// range still count towards the exact summary but are dropped from the
// percentile histogram.
func (h *Hist) Add(xs ...int64) {
	for _, x := range xs {
		h.stats.Add(x)
		_ = h.hdr.RecordValue(x)
	}
	if h.stats.Count() >= int(h.opts.BatchSize) {
		h.Flush()
	}
}

// Flush reports whatever has been recorded since the last report and
// starts a new batch. A no-op when the batch is empty.
func (h *Hist) Flush() {
	if h.stats.Count() == 0 {
		return
	}
	h.reports++
	h.report()

	h.stats = descriptive.NewStats[int64]()
	h.hdr.Reset()
}

// Reported returns the number of reports written so far.
func (h *Hist) Reported() int {
	return h.reports
}

func (h *Hist) report() {
	if h.opts.Writer == nil {
		return
	}

	fmt.Fprintf(h.opts.Writer,
		"%v report=%d name=%s samples=%d scale=%s\n",
		time.Now().Format("2006-01-02 15:04:05"),
		h.reports, h.opts.Name, h.stats.Count(), h.opts.Scale,
	)

	fmt.Fprint(h.opts.Writer, "count/min/mean/max/stddev = ")
	_, _ = h.stats.WriteSummary(h.opts.Writer)
	fmt.Fprintf(h.opts.Writer, " %s\n", h.opts.Scale)

	for _, p := range []float64{50, 75, 90, 95, 99} {
		fmt.Fprintf(h.opts.Writer, "%vth percentile=%d %s\n",
			p, h.hdr.ValueAtPercentile(p), h.opts.Scale)
	}

	h.bars()
}

func (h *Hist) bars() {
	var minCount, maxCount int64 = math.MaxInt64, math.MinInt64
	for _, bin := range h.hdr.Distribution() {
		if h.pct(bin.Count) < h.opts.MinPct {
			continue
		}
		if bin.Count < minCount {
			minCount = bin.Count
		}
		if bin.Count > maxCount {
			maxCount = bin.Count
		}
	}

	for _, bin := range h.hdr.Distribution() {
		pct := h.pct(bin.Count)
		if pct < h.opts.MinPct {
			continue
		}

		barSize := 1
		if minCount != maxCount {
			fraction := float64(bin.Count-minCount) /
				float64(maxCount-minCount)
			if n := int(math.Ceil(fraction * 10)); n > 1 {
				barSize = n
			}
		}

		from, to := bin.From, bin.To
		if from == to {
			to++
		}

		fmt.Fprintf(h.tabw, "%d-%d %s\t%.3g%%\t%s\t%s\n",
			from, to, h.opts.Scale, pct,
			strings.Repeat("|", barSize),
			strconv.FormatInt(bin.Count, 10),
		)
	}

	_ = h.tabw.Flush()
}

func (h *Hist) pct(count int64) float64 {
	return float64(count) * 100.0 / float64(h.hdr.TotalCount())
}
