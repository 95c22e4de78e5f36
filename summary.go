package descriptive

import (
	"fmt"
	"io"

	"github.com/valyala/bytebufferpool"
)

// WriteSummary writes a single tab-separated line summarizing the
// accumulator: count, min, mean, max, standard deviation. An empty
// accumulator renders as the count 0 followed by four empty fields, so
// that NaN sentinels never leak into output meant for humans or parsers.
func (s *Stats[T]) WriteSummary(w io.Writer) (int, error) {
	if len(s.values) == 0 {
		return io.WriteString(w, "0\t\t\t\t")
	}
	return fmt.Fprintf(w, "%d\t%v\t%v\t%v\t%v",
		s.Count(), s.Min(), s.Mean(), s.Max(), s.StdDev())
}

// String renders the summary line of WriteSummary.
func (s *Stats[T]) String() string {
	b := bytebufferpool.Get()
	defer bytebufferpool.Put(b)

	_, _ = s.WriteSummary(b)
	return b.String()
}
