// ABOUTME: Diagnostics report accumulates structured counters describing each stage's yield
// ABOUTME: Purely observational; never consumed programmatically by downstream logic

package search

import (
	"fmt"
	"strings"
)

// seedStats counts what each pipeline stage yielded for one seed
type seedStats struct {
	fetched    int
	malformed  int
	afterViews int
	matched    int
	fetchErr   error
}

// report is the ordered sequence of human-readable diagnostics lines for one
// search execution: a policy summary, one line per seed, and a totals line.
type report struct {
	lines []string
}

func newReport(policyLine string) *report {
	return &report{lines: []string{policyLine}}
}

func (r *report) addLine(format string, args ...interface{}) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func (r *report) addSeed(seed string, st seedStats) {
	line := fmt.Sprintf("seed %q: fetched=%d malformed=%d after_views=%d matched=%d",
		seed, st.fetched, st.malformed, st.afterViews, st.matched)
	if st.fetchErr != nil {
		line += fmt.Sprintf(" (pagination aborted: %v)", st.fetchErr)
	}
	r.lines = append(r.lines, line)
}

func (r *report) addTotals(matched, afterDedup int) {
	r.addLine("total: %d matched, %d after dedup", matched, afterDedup)
}

func (r *report) String() string {
	return strings.Join(r.lines, "\n")
}
