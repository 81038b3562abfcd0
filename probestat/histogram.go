// Package probestat aggregates lookup probe counts into the histogram the
// cellbench driver prints.
package probestat

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Buckets is the number of histogram rows. The last row collects every
// lookup that needed Buckets or more probes.
const Buckets = 15

// Histogram counts lookups by probe count.
type Histogram struct {
	counts [Buckets]int
	total  int
	sum    int
	max    int
}

// Record adds one lookup that took probes probes. Values below 1 count as 1.
func (h *Histogram) Record(probes int) {
	if probes < 1 {
		probes = 1
	}
	h.total++
	h.sum += probes
	if probes > h.max {
		h.max = probes
	}
	if probes > Buckets {
		probes = Buckets
	}
	h.counts[probes-1]++
}

// Total returns the number of recorded lookups.
func (h *Histogram) Total() int { return h.total }

// Max returns the largest probe count recorded.
func (h *Histogram) Max() int { return h.max }

// Count returns the number of lookups in the bucket for probes.
func (h *Histogram) Count(probes int) int {
	if probes < 1 {
		return 0
	}
	if probes > Buckets {
		probes = Buckets
	}
	return h.counts[probes-1]
}

// Mean returns the average probe count, or 0 when nothing was recorded.
func (h *Histogram) Mean() float64 {
	if h.total == 0 {
		return 0
	}
	return float64(h.sum) / float64(h.total)
}

// percent returns the share of lookups in bucket i.
func (h *Histogram) percent(i int) float64 {
	if h.total == 0 {
		return 0
	}
	return float64(h.counts[i]) / float64(h.total) * 100
}

// Bucket is one histogram row in a Report.
type Bucket struct {
	Probes  int     `json:"probes"`
	AtLeast bool    `json:"at_least,omitempty"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// Report is the JSON form of a Histogram.
type Report struct {
	Total   int      `json:"total"`
	Mean    float64  `json:"mean"`
	Max     int      `json:"max"`
	Buckets []Bucket `json:"buckets"`
}

// Report returns the histogram as a serializable value.
func (h *Histogram) Report() Report {
	r := Report{Total: h.total, Mean: h.Mean(), Max: h.max, Buckets: make([]Bucket, Buckets)}
	for i := range h.counts {
		r.Buckets[i] = Bucket{
			Probes:  i + 1,
			AtLeast: i == Buckets-1,
			Count:   h.counts[i],
			Percent: h.percent(i),
		}
	}
	return r
}

// WriteText prints one line per bucket, formatting numbers for tag.
func (h *Histogram) WriteText(w io.Writer, tag language.Tag) error {
	p := message.NewPrinter(tag)
	if _, err := p.Fprintf(w, "=============output stats===============\n"); err != nil {
		return err
	}
	for i := 0; i < Buckets-1; i++ {
		if _, err := p.Fprintf(w, "lookup times = %d : count = %d, hit %.1f%%\n", i+1, h.counts[i], h.percent(i)); err != nil {
			return err
		}
	}
	last := Buckets - 1
	if _, err := p.Fprintf(w, "lookup times >= %d : count = %d, hit %.1f%%\n", Buckets, h.counts[last], h.percent(last)); err != nil {
		return err
	}
	_, err := p.Fprintf(w, "lookups = %d, mean probes = %.3f, max probes = %d\n", h.total, h.Mean(), h.max)
	return err
}
