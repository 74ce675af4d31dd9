package rlnc

import (
	"io"
	"sort"
)

// Sink is a pivot-indexed, row-reduced system of Combinations: an online
// Gauss-Jordan decoder. Solve reduces each arriving Combination against the
// rows already stored, accepts it if innovative, back-substitutes to keep
// the system as close to reduced row-echelon form as it can, and tracks how
// many originals are currently recoverable.
type Sink struct {
	rows           map[int]*Combination // keyed by pivot index
	decodedCount   int
	componentsCount int
	log            Logger
}

// NewSink creates an empty Sink.
func NewSink() *Sink {
	return &Sink{rows: make(map[int]*Combination)}
}

// SetLogger attaches a diagnostics Logger. Pass nil to detach it. Never
// required: Solve behaves identically either way.
func (s *Sink) SetLogger(l Logger) {
	s.log = l
}

// Solve integrates incoming into the decoder. It returns true if incoming
// was innovative (linearly independent of the rows currently stored) and
// false otherwise, including when incoming is null. Solve never corrupts
// state on malformed input: a garbled Combination is simply non-innovative
// or gets algebraically absorbed without effect.
func (s *Sink) Solve(incoming *Combination) bool {
	if incoming.IsNull() {
		return false
	}

	if last := incoming.LastComponent() + 1; last > s.componentsCount {
		s.componentsCount = last
	}

	// Forward reduction: eliminate against every pivot already present so
	// the incoming row becomes triangular with respect to the stored system.
	for i := incoming.FirstComponent(); i <= incoming.LastComponent(); i++ {
		c := incoming.Coeff(i)
		if c == 0 {
			continue
		}
		row, ok := s.rows[i]
		if !ok {
			break
		}
		scaled := row.Copy()
		scaled.Scale(c)
		incoming.Add(scaled)
	}

	if incoming.IsNull() {
		if s.log != nil {
			s.log.Debugw("rlnc: non-innovative combination")
		}
		return false
	}

	// Normalize so the pivot coefficient is 1, then insert.
	pivot := incoming.FirstComponent()
	incoming.Div(incoming.Coeff(pivot))
	s.rows[pivot] = incoming

	s.backSubstitute()
	s.prune()
	s.recount()

	if s.log != nil {
		s.log.Debugw("rlnc: innovative combination accepted",
			"pivot", pivot,
			"decoded_count", s.decodedCount,
			"seen_count", len(s.rows),
		)
	}

	return true
}

// backSubstitute iterates the stored rows in descending pivot order,
// subtracting out any column it can fully resolve against rows below it.
// A row that depends on a column whose row is still coded stops the sweep
// for that row; a subsequent Solve call will retry from scratch, per spec
// §9's note on back-substitution termination.
func (s *Sink) backSubstitute() {
	pivots := s.sortedPivots()

	for i := len(pivots) - 1; i >= 0; i-- {
		pivot := pivots[i]
		row := s.rows[pivot]

		first := row.FirstComponent()
		if pivot > first {
			first = pivot
		}

		for col := row.LastComponent(); col > first; col-- {
			other, ok := s.rows[col]
			if !ok {
				continue
			}
			if other.IsCoded() {
				break
			}
			scaled := other.Copy()
			scaled.Scale(row.Coeff(col))
			row.Add(scaled)
		}

		if row.LastComponent() != pivot {
			break
		}
	}
}

// prune removes any row that became null (possible if back-substitution
// zeroed it out entirely, which cannot happen for a genuinely independent
// system but is handled defensively per spec §4.F step 7).
func (s *Sink) prune() {
	for pivot, row := range s.rows {
		if row.IsNull() {
			delete(s.rows, pivot)
		}
	}
}

// recount recomputes decodedCount as the number of stored rows that are
// fully decoded (single component, coefficient 1).
func (s *Sink) recount() {
	count := 0
	for _, row := range s.rows {
		if !row.IsCoded() {
			count++
		}
	}
	s.decodedCount = count
}

func (s *Sink) sortedPivots() []int {
	pivots := make([]int, 0, len(s.rows))
	for pivot := range s.rows {
		pivots = append(pivots, pivot)
	}
	sort.Ints(pivots)
	return pivots
}

// Get returns every stored row, in ascending pivot order, in a new slice.
// The slice borrows pointers into the Sink and is invalidated by any
// subsequent Solve or Clear.
func (s *Sink) Get() []*Combination {
	pivots := s.sortedPivots()
	out := make([]*Combination, 0, len(pivots))
	for _, pivot := range pivots {
		out = append(out, s.rows[pivot])
	}
	return out
}

// GetDecoded is Get filtered to rows that are fully decoded.
func (s *Sink) GetDecoded() []*Combination {
	pivots := s.sortedPivots()
	out := make([]*Combination, 0, len(pivots))
	for _, pivot := range pivots {
		if row := s.rows[pivot]; !row.IsCoded() {
			out = append(out, row)
		}
	}
	return out
}

// SeenCount returns the number of rows currently stored (the decoder's
// current degree).
func (s *Sink) SeenCount() int {
	return len(s.rows)
}

// DecodedCount returns the cached decoded-row count from the last Solve.
func (s *Sink) DecodedCount() int {
	return s.decodedCount
}

// ComponentsCount returns one past the largest component index ever seen.
func (s *Sink) ComponentsCount() int {
	return s.componentsCount
}

// Dump writes the unpadded payload of every decoded row, in ascending
// pivot order, to w, and returns the total number of bytes written.
func (s *Sink) Dump(w io.Writer) (int, error) {
	total := 0
	for _, row := range s.GetDecoded() {
		n, err := row.Size()
		if err != nil {
			return total, err
		}
		written, err := w.Write(row.Data()[:n])
		total += written
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Clear drops every stored row and resets the decoded and component
// counters to 0.
func (s *Sink) Clear() {
	s.rows = make(map[int]*Combination)
	s.decodedCount = 0
	s.componentsCount = 0
}
