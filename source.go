package rlnc

// Source holds an ordered set of original packets, each wrapped as a
// trivial Combination, and can emit an unbounded stream of random linear
// combinations of them.
type Source struct {
	combinations map[int]*Combination
	nextIndex    int
	gen          *Generator
	log          Logger
}

// NewSource creates a Source whose Generate coefficients are drawn from a
// Generator seeded with seed. Given the same seed and the same sequence of
// Add calls, Generate is deterministic and repeatable (spec §4.E).
func NewSource(seed uint64) *Source {
	return &Source{
		combinations: make(map[int]*Combination),
		gen:          NewGenerator(seed),
	}
}

// SetLogger attaches a diagnostics Logger. Pass nil to detach it. Never
// required: Generate behaves identically either way.
func (s *Source) SetLogger(l Logger) {
	s.log = l
}

// Add stores payload as a new original, wrapped as a trivial Combination
// with a single component at the next sequential index and coefficient 1.
// It returns the assigned index.
func (s *Source) Add(payload []byte) int {
	i := s.nextIndex
	s.combinations[i] = NewTrivialCombination(i, payload)
	s.nextIndex++
	return i
}

// Generate produces a random linear combination of every original added so
// far into out, drawing one coefficient per original from the Source's
// Generator in ascending order of component index. It returns false, with
// out cleared, if no originals have been added yet.
func (s *Source) Generate(out *Combination) bool {
	out.Clear()

	if len(s.combinations) == 0 {
		return false
	}

	for i := 0; i < s.nextIndex; i++ {
		original, ok := s.combinations[i]
		if !ok {
			continue
		}
		coeff := s.gen.Next()
		scaled := original.Copy()
		scaled.Scale(coeff)
		out.Add(scaled)
	}

	if s.log != nil {
		s.log.Debugw("rlnc: generated combination",
			"first", out.FirstComponent(),
			"last", out.LastComponent(),
			"coded_size", out.CodedSize(),
		)
	}

	return true
}

// Clear drops all originals and resets the component counter.
func (s *Source) Clear() {
	s.combinations = make(map[int]*Combination)
	s.nextIndex = 0
}
