package rlnc

import "fmt"

// Combination is a sparse GF(2^8)-linear combination of original packets: a
// map from component index to a nonzero coefficient, paired with a coded
// data buffer holding the matching field-weighted sum of the (padded)
// original payloads.
//
// The zero value is a valid null Combination (no components, no data).
type Combination struct {
	components map[int]byte
	data       []byte
}

// NewCombination returns an empty, null Combination.
func NewCombination() *Combination {
	return &Combination{}
}

// NewTrivialCombination returns a Combination with a single component at
// index i, coefficient 1, holding the padded payload. This is how a Source
// represents a freshly added original packet.
func NewTrivialCombination(i int, payload []byte) *Combination {
	c := &Combination{}
	c.AddComponentData(i, 1, payload, len(payload))
	return c
}

// AddComponent adds c to the coefficient stored at index i in GF(2^8). If
// the result is 0 the entry is removed. It does not touch the data buffer;
// it is used when rebuilding a received combination's coefficient vector
// incrementally, alongside SetCodedData.
func (c *Combination) AddComponent(i int, coeff byte) {
	if c.components == nil {
		if coeff == 0 {
			return
		}
		c.components = make(map[int]byte)
	}

	if existing, ok := c.components[i]; ok {
		sum := gAdd(existing, coeff)
		if sum == 0 {
			delete(c.components, i)
		} else {
			c.components[i] = sum
		}
	} else if coeff != 0 {
		c.components[i] = coeff
	}
}

// AddComponentData records the coefficient change at index i and folds
// coeff*padded(payload) into the data buffer. If the combination is
// currently empty and coeff == 1, data is simply set to the padded
// payload (fast path matching NewTrivialCombination's construction).
func (c *Combination) AddComponentData(i int, coeff byte, payload []byte, n int) {
	c.AddComponent(i, coeff)

	if len(c.data) == 0 && coeff == 1 {
		c.SetData(payload, n)
		return
	}

	if coeff == 0 {
		return
	}

	if len(c.data) < n+1 {
		c.grow(n+1, true)
	}

	if coeff == 1 {
		xorInto(c.data, payload, n)
		c.data[n] ^= 0x80
		return
	}

	for k := 0; k < n; k++ {
		c.data[k] ^= gMul(payload[k], coeff)
	}
	c.data[n] ^= gMul(0x80, coeff)
}

// SetData replaces data with the padded payload: the payload bytes followed
// by a single 0x80 terminator. Used when the caller knows the combination is
// trivially one component with coefficient 1.
func (c *Combination) SetData(payload []byte, n int) {
	c.data = make([]byte, n+1)
	copy(c.data, payload[:n])
	c.data[n] = 0x80
}

// SetCodedData replaces data verbatim with received coded bytes, with no
// padding byte appended. Used by a receiver reconstructing a Combination
// from the wire: one SetCodedData call followed by one AddComponent call
// per (index, coefficient) pair.
func (c *Combination) SetCodedData(coded []byte) {
	c.data = make([]byte, len(coded))
	copy(c.data, coded)
}

// Coeff returns the coefficient stored at index i, or 0 if absent.
func (c *Combination) Coeff(i int) byte {
	return c.components[i]
}

// FirstComponent returns the smallest component index present, or 0 if the
// combination is null.
func (c *Combination) FirstComponent() int {
	if len(c.components) == 0 {
		return 0
	}
	first := true
	var min int
	for i := range c.components {
		if first || i < min {
			min = i
			first = false
		}
	}
	return min
}

// LastComponent returns the largest component index present, or 0 if the
// combination is null.
func (c *Combination) LastComponent() int {
	if len(c.components) == 0 {
		return 0
	}
	first := true
	var max int
	for i := range c.components {
		if first || i > max {
			max = i
			first = false
		}
	}
	return max
}

// IsNull reports whether the combination has no components.
func (c *Combination) IsNull() bool {
	return len(c.components) == 0
}

// IsCoded reports whether the combination is anything other than a single
// decoded original: true unless it has exactly one component with
// coefficient 1.
func (c *Combination) IsCoded() bool {
	if len(c.components) != 1 {
		return true
	}
	for _, coeff := range c.components {
		return coeff != 1
	}
	return true
}

// Data returns the raw coded data buffer.
func (c *Combination) Data() []byte {
	return c.data
}

// Size returns the payload length. For a coded or null combination this is
// simply the buffer length. For a decoded combination (IsCoded() == false)
// it scans from the end of data, skipping zero bytes, and expects the first
// nonzero byte encountered to be 0x80 or 0x81 (see spec §9 on the dual
// padding markers); any other trailing byte is reported as corruption.
func (c *Combination) Size() (int, error) {
	if len(c.data) == 0 || c.IsCoded() {
		return len(c.data), nil
	}

	size := len(c.data) - 1
	for size > 0 && c.data[size] == 0 {
		size--
	}

	if c.data[size] != 0x80 && c.data[size] != 0x81 {
		return 0, fmt.Errorf("rlnc: combination at %d..%d: %w", c.FirstComponent(), c.LastComponent(), ErrCorruptPadding)
	}

	return size, nil
}

// CodedSize returns the length of the coded data buffer, padding included.
func (c *Combination) CodedSize() int {
	return len(c.data)
}

// Clear resets the combination to null, releasing its components and data.
func (c *Combination) Clear() {
	c.components = nil
	c.data = nil
}

// Copy returns a deep copy of c.
func (c *Combination) Copy() *Combination {
	out := &Combination{}
	if len(c.components) > 0 {
		out.components = make(map[int]byte, len(c.components))
		for i, coeff := range c.components {
			out.components[i] = coeff
		}
	}
	if len(c.data) > 0 {
		out.data = make([]byte, len(c.data))
		copy(out.data, c.data)
	}
	return out
}

// Add adds other into c in place (the "+=" operator of spec §4.D): data
// grows to max(len(c.data), len(other.data)) with zero-fill, other's data is
// XORed in, and each of other's components is folded into c's coefficients.
func (c *Combination) Add(other *Combination) {
	if len(c.data) < len(other.data) {
		c.grow(len(other.data), true)
	}

	xorInto(c.data, other.data, len(other.data))

	for i, coeff := range other.components {
		c.AddComponent(i, coeff)
	}
}

// Scale multiplies c by k in GF(2^8) in place (the "*=" operator). Scaling
// by 1 is a no-op; scaling by 0 zeroes both data and components.
func (c *Combination) Scale(k byte) {
	if k == 1 {
		return
	}
	if k == 0 {
		for i := range c.data {
			c.data[i] = 0
		}
		c.components = nil
		return
	}

	for i := range c.data {
		c.data[i] = gMul(c.data[i], k)
	}
	for i, coeff := range c.components {
		c.components[i] = gMul(coeff, k)
	}
}

// Div divides c by k in GF(2^8) in place (the "/=" operator). k must be
// nonzero; dividing by zero is a programming error and panics, matching
// the original's assert(coeff != 0).
func (c *Combination) Div(k byte) {
	if k == 0 {
		panic(ErrDivideByZero)
	}
	c.Scale(gInv(k))
}

// grow extends data to at least n bytes, zero-filling the new tail.
// Buffers only ever grow: algebra never shrinks data, matching spec §9's
// buffer growth policy. Shrinkage happens only via Clear or a full
// reassignment (SetData/SetCodedData).
func (c *Combination) grow(n int, zerofill bool) {
	if len(c.data) >= n {
		return
	}
	grown := make([]byte, n)
	copy(grown, c.data)
	c.data = grown
}
