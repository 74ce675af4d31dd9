package rlnc

import "github.com/templexxx/xorsimd"

// xorInto XORs src[:n] into dst[:n] in place. It delegates to xorsimd,
// which dispatches to AVX-512/AVX2/SSE2 word-at-a-time implementations
// depending on the host CPU and falls back to a byte loop itself on
// unsupported architectures; xorsimd.Bytes tolerates dst and src aliasing,
// which is what in-place mixing in Combination.AddComponentData/Add relies on.
func xorInto(dst, src []byte, n int) {
	if n <= 0 {
		return
	}
	xorsimd.Bytes(dst[:n], dst[:n], src[:n])
}
