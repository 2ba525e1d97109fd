// Package xss computes the previous-smaller-suffix (PSS), next-smaller-suffix
// (NSS) and Lyndon arrays of a sentinel-terminated byte string in worst-case
// linear time.
//
// # Overview
//
// Given a byte string T of length n with T[0] = T[n-1] = 0 (the two
// sentinels) and T[i] > 0 for every interior position, the three arrays are
// defined for every interior position i (1 <= i <= n-2):
//
//	PSS[i]    = largest j < i such that T[j:] < T[i:] lexicographically
//	NSS[i]    = smallest j > i such that T[j:] < T[i:] lexicographically
//	Lyndon[i] = NSS[i] - i (length of the longest Lyndon word starting at i)
//
// Construction runs in O(n) amortised time even on highly repetitive inputs,
// by combining a naive left-to-right walk with an escape mechanism (two
// monotone probes along the PSS chain) and two copy-forward shortcuts: an
// amortised lookahead that reuses already-finalised array cells, and a run
// extension that analytically fills whole periods of a detected run.
//
// # Basic usage
//
//	text := append([]byte{0}, append([]byte("banana"), 0)...)
//	pss := xss.PSSArray[uint32](text, xss.DefaultThreshold)
//	pss2, nss := xss.PSSAndNSSArray[uint32](text, xss.DefaultThreshold)
//	_ = pss
//	_ = pss2
//	_ = nss
//
// PSSArrayParallel and its siblings split the same sweep across goroutines
// for large inputs, PSSTree builds the PSS tree as a balanced-parentheses
// bit vector instead of a flat array, and ComputeRuns finds every maximal
// periodic factor of text.
//
// # Index width
//
// All construction entry points are generic over the index type (uint32 or
// uint64, or any named type with one of those as underlying type) so callers
// can pick the narrowest width that fits their input length; see Index.
//
// # Input contract
//
// Callers own sentinel placement and alphabet standardization (shifting any
// zero interior bytes out of the way) before calling into this package --
// see Validate. The LCE loops rely on the sentinel bytes to terminate;
// a buffer that violates the contract can panic instead of returning a
// usable array, so callers that cannot guarantee it should call Validate
// first and handle ErrInvalidInput.
//
// # Out of scope
//
// File I/O, sentinel injection, alphabet standardization, command-line
// dispatch, benchmarking, and suffix-array construction from the PSS/Lyndon
// output are external concerns handled by the caller, not this package.
package xss
