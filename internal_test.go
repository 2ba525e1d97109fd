package xss

import (
	"bytes"
	"math/rand/v2"
)

// randomSentinelText generates a sentinel-terminated byte string of length
// n (including both sentinels) with interior bytes drawn uniformly from
// 1..alphabetSize; callers pass small alphabets so repetitions are common
// and run-extension and lookahead paths get exercised alongside the naive
// walk.
func randomSentinelText(rng *rand.Rand, n int, alphabetSize int) []byte {
	if n < 3 {
		n = 3
	}
	text := make([]byte, n)
	for i := 1; i < n-1; i++ {
		text[i] = byte(1 + rng.IntN(alphabetSize))
	}
	return text
}

// naivePSS computes the PSS array by brute-force suffix comparison, used as
// a reference oracle in tests.
func naivePSS(text []byte) []int {
	n := len(text)
	pss := make([]int, n)
	for i := 1; i < n-1; i++ {
		pss[i] = n
		for j := i - 1; j >= 0; j-- {
			if bytes.Compare(text[j:], text[i:]) < 0 {
				pss[i] = j
				break
			}
		}
	}
	pss[0] = n
	pss[n-1] = n
	return pss
}

// naiveNSS computes the NSS array by brute-force suffix comparison.
func naiveNSS(text []byte) []int {
	n := len(text)
	nss := make([]int, n)
	for i := 1; i < n-1; i++ {
		nss[i] = n
		for j := i + 1; j < n; j++ {
			if bytes.Compare(text[j:], text[i:]) < 0 {
				nss[i] = j
				break
			}
		}
	}
	nss[0] = n - 1
	nss[n-1] = n
	return nss
}

func naiveLyndon(text []byte) []int {
	n := len(text)
	nss := naiveNSS(text)
	lyn := make([]int, n)
	for i := 1; i < n-1; i++ {
		lyn[i] = nss[i] - i
	}
	lyn[0] = n - 1
	lyn[n-1] = 1
	return lyn
}

func toIntSlice[I Index](array []I) []int {
	out := make([]int, len(array))
	for i, v := range array {
		out[i] = int(v)
	}
	return out
}
