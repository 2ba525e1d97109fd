package xss

import (
	"math/rand/v2"
	"testing"
)

func TestPSSArrayAgreesWithNaive(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	for trial := 0; trial < 200; trial++ {
		n := 3 + rng.IntN(300)
		alphabet := 1 + rng.IntN(4)
		text := randomSentinelText(rng, n, alphabet)

		for _, threshold := range []uint32{MinThreshold, 16, DefaultThreshold} {
			got := toIntSlice(PSSArray[uint32](text, threshold))
			want := naivePSS(text)
			if !intsEqual(got, want) {
				t.Fatalf("PSSArray mismatch trial=%d threshold=%d text=%q\ngot:  %v\nwant: %v", trial, threshold, text, got, want)
			}
		}
	}
}

func TestNSSArrayAgreesWithNaive(t *testing.T) {
	rng := rand.New(rand.NewPCG(2, 2))
	for trial := 0; trial < 200; trial++ {
		n := 3 + rng.IntN(300)
		alphabet := 1 + rng.IntN(4)
		text := randomSentinelText(rng, n, alphabet)

		got := toIntSlice(NSSArray[uint32](text, DefaultThreshold))
		want := naiveNSS(text)
		if !intsEqual(got, want) {
			t.Fatalf("NSSArray mismatch trial=%d text=%q\ngot:  %v\nwant: %v", trial, text, got, want)
		}
	}
}

func TestLyndonArrayAgreesWithNaive(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 3))
	for trial := 0; trial < 200; trial++ {
		n := 3 + rng.IntN(300)
		alphabet := 1 + rng.IntN(4)
		text := randomSentinelText(rng, n, alphabet)

		got := toIntSlice(LyndonArray[uint32](text, DefaultThreshold))
		want := naiveLyndon(text)
		if !intsEqual(got, want) {
			t.Fatalf("LyndonArray mismatch trial=%d text=%q\ngot:  %v\nwant: %v", trial, text, got, want)
		}
	}
}

func TestPSSAndNSSArrayAgreesWithSeparateConstruction(t *testing.T) {
	rng := rand.New(rand.NewPCG(4, 4))
	for trial := 0; trial < 100; trial++ {
		n := 3 + rng.IntN(300)
		alphabet := 1 + rng.IntN(4)
		text := randomSentinelText(rng, n, alphabet)

		pss, nss := PSSAndNSSArray[uint32](text, DefaultThreshold)
		wantPSS := PSSArray[uint32](text, DefaultThreshold)
		wantNSS := NSSArray[uint32](text, DefaultThreshold)
		if !intsEqual(toIntSlice(pss), toIntSlice(wantPSS)) {
			t.Fatalf("PSSAndNSSArray PSS half mismatch trial=%d text=%q", trial, text)
		}
		if !intsEqual(toIntSlice(nss), toIntSlice(wantNSS)) {
			t.Fatalf("PSSAndNSSArray NSS half mismatch trial=%d text=%q", trial, text)
		}
	}
}

func TestPSSAndLyndonArrayAgreesWithSeparateConstruction(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 5))
	for trial := 0; trial < 100; trial++ {
		n := 3 + rng.IntN(300)
		alphabet := 1 + rng.IntN(4)
		text := randomSentinelText(rng, n, alphabet)

		pss, lyn := PSSAndLyndonArray[uint32](text, DefaultThreshold)
		wantPSS := PSSArray[uint32](text, DefaultThreshold)
		wantLyn := LyndonArray[uint32](text, DefaultThreshold)
		if !intsEqual(toIntSlice(pss), toIntSlice(wantPSS)) {
			t.Fatalf("PSSAndLyndonArray PSS half mismatch trial=%d text=%q", trial, text)
		}
		if !intsEqual(toIntSlice(lyn), toIntSlice(wantLyn)) {
			t.Fatalf("PSSAndLyndonArray Lyndon half mismatch trial=%d text=%q", trial, text)
		}
	}
}

// TestPSSArrayHighlyRepetitive targets the run-extension and lookahead
// shortcuts directly with long single-period runs, which a small random
// alphabet rarely produces on its own.
func TestPSSArrayHighlyRepetitive(t *testing.T) {
	cases := []struct {
		name string
		text []byte
	}{
		{"single-run", sentinelText(repeat("ab", 500))},
		{"two-runs", sentinelText(repeat("abc", 200) + repeat("xy", 300))},
		{"all-same-byte", sentinelText(repeat("a", 1000))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := toIntSlice(PSSArray[uint32](tc.text, DefaultThreshold))
			want := naivePSS(tc.text)
			if !intsEqual(got, want) {
				t.Fatalf("mismatch for %s\ngot:  %v\nwant: %v", tc.name, got, want)
			}
		})
	}
}

func TestPSSArrayMinimalInput(t *testing.T) {
	text := []byte{0, 1, 0}
	got := toIntSlice(PSSArray[uint32](text, DefaultThreshold))
	want := naivePSS(text)
	if !intsEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func repeat(s string, times int) string {
	out := make([]byte, 0, len(s)*times)
	for i := 0; i < times; i++ {
		out = append(out, s...)
	}
	return string(out)
}

func sentinelText(s string) []byte {
	text := make([]byte, len(s)+2)
	copy(text[1:], s)
	return text
}
