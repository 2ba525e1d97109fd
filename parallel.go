package xss

import (
	"runtime"
	"sync"
)

// clampThreads picks the number of worker goroutines: requested, or
// runtime.NumCPU() if requested <= 0, capped at runtime.NumCPU() and
// clamped so each worker covers at least two positions.
func clampThreads[I Index](requested int, n I) int {
	p := requested
	if cpus := runtime.NumCPU(); p <= 0 || p > cpus {
		p = cpus
	}
	if half := int(n >> 1); p > half {
		p = half
	}
	if p < 1 {
		p = 1
	}
	return p
}

// sliceBounds returns the half-open [lower, upper) range of interior
// positions that worker tn owns out of p equally sized slices.
func sliceBounds[I Index](tn, p, n I) (lower, upper I) {
	sliceSize := (n + p - 1) / p
	lower = tn * sliceSize
	if lower < 1 {
		lower = 1
	}
	upper = (tn + 1) * sliceSize
	if upper > n-1 {
		upper = n - 1
	}
	return lower, upper
}

// recoverPSS reconstructs PSS(j) by a bounded naive backward scan when the
// chain pointer at j has not been written yet by any worker (array[j] > j,
// using scratchMarker(n) as the initial fill value). Each worker is willing
// to pay this local cost rather than reach across slice boundaries for
// chain state another goroutine may not have produced.
func recoverPSS[I Index](lce lceContext[I], array []I, j I) I {
	text := lce.text
	k := j - 1
	l := lce.withoutBounds(k, j, 0)
	for text[k+l] > text[j+l] {
		k--
		l = lce.withoutBounds(k, j, 0)
	}
	return k
}

// PSSArrayParallel is the parallel counterpart to PSSArray: text is
// partitioned into threads (or runtime.NumCPU() if threads <= 0) equally
// sized slices, each swept independently by its own goroutine. A PSS chain
// that walks outside a slice's own lower bound is resolved by a bounded
// naive scan (recoverPSS) rather than the find-PSS escape, since the escape
// needs chain state from positions other workers may not have written yet.
func PSSArrayParallel[I Index](text []byte, threshold I, threads int) []I {
	n := I(len(text))
	warnTypeWidth[I](len(text), "xss.PSSArrayParallel")
	threshold = fixThreshold(threshold)

	array := make([]I, n)
	marker := scratchMarker[I](n)
	for k := range array {
		array[k] = marker
	}
	array[0] = 0

	lce := lceContext[I]{text: text}
	p := clampThreads[I](threads, n)

	var wg sync.WaitGroup
	for tn := 0; tn < p; tn++ {
		wg.Add(1)
		go func(tn I) {
			defer wg.Done()
			lower, upper := sliceBounds(tn, I(p), n)
			var i, j, l I

			var autoLCE, nextJ func()

			autoLCE = func() {
				l = lce.withoutBounds(j, i, 0)
				if l <= threshold {
					return
				}
				maxLCE, maxLCEj := l, j
				for text[j+l] > text[i+l] {
					if array[j] > j {
						return
					}
					j = array[j]
					l = lce.withoutBounds(j, i, 0)
					if l >= maxLCE {
						maxLCE, maxLCEj = l, j
					}
				}
				array[i] = j

				if maxLCEj > lower {
					distance := i - maxLCEj
					if maxLCE >= 2*distance {
						i = runExtensionPSS[I](text, array, maxLCEj, i, maxLCE, distance, upper-1)
					} else {
						i += lookaheadPSS[I](text, array, maxLCEj, i, maxLCE, distance, upper-1) - 1
					}
					j = array[i]
					l = lce.withoutBounds(j, i, 0)
				}
			}

			nextJ = func() {
				if array[j] > j {
					j = recoverPSS(lce, array, j)
					l = lce.withoutBounds(j, i, 0)
				} else {
					j = array[j]
					autoLCE()
				}
			}

			for i = lower; i < upper; i++ {
				j = i - 1
				autoLCE()
				for text[j+l] > text[i+l] {
					nextJ()
				}
				array[i] = j
			}
		}(I(tn))
	}
	wg.Wait()

	array[0], array[n-1] = n, n
	return array
}

// PSSAndNSSArrayParallel is the parallel counterpart to PSSAndNSSArray;
// see PSSArrayParallel for the partitioning and chain-recovery strategy.
func PSSAndNSSArrayParallel[I Index](text []byte, threshold I, threads int) (pss, nss []I) {
	n := I(len(text))
	warnTypeWidth[I](len(text), "xss.PSSAndNSSArrayParallel")
	threshold = fixThreshold(threshold)

	array := make([]I, n)
	aux := make([]I, n)
	marker := scratchMarker[I](n)
	for k := range array {
		array[k] = marker
	}
	array[0] = 0

	lce := lceContext[I]{text: text}
	p := clampThreads[I](threads, n)

	var wg sync.WaitGroup
	for tn := 0; tn < p; tn++ {
		wg.Add(1)
		go func(tn I) {
			defer wg.Done()
			lower, upper := sliceBounds(tn, I(p), n)
			var i, j, l I

			var autoLCE, nextJ func()

			autoLCE = func() {
				l = lce.withoutBounds(j, i, 0)
				if l <= threshold {
					return
				}
				maxLCE, maxLCEj := l, j
				for text[j+l] > text[i+l] {
					if array[j] > j {
						return
					}
					aux[j] = i
					j = array[j]
					l = lce.withoutBounds(j, i, 0)
					if l >= maxLCE {
						maxLCE, maxLCEj = l, j
					}
				}
				array[i] = j

				if maxLCEj > lower {
					distance := i - maxLCEj
					if maxLCE >= 2*distance {
						i = runExtensionNSS[I](text, array, aux, maxLCEj, i, maxLCE, distance, upper-1)
					} else {
						i += lookaheadNSS[I](text, array, aux, maxLCEj, i, maxLCE, distance, upper-1) - 1
					}
					j = array[i]
					l = lce.withoutBounds(j, i, 0)
				}
			}

			nextJ = func() {
				if array[j] > j {
					j = recoverPSS(lce, array, j)
					l = lce.withoutBounds(j, i, 0)
				} else {
					j = array[j]
					autoLCE()
				}
			}

			for i = lower; i < upper; i++ {
				j = i - 1
				autoLCE()
				for text[j+l] > text[i+l] {
					aux[j] = i
					nextJ()
				}
				array[i] = j
			}
		}(I(tn))
	}
	wg.Wait()

	array[0], array[n-1] = n, n
	aux[n-1] = n
	aux[0] = n - 1
	j := n - 2
	for j > 0 {
		aux[j] = n - 1
		j = array[j]
	}

	return array, aux
}

// PSSAndLyndonArrayParallel is the parallel counterpart to
// PSSAndLyndonArray; see PSSArrayParallel for the partitioning and
// chain-recovery strategy.
func PSSAndLyndonArrayParallel[I Index](text []byte, threshold I, threads int) (pss, lyndon []I) {
	n := I(len(text))
	warnTypeWidth[I](len(text), "xss.PSSAndLyndonArrayParallel")
	threshold = fixThreshold(threshold)

	array := make([]I, n)
	aux := make([]I, n)
	marker := scratchMarker[I](n)
	for k := range array {
		array[k] = marker
	}
	array[0] = 0

	lce := lceContext[I]{text: text}
	p := clampThreads[I](threads, n)

	var wg sync.WaitGroup
	for tn := 0; tn < p; tn++ {
		wg.Add(1)
		go func(tn I) {
			defer wg.Done()
			lower, upper := sliceBounds(tn, I(p), n)
			var i, j, l I

			var autoLCE, nextJ func()

			autoLCE = func() {
				l = lce.withoutBounds(j, i, 0)
				if l <= threshold {
					return
				}
				maxLCE, maxLCEj := l, j
				for text[j+l] > text[i+l] {
					if array[j] > j {
						return
					}
					aux[j] = i - j
					j = array[j]
					l = lce.withoutBounds(j, i, 0)
					if l >= maxLCE {
						maxLCE, maxLCEj = l, j
					}
				}
				array[i] = j

				if maxLCEj > lower {
					distance := i - maxLCEj
					if maxLCE >= 2*distance {
						i = runExtensionLyndon[I](text, array, aux, maxLCEj, i, maxLCE, distance, upper-1)
					} else {
						i += lookaheadLyndon[I](text, array, aux, maxLCEj, i, maxLCE, distance, upper-1) - 1
					}
					j = array[i]
					l = lce.withoutBounds(j, i, 0)
				}
			}

			nextJ = func() {
				if array[j] > j {
					j = recoverPSS(lce, array, j)
					l = lce.withoutBounds(j, i, 0)
				} else {
					j = array[j]
					autoLCE()
				}
			}

			for i = lower; i < upper; i++ {
				j = i - 1
				autoLCE()
				for text[j+l] > text[i+l] {
					aux[j] = i - j
					nextJ()
				}
				array[i] = j
			}
		}(I(tn))
	}
	wg.Wait()

	array[0], array[n-1] = n, n
	aux[n-1] = 1
	aux[0] = n - 1
	j := n - 2
	for j > 0 {
		aux[j] = n - j - 1
		j = array[j]
	}

	return array, aux
}
