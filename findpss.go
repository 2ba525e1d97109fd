package xss

// scratchWindow gives find-PSS a named view over the uninitialised tail of
// the primary array, used as temporary storage for the intervening chain
// when PSS(i) cannot be identified directly from the upper probe. Confined
// to its own type so the aliasing between "output array" and "scratch
// space" stays explicit at every call site instead of being an incidental
// index trick buried in the driver.
type scratchWindow[I Index] struct {
	array []I
	n     I
}

func (s scratchWindow[I]) at(idx I) I     { return s.array[idx] }
func (s scratchWindow[I]) set(idx, v I)   { s.array[idx] = v }
func (s scratchWindow[I]) tailIndex() I   { return s.n - 1 }

// findPSS locates PSS(i) when the naive walk's LCE has climbed above the
// fast-path threshold. It maintains two probes (upper, lower) along the PSS
// chain rooted at j with monotonically non-decreasing LCEs, escaping
// pathological long common prefixes in amortised O(1) time. It also reports
// (maxLCEj, maxLCE), the position on the traversed chain with the largest
// LCE against i and that LCE value, which the caller feeds into the
// lookahead/run-extension shortcuts.
func findPSS[I Index](lce lceContext[I], array []I, n I, j, i, startLCE I) (maxLCEj, maxLCE, pssOfI I) {
	upper := j
	upperLCE := startLCE
	lower := upper
	var lowerLCE I

	text := lce.text
	for text[upper+upperLCE] > text[i+upperLCE] {
		if lower == upper {
			for k := I(0); k < upperLCE; k++ {
				lower = array[lower]
			}
			lowerLCE = lce.withUpperBound(lower, i, upperLCE)
		} else {
			lowerLCE = lce.withBothBounds(lower, i, lowerLCE, upperLCE)
		}
		if lowerLCE == upperLCE {
			upper = array[upper]
			upperLCE = lce.withLowerBound(upper, i, upperLCE)
		} else {
			break
		}
	}

	if text[upper+upperLCE] < text[i+upperLCE] {
		// PSS(i) is upper directly.
		maxLCEj, pssOfI = upper, upper
		maxLCE = upperLCE
		return
	}

	// PSS(i) lies strictly between lower and upper. Drain the intervening
	// chain into the scratch window at the tail of array -- cells that
	// have not been reached by the sweep yet and are therefore free to
	// reuse as temporary storage.
	scratch := scratchWindow[I]{array: array, n: n}
	upperIdx := scratch.tailIndex()
	lowerIdx := upperIdx
	scratch.set(upperIdx, upper)
	for upper > lower {
		lowerIdx--
		scratch.set(lowerIdx, array[upper])
		upper = array[upper]
	}
	upper = scratch.at(upperIdx)

	for {
		lowerLCE = lce.withBothBounds(scratch.at(lowerIdx), i, lowerLCE, upperLCE)
		for lowerLCE < upperLCE {
			lowerIdx++
			lowerLCE = lce.withBothBounds(scratch.at(lowerIdx), i, lowerLCE, upperLCE)
		}

		if lowerIdx == upperIdx {
			pssOfI = scratch.at(lowerIdx - 1)
			break
		}

		upperIdx--
		upperLCE = lce.withLowerBound(scratch.at(upperIdx), i, upperLCE)

		if text[scratch.at(upperIdx)+upperLCE] < text[i+upperLCE] {
			pssOfI = scratch.at(upperIdx)
			break
		}
	}

	maxLCEj = scratch.at(upperIdx)
	maxLCE = upperLCE
	return
}
