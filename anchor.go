package xss

// isExtendedLyndonRun runs a Duval-style factorization over window and
// returns the longest candidate period found together with its start offset
// within window, or (0, 0) if the whole window does not factor into a
// single repeated period (i.e. it is not an "extended Lyndon run").
func isExtendedLyndonRun[I Index](window []byte) (period, start I) {
	n := I(len(window))
	var i I
	for i < n {
		j, k := i+1, i
		for j < n && window[k] <= window[j] {
			if window[k] < window[j] {
				k = i
			} else {
				k++
			}
			j++
		}
		if j-k > period {
			period = j - k
			start = i
		}
		for i <= k {
			i += j - k
		}
	}
	if 2*period > n {
		return 0, 0
	}
	for i = period; i < n; i++ {
		if window[i-period] != window[i] {
			return 0, 0
		}
	}
	return period, start
}

// anchor computes the length over which it is safe to copy previously
// computed array values with a constant offset, given a window of length L
// starting at some position i with maxLCE = L shared with an earlier
// position j. It factors the window [L/4, L) looking for a periodic run,
// then extends that run as far left as possible inside [0, L/4 + start) one
// period at a time.
func anchor[I Index](window []byte, maxLCE I) I {
	ell := maxLCE >> 2

	period, start := isExtendedLyndonRun[I](window[ell:maxLCE])
	if period == 0 {
		return ell
	}

	repetitionEq := func(l, r I) bool {
		for k := I(0); k < period; k++ {
			if window[l+k] != window[r+k] {
				return false
			}
		}
		return true
	}

	lhs := int64(ell) + int64(start) - int64(period)
	for lhs >= 0 && repetitionEq(I(lhs), I(lhs)+period) {
		lhs -= int64(period)
	}
	// lhs can go negative by at most one period past zero, so lhs+2*period
	// is always non-negative here; do the addition in int64 before the
	// unsigned conversion to avoid wraparound.
	extended := I(lhs + int64(2*period))
	if ell < extended {
		return ell
	}
	return extended
}
