package xss

// PSSArray computes the previous-smaller-suffix array of text: for every
// interior position i, PSS[i] is the largest j < i with T[j:] < T[i:]
// lexicographically, or n (len(text)) if no such j exists. text must satisfy
// the sentinel contract checked by Validate; callers that cannot guarantee
// it should call Validate first.
//
// threshold controls the LCE length above which the naive left-to-right
// walk hands off to the two-probe escape; lower values raise the floor to
// MinThreshold. DefaultThreshold is a reasonable default for most inputs.
func PSSArray[I Index](text []byte, threshold I) []I {
	n := I(len(text))
	warnTypeWidth[I](len(text), "xss.PSSArray")
	threshold = fixThreshold(threshold)

	array := make([]I, n)
	lce := lceContext[I]{text: text}

	var j, l I
	for i := I(1); i < n-1; i++ {
		j = i - 1
		l = lce.withoutBounds(j, i, 0)

		resolved := false
		if l <= threshold {
			resolved = true
			for text[j+l] > text[i+l] {
				j = array[j]
				l = lce.withoutBounds(j, i, 0)
				if l > threshold {
					resolved = false
					break
				}
			}
		}
		if resolved {
			array[i] = j
			continue
		}

		maxLCEj, maxLCE, pssOfI := findPSS(lce, array, n, j, i, l)
		array[i] = pssOfI

		distance := i - maxLCEj
		if maxLCE >= 2*distance {
			i = runExtensionPSS[I](text, array, maxLCEj, i, maxLCE, distance, n-1)
		} else {
			i += lookaheadPSS[I](text, array, maxLCEj, i, maxLCE, distance, n-1) - 1
		}
	}

	array[0], array[n-1] = n, n
	return array
}

// NSSArray computes the next-smaller-suffix array of text: for every
// interior position i, NSS[i] is the smallest j > i with T[j:] < T[i:]
// lexicographically, or n if no such j exists. See PSSArray for the input
// contract and threshold semantics.
func NSSArray[I Index](text []byte, threshold I) []I {
	n := I(len(text))
	warnTypeWidth[I](len(text), "xss.NSSArray")
	threshold = fixThreshold(threshold)

	array := make([]I, n)
	lce := lceContext[I]{text: text}

	var j, l I
	for i := I(1); i < n-1; i++ {
		j = i - 1
		l = lce.withoutBounds(j, i, 0)

		resolved := false
		if l <= threshold {
			resolved = true
			for text[j+l] > text[i+l] {
				nextJ := array[j]
				array[j] = i
				j = nextJ
				l = lce.withoutBounds(j, i, 0)
				if l > threshold {
					resolved = false
					break
				}
			}
		}
		if resolved {
			array[i] = j
			continue
		}

		maxLCEj, maxLCE, pssOfI := findPSS(lce, array, n, j, i, l)
		for j > pssOfI {
			nextJ := array[j]
			array[j] = i
			j = nextJ
		}
		array[i] = pssOfI

		distance := i - maxLCEj
		if maxLCE >= 2*distance {
			i = nssOnlyRunExtension[I](text, array, maxLCEj, i, maxLCE, distance)
		} else {
			i += nssOnlyLookahead[I](text, array, maxLCEj, i, maxLCE, distance, n-1) - 1
		}
	}

	j = n - 2
	for j > 0 {
		nextJ := array[j]
		array[j] = n - 1
		j = nextJ
	}
	array[0] = n - 1
	array[n-1] = n
	return array
}

// LyndonArray computes the Lyndon array of text: for every interior position
// i, Lyndon[i] is the length of the longest Lyndon word starting at i,
// equivalently NSS[i]-i. See PSSArray for the input contract and threshold
// semantics.
func LyndonArray[I Index](text []byte, threshold I) []I {
	n := I(len(text))
	warnTypeWidth[I](len(text), "xss.LyndonArray")
	threshold = fixThreshold(threshold)

	array := make([]I, n)
	lce := lceContext[I]{text: text}

	var j, l I
	for i := I(1); i < n-1; i++ {
		j = i - 1
		l = lce.withoutBounds(j, i, 0)

		resolved := false
		if l <= threshold {
			resolved = true
			for text[j+l] > text[i+l] {
				nextJ := array[j]
				array[j] = i - j
				j = nextJ
				l = lce.withoutBounds(j, i, 0)
				if l > threshold {
					resolved = false
					break
				}
			}
		}
		if resolved {
			array[i] = j
			continue
		}

		maxLCEj, maxLCE, pssOfI := findPSS(lce, array, n, j, i, l)
		for j > pssOfI {
			nextJ := array[j]
			array[j] = i - j
			j = nextJ
		}
		array[i] = pssOfI

		distance := i - maxLCEj
		if maxLCE >= 2*distance {
			i = lyndonOnlyRunExtension[I](text, array, maxLCEj, i, maxLCE, distance)
		} else {
			i += lyndonOnlyLookahead[I](text, array, maxLCEj, i, maxLCE, n-1) - 1
		}
	}

	j = n - 2
	for j > 0 {
		nextJ := array[j]
		array[j] = n - j - 1
		j = nextJ
	}
	array[0] = n - 1
	array[n-1] = 1
	return array
}

// PSSAndNSSArray computes the PSS and NSS arrays of text in a single sweep,
// sharing the naive walk and find-PSS escape between both outputs. See
// PSSArray for the input contract and threshold semantics.
func PSSAndNSSArray[I Index](text []byte, threshold I) (pss, nss []I) {
	n := I(len(text))
	warnTypeWidth[I](len(text), "xss.PSSAndNSSArray")
	threshold = fixThreshold(threshold)

	array := make([]I, n)
	aux := make([]I, n)
	lce := lceContext[I]{text: text}
	aux[0] = n - 1

	var j, l I
	for i := I(1); i < n-1; i++ {
		j = i - 1
		l = lce.withoutBounds(j, i, 0)

		resolved := false
		if l <= threshold {
			resolved = true
			for text[j+l] > text[i+l] {
				aux[j] = i
				j = array[j]
				l = lce.withoutBounds(j, i, 0)
				if l > threshold {
					resolved = false
					break
				}
			}
		}
		if resolved {
			array[i] = j
			continue
		}

		maxLCEj, maxLCE, pssOfI := findPSS(lce, array, n, j, i, l)
		for j > pssOfI {
			aux[j] = i
			j = array[j]
		}
		array[i] = pssOfI

		distance := i - maxLCEj
		if maxLCE >= 2*distance {
			i = runExtensionNSS[I](text, array, aux, maxLCEj, i, maxLCE, distance, n-1)
		} else {
			i += lookaheadNSS[I](text, array, aux, maxLCEj, i, maxLCE, distance, n-1) - 1
		}
	}

	array[0], array[n-1] = n, n

	j = n - 2
	for j > 0 {
		aux[j] = n - 1
		j = array[j]
	}
	aux[n-1] = n

	return array, aux
}

// PSSAndLyndonArray computes the PSS and Lyndon arrays of text in a single
// sweep, sharing the naive walk and find-PSS escape between both outputs.
// See PSSArray for the input contract and threshold semantics.
func PSSAndLyndonArray[I Index](text []byte, threshold I) (pss, lyndon []I) {
	n := I(len(text))
	warnTypeWidth[I](len(text), "xss.PSSAndLyndonArray")
	threshold = fixThreshold(threshold)

	array := make([]I, n)
	aux := make([]I, n)
	lce := lceContext[I]{text: text}
	aux[0] = n - 1

	var j, l I
	for i := I(1); i < n-1; i++ {
		j = i - 1
		l = lce.withoutBounds(j, i, 0)

		resolved := false
		if l <= threshold {
			resolved = true
			for text[j+l] > text[i+l] {
				aux[j] = i - j
				j = array[j]
				l = lce.withoutBounds(j, i, 0)
				if l > threshold {
					resolved = false
					break
				}
			}
		}
		if resolved {
			array[i] = j
			continue
		}

		maxLCEj, maxLCE, pssOfI := findPSS(lce, array, n, j, i, l)
		for j > pssOfI {
			aux[j] = i - j
			j = array[j]
		}
		array[i] = pssOfI

		distance := i - maxLCEj
		if maxLCE >= 2*distance {
			i = runExtensionLyndon[I](text, array, aux, maxLCEj, i, maxLCE, distance, n-1)
		} else {
			i += lookaheadLyndon[I](text, array, aux, maxLCEj, i, maxLCE, distance, n-1) - 1
		}
	}

	array[0], array[n-1] = n, n

	j = n - 2
	for j > 0 {
		aux[j] = n - j - 1
		j = array[j]
	}
	aux[n-1] = 1

	return array, aux
}
