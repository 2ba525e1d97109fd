package xss

// Run describes a maximal periodic factor of text with exponent >= 2: the
// factor spans [Start, Start+Length) interior positions and repeats with
// the given Period (Period <= Length/2).
type Run[I Index] struct {
	Start, Period, Length I
}

type distanceEdge[I Index] struct {
	distance, lce I
}

type targetEdge[I Index] struct {
	target, lce I
}

type nssEdge[I Index] struct {
	distance, llce, rlce I
}

// computeUnidirectionalRuns finds every maximal run whose left border is
// "increasing" (the character immediately left of the run's start is
// lexicographically greater across a period shift) or "decreasing"
// (lexicographically smaller). ComputeRuns calls this once per direction
// and merges the two sorted outputs, since together they cover every run.
func computeUnidirectionalRuns[I Index](text []byte, n I, increasing bool) []Run[I] {
	compare := func(i, j, lce I) bool {
		if increasing {
			return j > 0 && text[i+lce] > text[j+lce]
		}
		return text[i+lce] < text[j+lce]
	}

	getRLCE := func(i, j, lce I) I {
		for text[i+lce] == text[j+lce] {
			lce++
		}
		return lce
	}

	getLLCE := func(i, j, llce I) I {
		for text[i-llce] == text[j-llce] {
			llce++
		}
		return llce
	}

	var stack []targetEdge[I]
	topJ := func() I { return stack[len(stack)-1].target }
	topLCE := func() I { return stack[len(stack)-1].lce }
	pop := func() { stack = stack[:len(stack)-1] }
	push := func(j, lce I) { stack = append(stack, targetEdge[I]{target: j, lce: lce}) }

	push(0, 0)
	push(1, 0)

	firstEdgeOfNode := make([]I, n+1)
	edges := make([]distanceEdge[I], 0, 2*n)

	firstEdgeOfNode[1] = 0
	edges = append(edges, distanceEdge[I]{distance: 1, lce: 0})

	distance := I(1)
	rhs := I(1)
	for i := I(2); i < n-1; i++ {
		firstEdgeOfNode[i] = I(len(edges))

		copyFrom := i - distance
		stopEdge := firstEdgeOfNode[copyFrom+1]
		e := firstEdgeOfNode[copyFrom]

		for ; e < stopEdge; e++ {
			if i+edges[e].lce < rhs {
				edges = append(edges, edges[e])
			} else {
				break
			}
		}

		if e == stopEdge {
			target := i - edges[len(edges)-1].distance
			for topJ() > target {
				pop()
			}
			push(i, edges[len(edges)-1].lce)
			continue
		}

		j := i - edges[e].distance
		var startLCE I
		if rhs > i {
			startLCE = rhs - i
		}
		lce := getRLCE(i, j, startLCE)
		rhs = i + lce
		distance = i - j
		edges = append(edges, distanceEdge[I]{distance: distance, lce: lce})

		for topJ() > j {
			pop()
		}

		for compare(i, j, lce) {
			if topLCE() < lce {
				lce = topLCE()
				pop()
				edges = append(edges, distanceEdge[I]{distance: i - topJ(), lce: lce})
				break
			}

			pop()
			j = topJ()
			lce = getRLCE(i, j, lce)
			rhs = i + lce
			distance = i - j
			edges = append(edges, distanceEdge[I]{distance: distance, lce: lce})
		}

		push(i, lce)
	}

	firstEdgeOfNode[n-1] = I(len(edges))
	for topJ() > 0 {
		edges = append(edges, distanceEdge[I]{distance: n - 1 - topJ(), lce: 0})
		pop()
	}
	firstEdgeOfNode[n] = I(len(edges)) + 1

	nssEdges := make([]nssEdge[I], n)
	for i := I(1); i < n; i++ {
		e := firstEdgeOfNode[i]
		endEdge := firstEdgeOfNode[i+1] - 1 // last edge is the PSS edge, not an NSS edge
		for ; e < endEdge; e++ {
			nssEdges[i-edges[e].distance] = nssEdge[I]{distance: edges[e].distance, rlce: edges[e].lce}
		}
	}

	nssEdges[n-2].llce = 0
	lhs := n - 2
	distance = 1

	for i := n - 3; i > 0; i-- {
		if i > lhs+nssEdges[i+distance].llce {
			nssEdges[i].llce = nssEdges[i+distance].llce
			continue
		}

		var startLLCE I
		if lhs < i {
			startLLCE = i - lhs
		}
		nssEdges[i].llce = getLLCE(i, i+nssEdges[i].distance, startLLCE)
		lhs = i - nssEdges[i].llce
		distance = nssEdges[i].distance
	}

	countRunsAtIdx := make([]I, n)
	for i := I(1); i < n-1; i++ {
		if nssEdges[i].distance < nssEdges[i].llce+nssEdges[i].rlce {
			countRunsAtIdx[i-nssEdges[i].llce+1]++
		}
	}

	var leftBorder I
	for i := I(1); i < n-1; i++ {
		gsize := countRunsAtIdx[i]
		countRunsAtIdx[i] = leftBorder
		leftBorder += gsize
	}

	runs := make([]Run[I], leftBorder)

	for i := I(1); i < n-1; i++ {
		if nssEdges[i].distance < nssEdges[i].llce+nssEdges[i].rlce {
			slot := i - nssEdges[i].llce + 1
			runs[countRunsAtIdx[slot]] = Run[I]{
				Start:  slot,
				Period: nssEdges[i].distance,
				Length: nssEdges[i].distance + nssEdges[i].llce + nssEdges[i].rlce - 1,
			}
			countRunsAtIdx[slot]++
		}
	}

	if len(runs) == 0 {
		return runs
	}

	leftBorder = 1
	for i := I(1); i < I(len(runs)); i++ {
		if runs[i] != runs[i-1] {
			runs[leftBorder] = runs[i]
			leftBorder++
		}
	}

	return runs[:leftBorder]
}

// ComputeRuns finds every maximal periodic factor of text with exponent >=
// 2, combining the increasing- and decreasing-border passes. text must
// satisfy the sentinel contract checked by Validate.
func ComputeRuns[I Index](text []byte) []Run[I] {
	n := I(len(text))
	increasing := computeUnidirectionalRuns[I](text, n, true)
	decreasing := computeUnidirectionalRuns[I](text, n, false)

	result := make([]Run[I], 0, len(increasing)+len(decreasing))
	a, b := 0, 0
	less := func(x, y Run[I]) bool {
		return x.Start < y.Start || (x.Start == y.Start && x.Period < y.Period)
	}
	for a < len(increasing) && b < len(decreasing) {
		if less(decreasing[b], increasing[a]) {
			result = append(result, decreasing[b])
			b++
		} else {
			result = append(result, increasing[a])
			a++
		}
	}
	result = append(result, increasing[a:]...)
	result = append(result, decreasing[b:]...)
	return result
}
