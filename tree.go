package xss

import "github.com/bits-and-blooms/bitset"

// PSSTreeNaive builds the PSS tree of text as a balanced-parentheses bit
// vector, using a single buffered stack of ancestor positions and an O(n)
// worst-case (but not amortised-linear) naive descent per position. It is
// the reference implementation PSSTree is checked against.
//
// The encoding: position 0 opens the root, every interior position opens a
// new node as a child of its PSS and closes every descendant whose subtree
// it falls outside of, and position n-1 is encoded as a single childless
// node closing out the tree. The result is 2n+2 bits long.
func PSSTreeNaive[I Index](text []byte) *bitset.BitSet {
	n := I(len(text))
	warnTypeWidth[I](len(text), "xss.PSSTreeNaive")

	w := newParenthesesWriter(uint(n)*2 + 2)
	lce := lceContext[I]{text: text}

	stack := newBufferedTelescopeStack[I](max(int(n>>3), 1))
	stack.push(0)

	w.appendOpen()
	w.appendOpen()

	var j, l I
	for i := I(1); i < n-1; i++ {
		j = i - 1
		l = lce.withoutBounds(j, i, 0)

		for text[j+l] > text[i+l] {
			stack.pop()
			j = stack.top()
			l = lce.withoutBounds(j, i, 0)
			w.appendClose()
		}

		stack.push(i)
		w.appendOpen()
	}

	for stack.top() > 0 {
		stack.pop()
		w.appendClose()
	}
	w.appendClose()
	w.appendOpen()
	w.appendClose()
	w.appendClose()

	return w.Bits()
}

// treeFindPSS is PSSTree's two-stack escape: it descends the telescope
// stack looking for PSS(i), recording every position it pops onto a
// transient reverse stack, then restores the telescope stack to exactly
// its pre-call shape by pushing the recorded positions back. The caller is
// left to redo the descent with plain pop/appendClose calls (now cheap,
// since no further LCE computation is needed to know where to stop), which
// is the only part of the work that actually has to touch the bit vector.
func treeFindPSS[I Index](lce lceContext[I], stack telescopeStack[I], j, i, startLCE I) (maxLCEj, maxLCE, pssOfI I) {
	text := lce.text

	var reverse reverseTelescopeStack[I]
	newJ, newLCE := j, startLCE
	maxLCEj, maxLCE = j, startLCE

	for text[newJ+newLCE] > text[i+newLCE] {
		reverse.push(newJ)
		stack.pop()
		newJ = stack.top()
		newLCE = lce.withoutBounds(newJ, i, 0)
		if newLCE >= maxLCE {
			maxLCE, maxLCEj = newLCE, newJ
		}
	}
	pssOfI = newJ

	for !reverse.empty() {
		stack.push(reverse.top())
		reverse.pop()
	}
	return maxLCEj, maxLCE, pssOfI
}

// PSSTree builds the PSS tree of text as a balanced-parentheses bit vector
// (see PSSTreeNaive for the encoding), descending the telescope stack
// naively up to threshold and escaping to treeFindPSS beyond it. See
// PSSArray for the threshold semantics. Unlike the array constructors it
// applies no lookahead or run extension, and every LCE is computed from
// offset zero, so construction is not linear in the worst case: a long run
// of a single byte takes quadratic time.
func PSSTree[I Index](text []byte, threshold I) *bitset.BitSet {
	n := I(len(text))
	warnTypeWidth[I](len(text), "xss.PSSTree")
	threshold = fixThreshold(threshold)

	w := newParenthesesWriter(uint(n)*2 + 2)
	lce := lceContext[I]{text: text}

	stack := newUnbufferedTelescopeStack[I]()
	stack.push(0)

	w.appendOpen()
	w.appendOpen()

	var j, l I
	for i := I(1); i < n-1; i++ {
		j = i - 1
		l = lce.withoutBounds(j, i, 0)

		resolved := false
		if l <= threshold {
			resolved = true
			for text[j+l] > text[i+l] {
				stack.pop()
				j = stack.top()
				l = lce.withoutBounds(j, i, 0)
				w.appendClose()
				if l > threshold {
					resolved = false
					break
				}
			}
		}

		if !resolved {
			_, _, pssOfI := treeFindPSS[I](lce, stack, j, i, l)
			for stack.top() > pssOfI {
				stack.pop()
				w.appendClose()
			}
			j = pssOfI
		}

		stack.push(i)
		w.appendOpen()
	}

	for stack.top() > 0 {
		stack.pop()
		w.appendClose()
	}
	w.appendClose()
	w.appendOpen()
	w.appendClose()
	w.appendClose()

	return w.Bits()
}
