package xss

import (
	"math/rand/v2"
	"testing"
)

// runAgainstReference drives a telescopeStack through a random sequence of
// pushes (of strictly increasing values) and pops, checking top() after
// every operation against a plain slice.
func runAgainstReference(t *testing.T, stack telescopeStack[uint32], ops int, rng *rand.Rand) {
	t.Helper()
	var reference []uint32
	var next uint32 = 1

	for step := 0; step < ops; step++ {
		doPush := len(reference) == 0 || rng.IntN(3) != 0
		if doPush {
			reference = append(reference, next)
			stack.push(next)
			next += uint32(1 + rng.IntN(5))
		} else {
			reference = reference[:len(reference)-1]
			stack.pop()
		}

		if stack.empty() != (len(reference) == 0) {
			t.Fatalf("step=%d: empty() = %v, want %v", step, stack.empty(), len(reference) == 0)
		}
		if len(reference) > 0 {
			want := reference[len(reference)-1]
			if got := stack.top(); got != want {
				t.Fatalf("step=%d: top() = %d, want %d", step, got, want)
			}
		}
	}
}

func TestUnbufferedTelescopeStack(t *testing.T) {
	rng := rand.New(rand.NewPCG(40, 40))
	runAgainstReference(t, newUnbufferedTelescopeStack[uint32](), 2000, rng)
}

func TestBufferedTelescopeStack(t *testing.T) {
	rng := rand.New(rand.NewPCG(41, 41))
	for _, capacity := range []int{1, 4, 37} {
		runAgainstReference(t, newBufferedTelescopeStack[uint32](capacity), 2000, rng)
	}
}

func TestReverseTelescopeStackEmptyTopIsSentinel(t *testing.T) {
	var s reverseTelescopeStack[uint32]
	if !s.empty() {
		t.Fatal("new reverseTelescopeStack should be empty")
	}
	if got := s.top(); got != ^uint32(0) {
		t.Fatalf("top() on empty stack = %d, want max uint32", got)
	}

	s.push(5)
	s.push(9)
	if got := s.top(); got != 9 {
		t.Fatalf("top() = %d, want 9", got)
	}
	s.pop()
	if got := s.top(); got != 5 {
		t.Fatalf("top() = %d, want 5", got)
	}
	s.pop()
	if !s.empty() {
		t.Fatal("stack should be empty after popping every pushed value")
	}
}
