package problem

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/kids-arcade/internal/level"
	"github.com/vovakirdan/kids-arcade/internal/rng"
)

// maxDrawsPerItem bounds rejection sampling for unique numbers.
const maxDrawsPerItem = 20

// UniqueNumbers draws up to count distinct integers from [1, hi]. Sampling
// is bounded; any shortfall is filled with the smallest unused values.
func UniqueNumbers(count, hi int, src rng.Source) []int {
	hi = max(hi, 1)
	count = min(max(count, 0), hi)

	used := make(map[int]bool, count)
	out := make([]int, 0, count)
	for draws := 0; len(out) < count && draws < count*maxDrawsPerItem; draws++ {
		v := src.IntRange(1, hi)
		if used[v] {
			continue
		}
		used[v] = true
		out = append(out, v)
	}
	for v := 1; len(out) < count && v <= hi; v++ {
		if !used[v] {
			used[v] = true
			out = append(out, v)
		}
	}
	return out
}

func orderedSequence(mode Mode, p level.Params, src rng.Source) Problem {
	numbers := UniqueNumbers(p.ItemCount, p.SequenceMax, src)

	targets := append([]int(nil), numbers...)
	if mode == Ascending {
		sort.Ints(targets)
	} else {
		sort.Sort(sort.Reverse(sort.IntSlice(targets)))
	}
	shuffleInts(numbers, src)

	question := "Pop the bubbles from smallest to largest!"
	if mode == Descending {
		question = "Pop the bubbles from largest to smallest!"
	}
	return Problem{
		Mode:     mode,
		Level:    p.Level,
		Operands: append([]int(nil), targets...),
		Display:  Display{Question: question},
		Sequence: &Sequence{Numbers: numbers, Targets: targets, Ordered: true},
	}
}

// paritySequence picks a shuffled subset of the even or odd numbers in
// [1, SequenceMax]. Small pools yield fewer bubbles than requested.
func paritySequence(mode Mode, p level.Params, src rng.Source) Problem {
	start, word := 1, TokenOdd
	if mode == EvenFilter {
		start, word = 2, TokenEven
	}
	var pool []int
	for v := start; v <= max(p.SequenceMax, 1); v += 2 {
		pool = append(pool, v)
	}
	shuffleInts(pool, src)
	targets := pool[:min(max(p.ItemCount, 0), len(pool))]

	numbers := append([]int(nil), targets...)
	shuffleInts(numbers, src)

	return Problem{
		Mode:     mode,
		Level:    p.Level,
		Operands: append([]int(nil), targets...),
		Display:  Display{Question: fmt.Sprintf("Pop all the %s numbers!", word)},
		Sequence: &Sequence{Numbers: numbers, Targets: targets},
	}
}

func shuffleInts(s []int, src rng.Source) {
	src.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
}
