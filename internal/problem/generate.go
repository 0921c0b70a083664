package problem

import (
	"fmt"

	"github.com/vovakirdan/kids-arcade/internal/level"
	"github.com/vovakirdan/kids-arcade/internal/rng"
)

// Generate builds a problem for mode at the given level parameters.
func Generate(mode Mode, p level.Params, src rng.Source) Problem {
	if p.Level < 1 {
		p.Level = 1
	}
	if p.MaxOperand < 1 {
		p.MaxOperand = 1
	}

	switch mode {
	case Addition:
		return addition(p, src)
	case Subtraction:
		return subtraction(p, src)
	case Mixed:
		if src.IntRange(0, 1) == 0 {
			return addition(p, src)
		}
		return subtraction(p, src)
	case Counting:
		return counting(p, src)
	case Comparing:
		return comparing(p, src)
	case Grouping:
		return grouping(p, src)
	case Sharing:
		return sharing(p, src)
	case Ascending, Descending:
		return orderedSequence(mode, p, src)
	case EvenFilter, OddFilter:
		return paritySequence(mode, p, src)
	default:
		panic(fmt.Sprintf("problem: unhandled mode %v", mode))
	}
}

func addition(p level.Params, src rng.Source) Problem {
	a := src.IntRange(1, p.MaxOperand)
	b := src.IntRange(1, p.MaxOperand)
	return Problem{
		Mode:     Addition,
		Level:    p.Level,
		Operands: []int{a, b},
		Answer:   Number(a + b),
		Display: Display{
			Question: fmt.Sprintf("%d + %d = ?", a, b),
			Operator: "+",
		},
	}
}

// subtraction keeps the answer strictly positive: a >= 2 and b < a.
func subtraction(p level.Params, src rng.Source) Problem {
	a := max(src.IntRange(1, p.MaxOperand), 2)
	b := src.IntRange(1, a-1)
	return Problem{
		Mode:     Subtraction,
		Level:    p.Level,
		Operands: []int{a, b},
		Answer:   Number(a - b),
		Display: Display{
			Question: fmt.Sprintf("%d - %d = ?", a, b),
			Operator: "-",
		},
	}
}

// CountRange returns the inclusive count bounds for counting problems.
func CountRange(lvl int) (lo, hi int) {
	hi = min(8+lvl/2, 20)
	lo = min(max(1, lvl/3), hi)
	return lo, hi
}

// CompareRange returns the inclusive count bounds for comparing problems.
func CompareRange(lvl int) (lo, hi int) {
	hi = min(6+lvl/2, 15)
	lo = min(max(1, lvl/4), hi)
	return lo, hi
}

// GroupingMax returns the largest count used by odd/even questions.
func GroupingMax(lvl int) int {
	return min(6+lvl/2, 18)
}

// SharingBounds returns the largest group count and per-group item count.
func SharingBounds(lvl int) (maxGroups, maxItems int) {
	return min(2+lvl/3, 6), min(1+lvl/3, 5)
}

func counting(p level.Params, src rng.Source) Problem {
	animal := Animals[src.IntRange(0, len(Animals)-1)]
	lo, hi := CountRange(p.Level)
	n := src.IntRange(lo, hi)
	return Problem{
		Mode:     Counting,
		Level:    p.Level,
		Operands: []int{n},
		Answer:   Number(n),
		Display: Display{
			Question: fmt.Sprintf("How many %s do you see?", animal.Plural),
			Animals:  []Animal{animal},
			Counts:   []int{n},
		},
	}
}

// comparing asks which of two animals there are more (or fewer) of.
// Equal counts always answer "same", whatever the framing.
func comparing(p level.Params, src rng.Source) Problem {
	i := src.IntRange(0, len(Animals)-1)
	j := src.IntRange(0, len(Animals)-2)
	if j >= i {
		j++
	}
	first, second := Animals[i], Animals[j]

	lo, hi := CompareRange(p.Level)
	c1 := src.IntRange(lo, hi)
	c2 := src.IntRange(lo, hi)
	askMore := src.IntRange(0, 1) == 1

	var answer Answer
	switch {
	case c1 == c2:
		answer = Token(TokenSame)
	case (c1 > c2) == askMore:
		answer = Token(first.Name)
	default:
		answer = Token(second.Name)
	}

	word := "fewer"
	if askMore {
		word = "more"
	}
	return Problem{
		Mode:     Comparing,
		Level:    p.Level,
		Operands: []int{c1, c2},
		Answer:   answer,
		Display: Display{
			Question: fmt.Sprintf("Are there %s %s or %s?", word, first.Plural, second.Plural),
			Animals:  []Animal{first, second},
			Counts:   []int{c1, c2},
			AskMore:  askMore,
		},
	}
}

func grouping(p level.Params, src rng.Source) Problem {
	animal := Animals[src.IntRange(0, len(Animals)-1)]
	hi := max(GroupingMax(p.Level), 2)
	wantEven := src.IntRange(0, 1) == 1

	start, token := 1, TokenOdd
	if wantEven {
		start, token = 2, TokenEven
	}
	var pool []int
	for v := start; v <= hi; v += 2 {
		pool = append(pool, v)
	}
	n := pool[src.IntRange(0, len(pool)-1)]

	return Problem{
		Mode:     Grouping,
		Level:    p.Level,
		Operands: []int{n},
		Answer:   Token(token),
		Display: Display{
			Question: fmt.Sprintf("Is the number of %s odd or even?", animal.Plural),
			Animals:  []Animal{animal},
			Counts:   []int{n},
		},
	}
}

// sharing splits total items equally between groups; total divides evenly.
func sharing(p level.Params, src rng.Source) Problem {
	animal := Animals[src.IntRange(0, len(Animals)-1)]
	maxGroups, maxItems := SharingBounds(p.Level)
	groups := src.IntRange(2, maxGroups)
	each := src.IntRange(1, maxItems)
	total := groups * each

	return Problem{
		Mode:     Sharing,
		Level:    p.Level,
		Operands: []int{total, groups},
		Answer:   Number(each),
		Display: Display{
			Question: fmt.Sprintf("Share %d %s between %d pens. How many in each pen?", total, animal.Label(total), groups),
			Animals:  []Animal{animal},
			Counts:   []int{total},
			Groups:   groups,
			Total:    total,
		},
	}
}
