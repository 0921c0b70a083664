package problem

import (
	"strconv"
	"strings"
)

// Tokens used by categorical answers.
const (
	TokenSame = "same"
	TokenOdd  = "odd"
	TokenEven = "even"
)

type answerKind uint8

const (
	kindNone answerKind = iota
	kindNumber
	kindToken
)

// Answer is either a number or a token. The zero value matches nothing.
type Answer struct {
	kind  answerKind
	num   int
	token string
}

// Number returns a numeric answer.
func Number(n int) Answer {
	return Answer{kind: kindNumber, num: n}
}

// Token returns a categorical answer. Tokens are case-insensitive.
func Token(s string) Answer {
	return Answer{kind: kindToken, token: strings.ToLower(strings.TrimSpace(s))}
}

// ParseAnswer reads raw player input: integer literals become numbers,
// anything else a token. Empty input yields the zero Answer.
func ParseAnswer(raw string) Answer {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Answer{}
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return Number(n)
	}
	return Token(raw)
}

// IsZero reports whether the answer is unset.
func (a Answer) IsZero() bool {
	return a.kind == kindNone
}

// IsNumber reports whether the answer holds an integer.
func (a Answer) IsNumber() bool {
	return a.kind == kindNumber
}

// Int returns the numeric value, if any.
func (a Answer) Int() (int, bool) {
	return a.num, a.kind == kindNumber
}

// Equal compares two answers loosely: a token that spells an integer
// equals the same number.
func (a Answer) Equal(b Answer) bool {
	if a.kind == kindNone || b.kind == kindNone {
		return false
	}
	if a.kind == b.kind {
		if a.kind == kindNumber {
			return a.num == b.num
		}
		return a.token == b.token
	}

	num, tok := a, b
	if a.kind == kindToken {
		num, tok = b, a
	}
	n, err := strconv.Atoi(tok.token)
	return err == nil && n == num.num
}

// String renders the answer for display and storage.
func (a Answer) String() string {
	switch a.kind {
	case kindNumber:
		return strconv.Itoa(a.num)
	case kindToken:
		return a.token
	default:
		return ""
	}
}

// Option is one entry of an answer set.
type Option struct {
	Value   Answer
	Correct bool
}

// AnswerSet is the ordered list of choices shown for a problem.
type AnswerSet []Option

// Values returns the option values in order.
func (s AnswerSet) Values() []Answer {
	out := make([]Answer, len(s))
	for i, o := range s {
		out[i] = o.Value
	}
	return out
}

// CorrectIndex returns the index of the correct option, or -1.
func (s AnswerSet) CorrectIndex() int {
	for i, o := range s {
		if o.Correct {
			return i
		}
	}
	return -1
}

// Contains reports whether any option equals v.
func (s AnswerSet) Contains(v Answer) bool {
	for _, o := range s {
		if o.Value.Equal(v) {
			return true
		}
	}
	return false
}
