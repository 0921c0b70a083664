package problem

import "testing"

func TestAnswerEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Answer
		want bool
	}{
		{"numbers equal", Number(5), Number(5), true},
		{"numbers differ", Number(5), Number(6), false},
		{"tokens equal", Token("Same"), Token("same"), true},
		{"tokens differ", Token("odd"), Token("even"), false},
		{"numeric token", Token("7"), Number(7), true},
		{"numeric token reversed", Number(7), Token("7"), true},
		{"word token vs number", Token("cow"), Number(0), false},
		{"zero matches nothing", Answer{}, Number(0), false},
		{"zero vs zero", Answer{}, Answer{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseAnswer(t *testing.T) {
	if a := ParseAnswer(" 12 "); !a.IsNumber() || a.String() != "12" {
		t.Errorf("ParseAnswer(12) = %v", a)
	}
	if a := ParseAnswer("Horse"); a.IsNumber() || a.String() != "horse" {
		t.Errorf("ParseAnswer(Horse) = %v", a)
	}
	if a := ParseAnswer("   "); !a.IsZero() {
		t.Errorf("ParseAnswer(blank) = %v, want zero", a)
	}
}

func TestAnswerSet(t *testing.T) {
	set := AnswerSet{
		{Value: Number(3)},
		{Value: Number(5), Correct: true},
		{Value: Number(8)},
	}
	if set.CorrectIndex() != 1 {
		t.Errorf("CorrectIndex() = %d, want 1", set.CorrectIndex())
	}
	if !set.Contains(Token("8")) {
		t.Error("Contains(\"8\") = false")
	}
	if set.Contains(Number(4)) {
		t.Error("Contains(4) = true")
	}
}
