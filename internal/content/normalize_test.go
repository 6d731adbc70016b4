package content

import "testing"

func TestCheckAnswerFreeForm(t *testing.T) {
	q := Question{Prompt: "Capital of France?", CorrectAnswer: "Paris"}

	tests := []struct {
		name   string
		answer string
		want   bool
	}{
		{"exact match", "Paris", true},
		{"case insensitive", "paris", true},
		{"whitespace trimmed", "  Paris  ", true},
		{"wrong answer", "London", false},
		{"empty answer", "", false},
		{"whitespace only", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckAnswer(tt.answer, q); got != tt.want {
				t.Errorf("CheckAnswer(%q) = %t, want %t", tt.answer, got, tt.want)
			}
		})
	}
}

func TestCheckAnswerMultipleChoice(t *testing.T) {
	q := Question{
		Prompt:        "Which fraction is larger?",
		Options:       []string{"1/3", "1/2", "1/4", "1/5"},
		CorrectAnswer: "1/2",
	}

	tests := []struct {
		name   string
		answer string
		want   bool
	}{
		{"by text", "1/2", true},
		{"by correct index", "2", true},
		{"by wrong index", "1", false},
		{"index out of range", "5", false},
		{"zero index", "0", false},
		{"wrong text", "1/3", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckAnswer(tt.answer, q); got != tt.want {
				t.Errorf("CheckAnswer(%q) = %t, want %t", tt.answer, got, tt.want)
			}
		})
	}
}

func TestValidateQuestion(t *testing.T) {
	tests := []struct {
		name string
		q    questionOutput
		ok   bool
	}{
		{
			"valid free-form",
			questionOutput{Prompt: "2+2?", CorrectAnswer: "4", Explanation: "arithmetic"},
			true,
		},
		{
			"valid multiple choice",
			questionOutput{Prompt: "pick", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: "b"},
			true,
		},
		{
			"answer not in options",
			questionOutput{Prompt: "pick", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: "e"},
			false,
		},
		{
			"wrong option count",
			questionOutput{Prompt: "pick", Options: []string{"a", "b"}, CorrectAnswer: "a"},
			false,
		},
		{
			"blank option",
			questionOutput{Prompt: "pick", Options: []string{"a", " ", "c", "d"}, CorrectAnswer: "a"},
			false,
		},
		{
			"empty prompt",
			questionOutput{Prompt: " ", CorrectAnswer: "4"},
			false,
		},
		{
			"empty answer",
			questionOutput{Prompt: "2+2?", CorrectAnswer: ""},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason := validateQuestion(tt.q)
			if tt.ok && reason != "" {
				t.Errorf("expected valid, got reason %q", reason)
			}
			if !tt.ok && reason == "" {
				t.Error("expected a rejection reason")
			}
		})
	}
}

func TestDifficultyLabel(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0, "beginner"},
		{0.33, "beginner"},
		{0.34, "intermediate"},
		{0.5, "intermediate"},
		{0.67, "advanced"},
		{1, "advanced"},
	}

	for _, tt := range tests {
		if got := DifficultyLabel(tt.score); got != tt.want {
			t.Errorf("DifficultyLabel(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestClampDifficulty(t *testing.T) {
	if got := clampDifficulty(-0.5); got != 0 {
		t.Errorf("clampDifficulty(-0.5) = %v", got)
	}
	if got := clampDifficulty(1.5); got != 1 {
		t.Errorf("clampDifficulty(1.5) = %v", got)
	}
	if got := clampDifficulty(0.42); got != 0.42 {
		t.Errorf("clampDifficulty(0.42) = %v", got)
	}
}
