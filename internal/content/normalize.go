package content

import (
	"fmt"
	"strconv"
	"strings"
)

// normalizeQuestions converts raw LLM output to validated Questions.
// Malformed entries are dropped rather than failing the whole set; the
// returned *DataIntegrityError describes what was dropped, nil when
// everything survived.
func normalizeQuestions(raw []questionOutput) ([]Question, *DataIntegrityError) {
	var questions []Question
	var reasons []string

	for i, q := range raw {
		if reason := validateQuestion(q); reason != "" {
			reasons = append(reasons, fmt.Sprintf("question %d: %s", i+1, reason))
			continue
		}

		questions = append(questions, Question{
			ID:            fmt.Sprintf("q%d", len(questions)+1),
			Prompt:        strings.TrimSpace(q.Prompt),
			Options:       trimOptions(q.Options),
			CorrectAnswer: strings.TrimSpace(q.CorrectAnswer),
			Explanation:   strings.TrimSpace(q.Explanation),
			Difficulty:    clampDifficulty(q.Difficulty),
		})
	}

	if len(reasons) == 0 {
		return questions, nil
	}
	return questions, &DataIntegrityError{
		Dropped: len(reasons),
		Reasons: reasons,
	}
}

// validateQuestion returns a non-empty reason when the question is
// unusable.
func validateQuestion(q questionOutput) string {
	if strings.TrimSpace(q.Prompt) == "" {
		return "empty prompt"
	}
	if strings.TrimSpace(q.CorrectAnswer) == "" {
		return "empty correct answer"
	}

	if len(q.Options) > 0 {
		if len(q.Options) != 4 {
			return fmt.Sprintf("expected 4 options, got %d", len(q.Options))
		}
		found := false
		for _, opt := range q.Options {
			if strings.TrimSpace(opt) == "" {
				return "empty option"
			}
			if strings.EqualFold(strings.TrimSpace(opt), strings.TrimSpace(q.CorrectAnswer)) {
				found = true
			}
		}
		if !found {
			return "correct answer not among options"
		}
	}

	return ""
}

func normalizeLesson(raw lessonOutput) (*Lesson, error) {
	if strings.TrimSpace(raw.Title) == "" {
		return nil, fmt.Errorf("empty lesson title")
	}
	if strings.TrimSpace(raw.Introduction) == "" {
		return nil, fmt.Errorf("empty lesson introduction")
	}
	if len(raw.KeyConcepts) == 0 {
		return nil, fmt.Errorf("lesson has no key concepts")
	}

	lesson := &Lesson{
		Title:            strings.TrimSpace(raw.Title),
		Introduction:     strings.TrimSpace(raw.Introduction),
		Examples:         raw.Examples,
		Summary:          strings.TrimSpace(raw.Summary),
		EstimatedMinutes: raw.EstimatedMinutes,
	}
	if lesson.EstimatedMinutes <= 0 {
		lesson.EstimatedMinutes = 5
	}

	for _, c := range raw.KeyConcepts {
		if strings.TrimSpace(c.Name) == "" {
			continue
		}
		lesson.KeyConcepts = append(lesson.KeyConcepts, Concept{
			Name:        strings.TrimSpace(c.Name),
			Explanation: strings.TrimSpace(c.Explanation),
		})
	}
	if len(lesson.KeyConcepts) == 0 {
		return nil, fmt.Errorf("lesson has no usable key concepts")
	}

	return lesson, nil
}

func trimOptions(options []string) []string {
	if len(options) == 0 {
		return nil
	}
	out := make([]string, len(options))
	for i, o := range options {
		out[i] = strings.TrimSpace(o)
	}
	return out
}

func clampDifficulty(d float64) float64 {
	if d < 0 {
		return 0
	}
	if d > 1 {
		return 1
	}
	return d
}

// CheckAnswer compares the learner's input against the correct answer.
//
// Normalization rules:
// - Whitespace is trimmed
// - Comparison is case-insensitive
// - For multiple choice: matches against the option text or index (1-4)
func CheckAnswer(learnerAnswer string, q Question) bool {
	learnerAnswer = strings.TrimSpace(learnerAnswer)
	if learnerAnswer == "" {
		return false
	}

	if q.IsMultipleChoice() {
		// Try matching by index (1-4).
		if idx, err := strconv.Atoi(learnerAnswer); err == nil && idx >= 1 && idx <= len(q.Options) {
			return strings.EqualFold(
				strings.TrimSpace(q.Options[idx-1]),
				strings.TrimSpace(q.CorrectAnswer),
			)
		}
	}

	return strings.EqualFold(learnerAnswer, strings.TrimSpace(q.CorrectAnswer))
}
