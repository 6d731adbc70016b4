package content

import (
	"fmt"
	"strings"
)

const quizSystemPrompt = `You are a tutor creating quiz questions for an adaptive learning app.

Rules:
- Generate the requested number of questions for the given subject, topic, and difficulty level.
- Use plain ASCII text. No LaTeX, no Unicode symbols.
- Each question must be clear, self-contained, and appropriate for the difficulty level.
- Each answer must be correct and unambiguous.
- Each explanation should briefly show why the answer is correct.
- Use multiple choice (exactly 4 options, one correct) for conceptual, comparison, or identification questions. Distractors should reflect common mistakes, not random values.
- Use free-form answers (empty options array) for short computation or recall questions.
- Questions within a set must not repeat or trivially rephrase each other.`

const lessonSystemPrompt = `You are a tutor writing a short self-contained lesson for an adaptive learning app.

Rules:
- Cover the given subject and topic at the given difficulty level.
- Use plain ASCII text. No LaTeX, no Unicode symbols.
- The introduction should motivate the topic in one or two paragraphs.
- Each key concept gets a name and a focused explanation.
- Include at least two worked examples.
- Keep the whole lesson readable in the estimated time.`

// buildQuizMessage constructs the user message for quiz generation.
func buildQuizMessage(input GenerateInput, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Subject: %s\n", input.Subject)
	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Difficulty: %s (%.2f)\n", DifficultyLabel(input.Difficulty), input.Difficulty)
	fmt.Fprintf(&b, "Number of questions: %d\n", count)
	return b.String()
}

// buildLessonMessage constructs the user message for lesson generation.
func buildLessonMessage(input GenerateInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Subject: %s\n", input.Subject)
	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Difficulty: %s (%.2f)\n", DifficultyLabel(input.Difficulty), input.Difficulty)
	return b.String()
}
