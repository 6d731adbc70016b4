package content

// Question is a single generated quiz question ready for display.
type Question struct {
	// ID identifies the question within its session, e.g. "q1".
	ID string

	// Prompt is the question text displayed to the learner.
	// Plain ASCII text, self-contained.
	Prompt string

	// Options is populated only for multiple choice questions.
	// Contains exactly 4 options, one of which matches CorrectAnswer.
	Options []string

	// CorrectAnswer is the canonical correct answer as a string.
	// For multiple choice: the text of the correct option.
	CorrectAnswer string

	// Explanation is a brief worked solution shown after the learner
	// answers. Always present.
	Explanation string

	// Difficulty is the LLM's self-assessed difficulty in [0, 1].
	Difficulty float64
}

// IsMultipleChoice reports whether the learner picks from options
// rather than typing a free-form answer.
func (q Question) IsMultipleChoice() bool {
	return len(q.Options) > 0
}

// Quiz is an ordered set of questions generated for one session.
type Quiz struct {
	Subject   string
	Topic     string
	Questions []Question
}

// Lesson is generated explanatory content for a lesson session.
type Lesson struct {
	Title            string
	Introduction     string
	KeyConcepts      []Concept
	Examples         []string
	Summary          string
	EstimatedMinutes int
}

// Concept is one named idea within a lesson.
type Concept struct {
	Name        string
	Explanation string
}

// GenerateInput holds all context needed to generate session content.
type GenerateInput struct {
	// Subject is the broad area, e.g. "mathematics", "spanish".
	Subject string

	// Topic is the specific topic within the subject, e.g. "fractions".
	Topic string

	// Difficulty is the target difficulty in [0, 1].
	Difficulty float64

	// QuestionCount is how many questions to generate for a quiz.
	// Ignored for lessons. Zero means the configured default.
	QuestionCount int
}

// DifficultyLabel maps a difficulty score in [0, 1] to a prompt-friendly
// label. Scores below 0.34 are beginner, below 0.67 intermediate, and
// the rest advanced.
func DifficultyLabel(score float64) string {
	switch {
	case score < 0.34:
		return "beginner"
	case score < 0.67:
		return "intermediate"
	default:
		return "advanced"
	}
}
