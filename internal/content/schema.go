package content

import "github.com/abhisek/learnloop/internal/llm"

// QuizSchema defines the JSON schema for LLM quiz generation responses.
var QuizSchema = &llm.Schema{
	Name:        "quiz-content",
	Description: "A set of quiz questions with answers and explanations",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":        "array",
				"description": "The generated questions, in presentation order",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"prompt": map[string]any{
							"type":        "string",
							"description": "The question text shown to the learner, in plain ASCII",
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Exactly 4 options for multiple choice. Empty array for free-form questions.",
						},
						"correct_answer": map[string]any{
							"type":        "string",
							"description": "The correct answer. For multiple choice: the text of the correct option.",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "A short worked explanation shown after the learner answers",
						},
						"difficulty": map[string]any{
							"type":        "number",
							"minimum":     0,
							"maximum":     1,
							"description": "Self-assessed difficulty from 0 (trivial) to 1 (hard)",
						},
					},
					"required":             []any{"prompt", "options", "correct_answer", "explanation", "difficulty"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

// LessonSchema defines the JSON schema for LLM lesson generation responses.
var LessonSchema = &llm.Schema{
	Name:        "lesson-content",
	Description: "Structured explanatory lesson content for a topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "A short lesson title",
			},
			"introduction": map[string]any{
				"type":        "string",
				"description": "One or two paragraphs introducing the topic",
			},
			"key_concepts": map[string]any{
				"type":        "array",
				"description": "The main ideas the lesson covers",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name": map[string]any{
							"type": "string",
						},
						"explanation": map[string]any{
							"type": "string",
						},
					},
					"required":             []any{"name", "explanation"},
					"additionalProperties": false,
				},
			},
			"examples": map[string]any{
				"type":        "array",
				"description": "Worked examples illustrating the concepts",
				"items": map[string]any{
					"type": "string",
				},
			},
			"summary": map[string]any{
				"type":        "string",
				"description": "A brief recap of the lesson",
			},
			"estimated_minutes": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"description": "Estimated reading time in minutes",
			},
		},
		"required":             []any{"title", "introduction", "key_concepts", "examples", "summary", "estimated_minutes"},
		"additionalProperties": false,
	},
}
