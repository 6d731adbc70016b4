package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent journals one answer submission: the question as shown,
// what the learner picked, and how long they took. Stored denormalized
// so history survives even though sessions themselves are in-memory.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("question_id").
			NotEmpty(),
		field.String("question_text").
			NotEmpty(),
		field.String("correct_answer").
			NotEmpty(),
		field.String("selected_answer").
			NotEmpty(),
		field.Bool("correct"),
		field.Int("latency_ms").
			Comment("Milliseconds from question display to submission"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("correct"),
	}
}
