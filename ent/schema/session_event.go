package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent journals session lifecycle transitions. One row per
// start, pause, resume, or end; the latest row for a session id is its
// current state. Counters are snapshots taken at the moment of the
// transition, so a summary never needs to replay answer events.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("action").
			NotEmpty().
			Comment("start, pause, resume, or end"),
		field.String("kind").
			NotEmpty().
			Comment("lesson, quiz, or practice"),
		field.String("subject").
			Default(""),
		field.String("topic").
			Default(""),
		field.Float("difficulty").
			Default(0).
			Comment("In [0,1]"),
		field.Int("questions_attempted").
			Default(0),
		field.Int("questions_correct").
			Default(0),
		field.Int("duration_secs").
			Default(0).
			Comment("Wall-clock seconds since the session was created"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
		index.Fields("kind"),
	}
}
