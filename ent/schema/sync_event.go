package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SyncEvent records the outcome of best-effort calls to the remote learning
// API. Failures never surface to the learner, so this journal is the only
// place they are observable after the fact.
type SyncEvent struct {
	ent.Schema
}

func (SyncEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SyncEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Local session the call belonged to"),
		field.String("operation").
			NotEmpty().
			Comment("create-session, log-interaction, or complete-session"),
		field.Bool("success").
			Comment("Whether the remote call succeeded"),
		field.String("error_message").
			Default("").
			Comment("Error message if failed"),
		field.Int64("latency_ms").
			Default(0).
			Comment("Wall-clock time for the call"),
	}
}

func (SyncEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("operation"),
		index.Fields("success"),
	}
}
