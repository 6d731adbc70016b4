// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/learnloop/ent/answerevent"
	"github.com/abhisek/learnloop/ent/llmrequestevent"
	"github.com/abhisek/learnloop/ent/schema"
	"github.com/abhisek/learnloop/ent/sessionevent"
	"github.com/abhisek/learnloop/ent/syncevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[1].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescQuestionText is the schema descriptor for question_text field.
	answereventDescQuestionText := answereventFields[2].Descriptor()
	// answerevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	answerevent.QuestionTextValidator = answereventDescQuestionText.Validators[0].(func(string) error)
	// answereventDescCorrectAnswer is the schema descriptor for correct_answer field.
	answereventDescCorrectAnswer := answereventFields[3].Descriptor()
	// answerevent.CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	answerevent.CorrectAnswerValidator = answereventDescCorrectAnswer.Validators[0].(func(string) error)
	// answereventDescSelectedAnswer is the schema descriptor for selected_answer field.
	answereventDescSelectedAnswer := answereventFields[4].Descriptor()
	// answerevent.SelectedAnswerValidator is a validator for the "selected_answer" field. It is called by the builders before save.
	answerevent.SelectedAnswerValidator = answereventDescSelectedAnswer.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescKind is the schema descriptor for kind field.
	sessioneventDescKind := sessioneventFields[2].Descriptor()
	// sessionevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	sessionevent.KindValidator = sessioneventDescKind.Validators[0].(func(string) error)
	// sessioneventDescSubject is the schema descriptor for subject field.
	sessioneventDescSubject := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultSubject holds the default value on creation for the subject field.
	sessionevent.DefaultSubject = sessioneventDescSubject.Default.(string)
	// sessioneventDescTopic is the schema descriptor for topic field.
	sessioneventDescTopic := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultTopic holds the default value on creation for the topic field.
	sessionevent.DefaultTopic = sessioneventDescTopic.Default.(string)
	// sessioneventDescDifficulty is the schema descriptor for difficulty field.
	sessioneventDescDifficulty := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultDifficulty holds the default value on creation for the difficulty field.
	sessionevent.DefaultDifficulty = sessioneventDescDifficulty.Default.(float64)
	// sessioneventDescQuestionsAttempted is the schema descriptor for questions_attempted field.
	sessioneventDescQuestionsAttempted := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultQuestionsAttempted holds the default value on creation for the questions_attempted field.
	sessionevent.DefaultQuestionsAttempted = sessioneventDescQuestionsAttempted.Default.(int)
	// sessioneventDescQuestionsCorrect is the schema descriptor for questions_correct field.
	sessioneventDescQuestionsCorrect := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultQuestionsCorrect holds the default value on creation for the questions_correct field.
	sessionevent.DefaultQuestionsCorrect = sessioneventDescQuestionsCorrect.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[8].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	synceventMixin := schema.SyncEvent{}.Mixin()
	synceventMixinFields0 := synceventMixin[0].Fields()
	_ = synceventMixinFields0
	synceventFields := schema.SyncEvent{}.Fields()
	_ = synceventFields
	// synceventDescTimestamp is the schema descriptor for timestamp field.
	synceventDescTimestamp := synceventMixinFields0[1].Descriptor()
	// syncevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	syncevent.DefaultTimestamp = synceventDescTimestamp.Default.(func() time.Time)
	// synceventDescSessionID is the schema descriptor for session_id field.
	synceventDescSessionID := synceventFields[0].Descriptor()
	// syncevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	syncevent.SessionIDValidator = synceventDescSessionID.Validators[0].(func(string) error)
	// synceventDescOperation is the schema descriptor for operation field.
	synceventDescOperation := synceventFields[1].Descriptor()
	// syncevent.OperationValidator is a validator for the "operation" field. It is called by the builders before save.
	syncevent.OperationValidator = synceventDescOperation.Validators[0].(func(string) error)
	// synceventDescErrorMessage is the schema descriptor for error_message field.
	synceventDescErrorMessage := synceventFields[3].Descriptor()
	// syncevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	syncevent.DefaultErrorMessage = synceventDescErrorMessage.Default.(string)
	// synceventDescLatencyMs is the schema descriptor for latency_ms field.
	synceventDescLatencyMs := synceventFields[4].Descriptor()
	// syncevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	syncevent.DefaultLatencyMs = synceventDescLatencyMs.Default.(int64)
}
