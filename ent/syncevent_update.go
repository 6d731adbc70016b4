// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/learnloop/ent/predicate"
	"github.com/abhisek/learnloop/ent/syncevent"
)

// SyncEventUpdate is the builder for updating SyncEvent entities.
type SyncEventUpdate struct {
	config
	hooks    []Hook
	mutation *SyncEventMutation
}

// Where appends a list predicates to the SyncEventUpdate builder.
func (_u *SyncEventUpdate) Where(ps ...predicate.SyncEvent) *SyncEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SyncEventUpdate) SetSessionID(v string) *SyncEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SyncEventUpdate) SetNillableSessionID(v *string) *SyncEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetOperation sets the "operation" field.
func (_u *SyncEventUpdate) SetOperation(v string) *SyncEventUpdate {
	_u.mutation.SetOperation(v)
	return _u
}

// SetNillableOperation sets the "operation" field if the given value is not nil.
func (_u *SyncEventUpdate) SetNillableOperation(v *string) *SyncEventUpdate {
	if v != nil {
		_u.SetOperation(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *SyncEventUpdate) SetSuccess(v bool) *SyncEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *SyncEventUpdate) SetNillableSuccess(v *bool) *SyncEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SyncEventUpdate) SetErrorMessage(v string) *SyncEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SyncEventUpdate) SetNillableErrorMessage(v *string) *SyncEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *SyncEventUpdate) SetLatencyMs(v int64) *SyncEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *SyncEventUpdate) SetNillableLatencyMs(v *int64) *SyncEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *SyncEventUpdate) AddLatencyMs(v int64) *SyncEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// Mutation returns the SyncEventMutation object of the builder.
func (_u *SyncEventUpdate) Mutation() *SyncEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SyncEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SyncEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SyncEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SyncEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SyncEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := syncevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SyncEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Operation(); ok {
		if err := syncevent.OperationValidator(v); err != nil {
			return &ValidationError{Name: "operation", err: fmt.Errorf(`ent: validator failed for field "SyncEvent.operation": %w`, err)}
		}
	}
	return nil
}

func (_u *SyncEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(syncevent.Table, syncevent.Columns, sqlgraph.NewFieldSpec(syncevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(syncevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Operation(); ok {
		_spec.SetField(syncevent.FieldOperation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(syncevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(syncevent.FieldErrorMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(syncevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(syncevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{syncevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SyncEventUpdateOne is the builder for updating a single SyncEvent entity.
type SyncEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SyncEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SyncEventUpdateOne) SetSessionID(v string) *SyncEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SyncEventUpdateOne) SetNillableSessionID(v *string) *SyncEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetOperation sets the "operation" field.
func (_u *SyncEventUpdateOne) SetOperation(v string) *SyncEventUpdateOne {
	_u.mutation.SetOperation(v)
	return _u
}

// SetNillableOperation sets the "operation" field if the given value is not nil.
func (_u *SyncEventUpdateOne) SetNillableOperation(v *string) *SyncEventUpdateOne {
	if v != nil {
		_u.SetOperation(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *SyncEventUpdateOne) SetSuccess(v bool) *SyncEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *SyncEventUpdateOne) SetNillableSuccess(v *bool) *SyncEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SyncEventUpdateOne) SetErrorMessage(v string) *SyncEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SyncEventUpdateOne) SetNillableErrorMessage(v *string) *SyncEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *SyncEventUpdateOne) SetLatencyMs(v int64) *SyncEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *SyncEventUpdateOne) SetNillableLatencyMs(v *int64) *SyncEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *SyncEventUpdateOne) AddLatencyMs(v int64) *SyncEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// Mutation returns the SyncEventMutation object of the builder.
func (_u *SyncEventUpdateOne) Mutation() *SyncEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SyncEventUpdate builder.
func (_u *SyncEventUpdateOne) Where(ps ...predicate.SyncEvent) *SyncEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SyncEventUpdateOne) Select(field string, fields ...string) *SyncEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SyncEvent entity.
func (_u *SyncEventUpdateOne) Save(ctx context.Context) (*SyncEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SyncEventUpdateOne) SaveX(ctx context.Context) *SyncEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SyncEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SyncEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SyncEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := syncevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SyncEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Operation(); ok {
		if err := syncevent.OperationValidator(v); err != nil {
			return &ValidationError{Name: "operation", err: fmt.Errorf(`ent: validator failed for field "SyncEvent.operation": %w`, err)}
		}
	}
	return nil
}

func (_u *SyncEventUpdateOne) sqlSave(ctx context.Context) (_node *SyncEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(syncevent.Table, syncevent.Columns, sqlgraph.NewFieldSpec(syncevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SyncEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, syncevent.FieldID)
		for _, f := range fields {
			if !syncevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != syncevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(syncevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Operation(); ok {
		_spec.SetField(syncevent.FieldOperation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(syncevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(syncevent.FieldErrorMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(syncevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(syncevent.FieldLatencyMs, field.TypeInt64, value)
	}
	_node = &SyncEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{syncevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
