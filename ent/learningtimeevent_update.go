// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/imranulf/learnora/ent/learningtimeevent"
	"github.com/imranulf/learnora/ent/predicate"
)

// LearningTimeEventUpdate is the builder for updating LearningTimeEvent entities.
type LearningTimeEventUpdate struct {
	config
	hooks    []Hook
	mutation *LearningTimeEventMutation
}

// Where appends a list predicates to the LearningTimeEventUpdate builder.
func (_u *LearningTimeEventUpdate) Where(ps ...predicate.LearningTimeEvent) *LearningTimeEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *LearningTimeEventUpdate) SetUserID(v string) *LearningTimeEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LearningTimeEventUpdate) SetNillableUserID(v *string) *LearningTimeEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetContentIds sets the "content_ids" field.
func (_u *LearningTimeEventUpdate) SetContentIds(v []string) *LearningTimeEventUpdate {
	_u.mutation.SetContentIds(v)
	return _u
}

// AppendContentIds appends value to the "content_ids" field.
func (_u *LearningTimeEventUpdate) AppendContentIds(v []string) *LearningTimeEventUpdate {
	_u.mutation.AppendContentIds(v)
	return _u
}

// SetMinutes sets the "minutes" field.
func (_u *LearningTimeEventUpdate) SetMinutes(v int) *LearningTimeEventUpdate {
	_u.mutation.ResetMinutes()
	_u.mutation.SetMinutes(v)
	return _u
}

// SetNillableMinutes sets the "minutes" field if the given value is not nil.
func (_u *LearningTimeEventUpdate) SetNillableMinutes(v *int) *LearningTimeEventUpdate {
	if v != nil {
		_u.SetMinutes(*v)
	}
	return _u
}

// AddMinutes adds value to the "minutes" field.
func (_u *LearningTimeEventUpdate) AddMinutes(v int) *LearningTimeEventUpdate {
	_u.mutation.AddMinutes(v)
	return _u
}

// Mutation returns the LearningTimeEventMutation object of the builder.
func (_u *LearningTimeEventUpdate) Mutation() *LearningTimeEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearningTimeEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningTimeEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearningTimeEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningTimeEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningTimeEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := learningtimeevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LearningTimeEvent.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningTimeEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningtimeevent.Table, learningtimeevent.Columns, sqlgraph.NewFieldSpec(learningtimeevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(learningtimeevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentIds(); ok {
		_spec.SetField(learningtimeevent.FieldContentIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedContentIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningtimeevent.FieldContentIds, value)
		})
	}
	if value, ok := _u.mutation.Minutes(); ok {
		_spec.SetField(learningtimeevent.FieldMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinutes(); ok {
		_spec.AddField(learningtimeevent.FieldMinutes, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningtimeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearningTimeEventUpdateOne is the builder for updating a single LearningTimeEvent entity.
type LearningTimeEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearningTimeEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *LearningTimeEventUpdateOne) SetUserID(v string) *LearningTimeEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LearningTimeEventUpdateOne) SetNillableUserID(v *string) *LearningTimeEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetContentIds sets the "content_ids" field.
func (_u *LearningTimeEventUpdateOne) SetContentIds(v []string) *LearningTimeEventUpdateOne {
	_u.mutation.SetContentIds(v)
	return _u
}

// AppendContentIds appends value to the "content_ids" field.
func (_u *LearningTimeEventUpdateOne) AppendContentIds(v []string) *LearningTimeEventUpdateOne {
	_u.mutation.AppendContentIds(v)
	return _u
}

// SetMinutes sets the "minutes" field.
func (_u *LearningTimeEventUpdateOne) SetMinutes(v int) *LearningTimeEventUpdateOne {
	_u.mutation.ResetMinutes()
	_u.mutation.SetMinutes(v)
	return _u
}

// SetNillableMinutes sets the "minutes" field if the given value is not nil.
func (_u *LearningTimeEventUpdateOne) SetNillableMinutes(v *int) *LearningTimeEventUpdateOne {
	if v != nil {
		_u.SetMinutes(*v)
	}
	return _u
}

// AddMinutes adds value to the "minutes" field.
func (_u *LearningTimeEventUpdateOne) AddMinutes(v int) *LearningTimeEventUpdateOne {
	_u.mutation.AddMinutes(v)
	return _u
}

// Mutation returns the LearningTimeEventMutation object of the builder.
func (_u *LearningTimeEventUpdateOne) Mutation() *LearningTimeEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearningTimeEventUpdate builder.
func (_u *LearningTimeEventUpdateOne) Where(ps ...predicate.LearningTimeEvent) *LearningTimeEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearningTimeEventUpdateOne) Select(field string, fields ...string) *LearningTimeEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearningTimeEvent entity.
func (_u *LearningTimeEventUpdateOne) Save(ctx context.Context) (*LearningTimeEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningTimeEventUpdateOne) SaveX(ctx context.Context) *LearningTimeEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearningTimeEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningTimeEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningTimeEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := learningtimeevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LearningTimeEvent.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningTimeEventUpdateOne) sqlSave(ctx context.Context) (_node *LearningTimeEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningtimeevent.Table, learningtimeevent.Columns, sqlgraph.NewFieldSpec(learningtimeevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearningTimeEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learningtimeevent.FieldID)
		for _, f := range fields {
			if !learningtimeevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learningtimeevent.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(learningtimeevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentIds(); ok {
		_spec.SetField(learningtimeevent.FieldContentIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedContentIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningtimeevent.FieldContentIds, value)
		})
	}
	if value, ok := _u.mutation.Minutes(); ok {
		_spec.SetField(learningtimeevent.FieldMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinutes(); ok {
		_spec.AddField(learningtimeevent.FieldMinutes, field.TypeInt, value)
	}
	_node = &LearningTimeEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningtimeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
