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
	"github.com/imranulf/learnora/ent/predicate"
	"github.com/imranulf/learnora/ent/recommendationevent"
)

// RecommendationEventUpdate is the builder for updating RecommendationEvent entities.
type RecommendationEventUpdate struct {
	config
	hooks    []Hook
	mutation *RecommendationEventMutation
}

// Where appends a list predicates to the RecommendationEventUpdate builder.
func (_u *RecommendationEventUpdate) Where(ps ...predicate.RecommendationEvent) *RecommendationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *RecommendationEventUpdate) SetUserID(v string) *RecommendationEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *RecommendationEventUpdate) SetNillableUserID(v *string) *RecommendationEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetBundleID sets the "bundle_id" field.
func (_u *RecommendationEventUpdate) SetBundleID(v string) *RecommendationEventUpdate {
	_u.mutation.SetBundleID(v)
	return _u
}

// SetNillableBundleID sets the "bundle_id" field if the given value is not nil.
func (_u *RecommendationEventUpdate) SetNillableBundleID(v *string) *RecommendationEventUpdate {
	if v != nil {
		_u.SetBundleID(*v)
	}
	return _u
}

// SetGapCount sets the "gap_count" field.
func (_u *RecommendationEventUpdate) SetGapCount(v int) *RecommendationEventUpdate {
	_u.mutation.ResetGapCount()
	_u.mutation.SetGapCount(v)
	return _u
}

// SetNillableGapCount sets the "gap_count" field if the given value is not nil.
func (_u *RecommendationEventUpdate) SetNillableGapCount(v *int) *RecommendationEventUpdate {
	if v != nil {
		_u.SetGapCount(*v)
	}
	return _u
}

// AddGapCount adds value to the "gap_count" field.
func (_u *RecommendationEventUpdate) AddGapCount(v int) *RecommendationEventUpdate {
	_u.mutation.AddGapCount(v)
	return _u
}

// SetContentCount sets the "content_count" field.
func (_u *RecommendationEventUpdate) SetContentCount(v int) *RecommendationEventUpdate {
	_u.mutation.ResetContentCount()
	_u.mutation.SetContentCount(v)
	return _u
}

// SetNillableContentCount sets the "content_count" field if the given value is not nil.
func (_u *RecommendationEventUpdate) SetNillableContentCount(v *int) *RecommendationEventUpdate {
	if v != nil {
		_u.SetContentCount(*v)
	}
	return _u
}

// AddContentCount adds value to the "content_count" field.
func (_u *RecommendationEventUpdate) AddContentCount(v int) *RecommendationEventUpdate {
	_u.mutation.AddContentCount(v)
	return _u
}

// SetEstimatedMinutes sets the "estimated_minutes" field.
func (_u *RecommendationEventUpdate) SetEstimatedMinutes(v int) *RecommendationEventUpdate {
	_u.mutation.ResetEstimatedMinutes()
	_u.mutation.SetEstimatedMinutes(v)
	return _u
}

// SetNillableEstimatedMinutes sets the "estimated_minutes" field if the given value is not nil.
func (_u *RecommendationEventUpdate) SetNillableEstimatedMinutes(v *int) *RecommendationEventUpdate {
	if v != nil {
		_u.SetEstimatedMinutes(*v)
	}
	return _u
}

// AddEstimatedMinutes adds value to the "estimated_minutes" field.
func (_u *RecommendationEventUpdate) AddEstimatedMinutes(v int) *RecommendationEventUpdate {
	_u.mutation.AddEstimatedMinutes(v)
	return _u
}

// SetLearningPath sets the "learning_path" field.
func (_u *RecommendationEventUpdate) SetLearningPath(v []string) *RecommendationEventUpdate {
	_u.mutation.SetLearningPath(v)
	return _u
}

// AppendLearningPath appends value to the "learning_path" field.
func (_u *RecommendationEventUpdate) AppendLearningPath(v []string) *RecommendationEventUpdate {
	_u.mutation.AppendLearningPath(v)
	return _u
}

// Mutation returns the RecommendationEventMutation object of the builder.
func (_u *RecommendationEventUpdate) Mutation() *RecommendationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RecommendationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecommendationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RecommendationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecommendationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecommendationEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := recommendationevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "RecommendationEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BundleID(); ok {
		if err := recommendationevent.BundleIDValidator(v); err != nil {
			return &ValidationError{Name: "bundle_id", err: fmt.Errorf(`ent: validator failed for field "RecommendationEvent.bundle_id": %w`, err)}
		}
	}
	return nil
}

func (_u *RecommendationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recommendationevent.Table, recommendationevent.Columns, sqlgraph.NewFieldSpec(recommendationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(recommendationevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.BundleID(); ok {
		_spec.SetField(recommendationevent.FieldBundleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GapCount(); ok {
		_spec.SetField(recommendationevent.FieldGapCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGapCount(); ok {
		_spec.AddField(recommendationevent.FieldGapCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContentCount(); ok {
		_spec.SetField(recommendationevent.FieldContentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedContentCount(); ok {
		_spec.AddField(recommendationevent.FieldContentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EstimatedMinutes(); ok {
		_spec.SetField(recommendationevent.FieldEstimatedMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedMinutes(); ok {
		_spec.AddField(recommendationevent.FieldEstimatedMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LearningPath(); ok {
		_spec.SetField(recommendationevent.FieldLearningPath, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLearningPath(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, recommendationevent.FieldLearningPath, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recommendationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RecommendationEventUpdateOne is the builder for updating a single RecommendationEvent entity.
type RecommendationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RecommendationEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *RecommendationEventUpdateOne) SetUserID(v string) *RecommendationEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *RecommendationEventUpdateOne) SetNillableUserID(v *string) *RecommendationEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetBundleID sets the "bundle_id" field.
func (_u *RecommendationEventUpdateOne) SetBundleID(v string) *RecommendationEventUpdateOne {
	_u.mutation.SetBundleID(v)
	return _u
}

// SetNillableBundleID sets the "bundle_id" field if the given value is not nil.
func (_u *RecommendationEventUpdateOne) SetNillableBundleID(v *string) *RecommendationEventUpdateOne {
	if v != nil {
		_u.SetBundleID(*v)
	}
	return _u
}

// SetGapCount sets the "gap_count" field.
func (_u *RecommendationEventUpdateOne) SetGapCount(v int) *RecommendationEventUpdateOne {
	_u.mutation.ResetGapCount()
	_u.mutation.SetGapCount(v)
	return _u
}

// SetNillableGapCount sets the "gap_count" field if the given value is not nil.
func (_u *RecommendationEventUpdateOne) SetNillableGapCount(v *int) *RecommendationEventUpdateOne {
	if v != nil {
		_u.SetGapCount(*v)
	}
	return _u
}

// AddGapCount adds value to the "gap_count" field.
func (_u *RecommendationEventUpdateOne) AddGapCount(v int) *RecommendationEventUpdateOne {
	_u.mutation.AddGapCount(v)
	return _u
}

// SetContentCount sets the "content_count" field.
func (_u *RecommendationEventUpdateOne) SetContentCount(v int) *RecommendationEventUpdateOne {
	_u.mutation.ResetContentCount()
	_u.mutation.SetContentCount(v)
	return _u
}

// SetNillableContentCount sets the "content_count" field if the given value is not nil.
func (_u *RecommendationEventUpdateOne) SetNillableContentCount(v *int) *RecommendationEventUpdateOne {
	if v != nil {
		_u.SetContentCount(*v)
	}
	return _u
}

// AddContentCount adds value to the "content_count" field.
func (_u *RecommendationEventUpdateOne) AddContentCount(v int) *RecommendationEventUpdateOne {
	_u.mutation.AddContentCount(v)
	return _u
}

// SetEstimatedMinutes sets the "estimated_minutes" field.
func (_u *RecommendationEventUpdateOne) SetEstimatedMinutes(v int) *RecommendationEventUpdateOne {
	_u.mutation.ResetEstimatedMinutes()
	_u.mutation.SetEstimatedMinutes(v)
	return _u
}

// SetNillableEstimatedMinutes sets the "estimated_minutes" field if the given value is not nil.
func (_u *RecommendationEventUpdateOne) SetNillableEstimatedMinutes(v *int) *RecommendationEventUpdateOne {
	if v != nil {
		_u.SetEstimatedMinutes(*v)
	}
	return _u
}

// AddEstimatedMinutes adds value to the "estimated_minutes" field.
func (_u *RecommendationEventUpdateOne) AddEstimatedMinutes(v int) *RecommendationEventUpdateOne {
	_u.mutation.AddEstimatedMinutes(v)
	return _u
}

// SetLearningPath sets the "learning_path" field.
func (_u *RecommendationEventUpdateOne) SetLearningPath(v []string) *RecommendationEventUpdateOne {
	_u.mutation.SetLearningPath(v)
	return _u
}

// AppendLearningPath appends value to the "learning_path" field.
func (_u *RecommendationEventUpdateOne) AppendLearningPath(v []string) *RecommendationEventUpdateOne {
	_u.mutation.AppendLearningPath(v)
	return _u
}

// Mutation returns the RecommendationEventMutation object of the builder.
func (_u *RecommendationEventUpdateOne) Mutation() *RecommendationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the RecommendationEventUpdate builder.
func (_u *RecommendationEventUpdateOne) Where(ps ...predicate.RecommendationEvent) *RecommendationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RecommendationEventUpdateOne) Select(field string, fields ...string) *RecommendationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RecommendationEvent entity.
func (_u *RecommendationEventUpdateOne) Save(ctx context.Context) (*RecommendationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecommendationEventUpdateOne) SaveX(ctx context.Context) *RecommendationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RecommendationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecommendationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecommendationEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := recommendationevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "RecommendationEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BundleID(); ok {
		if err := recommendationevent.BundleIDValidator(v); err != nil {
			return &ValidationError{Name: "bundle_id", err: fmt.Errorf(`ent: validator failed for field "RecommendationEvent.bundle_id": %w`, err)}
		}
	}
	return nil
}

func (_u *RecommendationEventUpdateOne) sqlSave(ctx context.Context) (_node *RecommendationEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recommendationevent.Table, recommendationevent.Columns, sqlgraph.NewFieldSpec(recommendationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RecommendationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, recommendationevent.FieldID)
		for _, f := range fields {
			if !recommendationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != recommendationevent.FieldID {
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
		_spec.SetField(recommendationevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.BundleID(); ok {
		_spec.SetField(recommendationevent.FieldBundleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GapCount(); ok {
		_spec.SetField(recommendationevent.FieldGapCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGapCount(); ok {
		_spec.AddField(recommendationevent.FieldGapCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContentCount(); ok {
		_spec.SetField(recommendationevent.FieldContentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedContentCount(); ok {
		_spec.AddField(recommendationevent.FieldContentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EstimatedMinutes(); ok {
		_spec.SetField(recommendationevent.FieldEstimatedMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedMinutes(); ok {
		_spec.AddField(recommendationevent.FieldEstimatedMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LearningPath(); ok {
		_spec.SetField(recommendationevent.FieldLearningPath, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLearningPath(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, recommendationevent.FieldLearningPath, value)
		})
	}
	_node = &RecommendationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recommendationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
