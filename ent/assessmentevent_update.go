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
	"github.com/imranulf/learnora/ent/assessmentevent"
	"github.com/imranulf/learnora/ent/predicate"
)

// AssessmentEventUpdate is the builder for updating AssessmentEvent entities.
type AssessmentEventUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentEventMutation
}

// Where appends a list predicates to the AssessmentEventUpdate builder.
func (_u *AssessmentEventUpdate) Where(ps ...predicate.AssessmentEvent) *AssessmentEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AssessmentEventUpdate) SetUserID(v string) *AssessmentEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableUserID(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AssessmentEventUpdate) SetSessionID(v string) *AssessmentEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableSessionID(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSkills sets the "skills" field.
func (_u *AssessmentEventUpdate) SetSkills(v []string) *AssessmentEventUpdate {
	_u.mutation.SetSkills(v)
	return _u
}

// AppendSkills appends value to the "skills" field.
func (_u *AssessmentEventUpdate) AppendSkills(v []string) *AssessmentEventUpdate {
	_u.mutation.AppendSkills(v)
	return _u
}

// SetTheta sets the "theta" field.
func (_u *AssessmentEventUpdate) SetTheta(v float64) *AssessmentEventUpdate {
	_u.mutation.ResetTheta()
	_u.mutation.SetTheta(v)
	return _u
}

// SetNillableTheta sets the "theta" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableTheta(v *float64) *AssessmentEventUpdate {
	if v != nil {
		_u.SetTheta(*v)
	}
	return _u
}

// AddTheta adds value to the "theta" field.
func (_u *AssessmentEventUpdate) AddTheta(v float64) *AssessmentEventUpdate {
	_u.mutation.AddTheta(v)
	return _u
}

// SetStandardError sets the "standard_error" field.
func (_u *AssessmentEventUpdate) SetStandardError(v float64) *AssessmentEventUpdate {
	_u.mutation.ResetStandardError()
	_u.mutation.SetStandardError(v)
	return _u
}

// SetNillableStandardError sets the "standard_error" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableStandardError(v *float64) *AssessmentEventUpdate {
	if v != nil {
		_u.SetStandardError(*v)
	}
	return _u
}

// AddStandardError adds value to the "standard_error" field.
func (_u *AssessmentEventUpdate) AddStandardError(v float64) *AssessmentEventUpdate {
	_u.mutation.AddStandardError(v)
	return _u
}

// SetItemsAsked sets the "items_asked" field.
func (_u *AssessmentEventUpdate) SetItemsAsked(v int) *AssessmentEventUpdate {
	_u.mutation.ResetItemsAsked()
	_u.mutation.SetItemsAsked(v)
	return _u
}

// SetNillableItemsAsked sets the "items_asked" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableItemsAsked(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetItemsAsked(*v)
	}
	return _u
}

// AddItemsAsked adds value to the "items_asked" field.
func (_u *AssessmentEventUpdate) AddItemsAsked(v int) *AssessmentEventUpdate {
	_u.mutation.AddItemsAsked(v)
	return _u
}

// SetEarlyTermination sets the "early_termination" field.
func (_u *AssessmentEventUpdate) SetEarlyTermination(v bool) *AssessmentEventUpdate {
	_u.mutation.SetEarlyTermination(v)
	return _u
}

// SetNillableEarlyTermination sets the "early_termination" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableEarlyTermination(v *bool) *AssessmentEventUpdate {
	if v != nil {
		_u.SetEarlyTermination(*v)
	}
	return _u
}

// SetConceptMapScore sets the "concept_map_score" field.
func (_u *AssessmentEventUpdate) SetConceptMapScore(v float64) *AssessmentEventUpdate {
	_u.mutation.ResetConceptMapScore()
	_u.mutation.SetConceptMapScore(v)
	return _u
}

// SetNillableConceptMapScore sets the "concept_map_score" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableConceptMapScore(v *float64) *AssessmentEventUpdate {
	if v != nil {
		_u.SetConceptMapScore(*v)
	}
	return _u
}

// AddConceptMapScore adds value to the "concept_map_score" field.
func (_u *AssessmentEventUpdate) AddConceptMapScore(v float64) *AssessmentEventUpdate {
	_u.mutation.AddConceptMapScore(v)
	return _u
}

// ClearConceptMapScore clears the value of the "concept_map_score" field.
func (_u *AssessmentEventUpdate) ClearConceptMapScore() *AssessmentEventUpdate {
	_u.mutation.ClearConceptMapScore()
	return _u
}

// SetGraderScore sets the "grader_score" field.
func (_u *AssessmentEventUpdate) SetGraderScore(v float64) *AssessmentEventUpdate {
	_u.mutation.ResetGraderScore()
	_u.mutation.SetGraderScore(v)
	return _u
}

// SetNillableGraderScore sets the "grader_score" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableGraderScore(v *float64) *AssessmentEventUpdate {
	if v != nil {
		_u.SetGraderScore(*v)
	}
	return _u
}

// AddGraderScore adds value to the "grader_score" field.
func (_u *AssessmentEventUpdate) AddGraderScore(v float64) *AssessmentEventUpdate {
	_u.mutation.AddGraderScore(v)
	return _u
}

// ClearGraderScore clears the value of the "grader_score" field.
func (_u *AssessmentEventUpdate) ClearGraderScore() *AssessmentEventUpdate {
	_u.mutation.ClearGraderScore()
	return _u
}

// SetGraderPath sets the "grader_path" field.
func (_u *AssessmentEventUpdate) SetGraderPath(v string) *AssessmentEventUpdate {
	_u.mutation.SetGraderPath(v)
	return _u
}

// SetNillableGraderPath sets the "grader_path" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableGraderPath(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetGraderPath(*v)
	}
	return _u
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_u *AssessmentEventUpdate) Mutation() *AssessmentEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := assessmentevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := assessmentevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentevent.Table, assessmentevent.Columns, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(assessmentevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(assessmentevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Skills(); ok {
		_spec.SetField(assessmentevent.FieldSkills, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assessmentevent.FieldSkills, value)
		})
	}
	if value, ok := _u.mutation.Theta(); ok {
		_spec.SetField(assessmentevent.FieldTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTheta(); ok {
		_spec.AddField(assessmentevent.FieldTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StandardError(); ok {
		_spec.SetField(assessmentevent.FieldStandardError, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStandardError(); ok {
		_spec.AddField(assessmentevent.FieldStandardError, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ItemsAsked(); ok {
		_spec.SetField(assessmentevent.FieldItemsAsked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemsAsked(); ok {
		_spec.AddField(assessmentevent.FieldItemsAsked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EarlyTermination(); ok {
		_spec.SetField(assessmentevent.FieldEarlyTermination, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConceptMapScore(); ok {
		_spec.SetField(assessmentevent.FieldConceptMapScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConceptMapScore(); ok {
		_spec.AddField(assessmentevent.FieldConceptMapScore, field.TypeFloat64, value)
	}
	if _u.mutation.ConceptMapScoreCleared() {
		_spec.ClearField(assessmentevent.FieldConceptMapScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.GraderScore(); ok {
		_spec.SetField(assessmentevent.FieldGraderScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGraderScore(); ok {
		_spec.AddField(assessmentevent.FieldGraderScore, field.TypeFloat64, value)
	}
	if _u.mutation.GraderScoreCleared() {
		_spec.ClearField(assessmentevent.FieldGraderScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.GraderPath(); ok {
		_spec.SetField(assessmentevent.FieldGraderPath, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentEventUpdateOne is the builder for updating a single AssessmentEvent entity.
type AssessmentEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *AssessmentEventUpdateOne) SetUserID(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableUserID(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AssessmentEventUpdateOne) SetSessionID(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableSessionID(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSkills sets the "skills" field.
func (_u *AssessmentEventUpdateOne) SetSkills(v []string) *AssessmentEventUpdateOne {
	_u.mutation.SetSkills(v)
	return _u
}

// AppendSkills appends value to the "skills" field.
func (_u *AssessmentEventUpdateOne) AppendSkills(v []string) *AssessmentEventUpdateOne {
	_u.mutation.AppendSkills(v)
	return _u
}

// SetTheta sets the "theta" field.
func (_u *AssessmentEventUpdateOne) SetTheta(v float64) *AssessmentEventUpdateOne {
	_u.mutation.ResetTheta()
	_u.mutation.SetTheta(v)
	return _u
}

// SetNillableTheta sets the "theta" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableTheta(v *float64) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetTheta(*v)
	}
	return _u
}

// AddTheta adds value to the "theta" field.
func (_u *AssessmentEventUpdateOne) AddTheta(v float64) *AssessmentEventUpdateOne {
	_u.mutation.AddTheta(v)
	return _u
}

// SetStandardError sets the "standard_error" field.
func (_u *AssessmentEventUpdateOne) SetStandardError(v float64) *AssessmentEventUpdateOne {
	_u.mutation.ResetStandardError()
	_u.mutation.SetStandardError(v)
	return _u
}

// SetNillableStandardError sets the "standard_error" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableStandardError(v *float64) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetStandardError(*v)
	}
	return _u
}

// AddStandardError adds value to the "standard_error" field.
func (_u *AssessmentEventUpdateOne) AddStandardError(v float64) *AssessmentEventUpdateOne {
	_u.mutation.AddStandardError(v)
	return _u
}

// SetItemsAsked sets the "items_asked" field.
func (_u *AssessmentEventUpdateOne) SetItemsAsked(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetItemsAsked()
	_u.mutation.SetItemsAsked(v)
	return _u
}

// SetNillableItemsAsked sets the "items_asked" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableItemsAsked(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetItemsAsked(*v)
	}
	return _u
}

// AddItemsAsked adds value to the "items_asked" field.
func (_u *AssessmentEventUpdateOne) AddItemsAsked(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddItemsAsked(v)
	return _u
}

// SetEarlyTermination sets the "early_termination" field.
func (_u *AssessmentEventUpdateOne) SetEarlyTermination(v bool) *AssessmentEventUpdateOne {
	_u.mutation.SetEarlyTermination(v)
	return _u
}

// SetNillableEarlyTermination sets the "early_termination" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableEarlyTermination(v *bool) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetEarlyTermination(*v)
	}
	return _u
}

// SetConceptMapScore sets the "concept_map_score" field.
func (_u *AssessmentEventUpdateOne) SetConceptMapScore(v float64) *AssessmentEventUpdateOne {
	_u.mutation.ResetConceptMapScore()
	_u.mutation.SetConceptMapScore(v)
	return _u
}

// SetNillableConceptMapScore sets the "concept_map_score" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableConceptMapScore(v *float64) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetConceptMapScore(*v)
	}
	return _u
}

// AddConceptMapScore adds value to the "concept_map_score" field.
func (_u *AssessmentEventUpdateOne) AddConceptMapScore(v float64) *AssessmentEventUpdateOne {
	_u.mutation.AddConceptMapScore(v)
	return _u
}

// ClearConceptMapScore clears the value of the "concept_map_score" field.
func (_u *AssessmentEventUpdateOne) ClearConceptMapScore() *AssessmentEventUpdateOne {
	_u.mutation.ClearConceptMapScore()
	return _u
}

// SetGraderScore sets the "grader_score" field.
func (_u *AssessmentEventUpdateOne) SetGraderScore(v float64) *AssessmentEventUpdateOne {
	_u.mutation.ResetGraderScore()
	_u.mutation.SetGraderScore(v)
	return _u
}

// SetNillableGraderScore sets the "grader_score" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableGraderScore(v *float64) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetGraderScore(*v)
	}
	return _u
}

// AddGraderScore adds value to the "grader_score" field.
func (_u *AssessmentEventUpdateOne) AddGraderScore(v float64) *AssessmentEventUpdateOne {
	_u.mutation.AddGraderScore(v)
	return _u
}

// ClearGraderScore clears the value of the "grader_score" field.
func (_u *AssessmentEventUpdateOne) ClearGraderScore() *AssessmentEventUpdateOne {
	_u.mutation.ClearGraderScore()
	return _u
}

// SetGraderPath sets the "grader_path" field.
func (_u *AssessmentEventUpdateOne) SetGraderPath(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetGraderPath(v)
	return _u
}

// SetNillableGraderPath sets the "grader_path" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableGraderPath(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetGraderPath(*v)
	}
	return _u
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_u *AssessmentEventUpdateOne) Mutation() *AssessmentEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssessmentEventUpdate builder.
func (_u *AssessmentEventUpdateOne) Where(ps ...predicate.AssessmentEvent) *AssessmentEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentEventUpdateOne) Select(field string, fields ...string) *AssessmentEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssessmentEvent entity.
func (_u *AssessmentEventUpdateOne) Save(ctx context.Context) (*AssessmentEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEventUpdateOne) SaveX(ctx context.Context) *AssessmentEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := assessmentevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := assessmentevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentEventUpdateOne) sqlSave(ctx context.Context) (_node *AssessmentEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentevent.Table, assessmentevent.Columns, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssessmentEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessmentevent.FieldID)
		for _, f := range fields {
			if !assessmentevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessmentevent.FieldID {
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
		_spec.SetField(assessmentevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(assessmentevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Skills(); ok {
		_spec.SetField(assessmentevent.FieldSkills, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assessmentevent.FieldSkills, value)
		})
	}
	if value, ok := _u.mutation.Theta(); ok {
		_spec.SetField(assessmentevent.FieldTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTheta(); ok {
		_spec.AddField(assessmentevent.FieldTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StandardError(); ok {
		_spec.SetField(assessmentevent.FieldStandardError, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStandardError(); ok {
		_spec.AddField(assessmentevent.FieldStandardError, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ItemsAsked(); ok {
		_spec.SetField(assessmentevent.FieldItemsAsked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemsAsked(); ok {
		_spec.AddField(assessmentevent.FieldItemsAsked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EarlyTermination(); ok {
		_spec.SetField(assessmentevent.FieldEarlyTermination, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConceptMapScore(); ok {
		_spec.SetField(assessmentevent.FieldConceptMapScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConceptMapScore(); ok {
		_spec.AddField(assessmentevent.FieldConceptMapScore, field.TypeFloat64, value)
	}
	if _u.mutation.ConceptMapScoreCleared() {
		_spec.ClearField(assessmentevent.FieldConceptMapScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.GraderScore(); ok {
		_spec.SetField(assessmentevent.FieldGraderScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGraderScore(); ok {
		_spec.AddField(assessmentevent.FieldGraderScore, field.TypeFloat64, value)
	}
	if _u.mutation.GraderScoreCleared() {
		_spec.ClearField(assessmentevent.FieldGraderScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.GraderPath(); ok {
		_spec.SetField(assessmentevent.FieldGraderPath, field.TypeString, value)
	}
	_node = &AssessmentEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
