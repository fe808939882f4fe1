// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/imranulf/learnora/ent/assessmentevent"
)

// AssessmentEventCreate is the builder for creating a AssessmentEvent entity.
type AssessmentEventCreate struct {
	config
	mutation *AssessmentEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AssessmentEventCreate) SetSequence(v int64) *AssessmentEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AssessmentEventCreate) SetTimestamp(v time.Time) *AssessmentEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableTimestamp(v *time.Time) *AssessmentEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *AssessmentEventCreate) SetUserID(v string) *AssessmentEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AssessmentEventCreate) SetSessionID(v string) *AssessmentEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetSkills sets the "skills" field.
func (_c *AssessmentEventCreate) SetSkills(v []string) *AssessmentEventCreate {
	_c.mutation.SetSkills(v)
	return _c
}

// SetTheta sets the "theta" field.
func (_c *AssessmentEventCreate) SetTheta(v float64) *AssessmentEventCreate {
	_c.mutation.SetTheta(v)
	return _c
}

// SetStandardError sets the "standard_error" field.
func (_c *AssessmentEventCreate) SetStandardError(v float64) *AssessmentEventCreate {
	_c.mutation.SetStandardError(v)
	return _c
}

// SetItemsAsked sets the "items_asked" field.
func (_c *AssessmentEventCreate) SetItemsAsked(v int) *AssessmentEventCreate {
	_c.mutation.SetItemsAsked(v)
	return _c
}

// SetEarlyTermination sets the "early_termination" field.
func (_c *AssessmentEventCreate) SetEarlyTermination(v bool) *AssessmentEventCreate {
	_c.mutation.SetEarlyTermination(v)
	return _c
}

// SetNillableEarlyTermination sets the "early_termination" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableEarlyTermination(v *bool) *AssessmentEventCreate {
	if v != nil {
		_c.SetEarlyTermination(*v)
	}
	return _c
}

// SetConceptMapScore sets the "concept_map_score" field.
func (_c *AssessmentEventCreate) SetConceptMapScore(v float64) *AssessmentEventCreate {
	_c.mutation.SetConceptMapScore(v)
	return _c
}

// SetNillableConceptMapScore sets the "concept_map_score" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableConceptMapScore(v *float64) *AssessmentEventCreate {
	if v != nil {
		_c.SetConceptMapScore(*v)
	}
	return _c
}

// SetGraderScore sets the "grader_score" field.
func (_c *AssessmentEventCreate) SetGraderScore(v float64) *AssessmentEventCreate {
	_c.mutation.SetGraderScore(v)
	return _c
}

// SetNillableGraderScore sets the "grader_score" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableGraderScore(v *float64) *AssessmentEventCreate {
	if v != nil {
		_c.SetGraderScore(*v)
	}
	return _c
}

// SetGraderPath sets the "grader_path" field.
func (_c *AssessmentEventCreate) SetGraderPath(v string) *AssessmentEventCreate {
	_c.mutation.SetGraderPath(v)
	return _c
}

// SetNillableGraderPath sets the "grader_path" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableGraderPath(v *string) *AssessmentEventCreate {
	if v != nil {
		_c.SetGraderPath(*v)
	}
	return _c
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_c *AssessmentEventCreate) Mutation() *AssessmentEventMutation {
	return _c.mutation
}

// Save creates the AssessmentEvent in the database.
func (_c *AssessmentEventCreate) Save(ctx context.Context) (*AssessmentEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssessmentEventCreate) SaveX(ctx context.Context) *AssessmentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssessmentEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := assessmentevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.EarlyTermination(); !ok {
		v := assessmentevent.DefaultEarlyTermination
		_c.mutation.SetEarlyTermination(v)
	}
	if _, ok := _c.mutation.GraderPath(); !ok {
		v := assessmentevent.DefaultGraderPath
		_c.mutation.SetGraderPath(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssessmentEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AssessmentEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AssessmentEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "AssessmentEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := assessmentevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AssessmentEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := assessmentevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Skills(); !ok {
		return &ValidationError{Name: "skills", err: errors.New(`ent: missing required field "AssessmentEvent.skills"`)}
	}
	if _, ok := _c.mutation.Theta(); !ok {
		return &ValidationError{Name: "theta", err: errors.New(`ent: missing required field "AssessmentEvent.theta"`)}
	}
	if _, ok := _c.mutation.StandardError(); !ok {
		return &ValidationError{Name: "standard_error", err: errors.New(`ent: missing required field "AssessmentEvent.standard_error"`)}
	}
	if _, ok := _c.mutation.ItemsAsked(); !ok {
		return &ValidationError{Name: "items_asked", err: errors.New(`ent: missing required field "AssessmentEvent.items_asked"`)}
	}
	if _, ok := _c.mutation.EarlyTermination(); !ok {
		return &ValidationError{Name: "early_termination", err: errors.New(`ent: missing required field "AssessmentEvent.early_termination"`)}
	}
	if _, ok := _c.mutation.GraderPath(); !ok {
		return &ValidationError{Name: "grader_path", err: errors.New(`ent: missing required field "AssessmentEvent.grader_path"`)}
	}
	return nil
}

func (_c *AssessmentEventCreate) sqlSave(ctx context.Context) (*AssessmentEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AssessmentEventCreate) createSpec() (*AssessmentEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AssessmentEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assessmentevent.Table, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(assessmentevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(assessmentevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(assessmentevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(assessmentevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Skills(); ok {
		_spec.SetField(assessmentevent.FieldSkills, field.TypeJSON, value)
		_node.Skills = value
	}
	if value, ok := _c.mutation.Theta(); ok {
		_spec.SetField(assessmentevent.FieldTheta, field.TypeFloat64, value)
		_node.Theta = value
	}
	if value, ok := _c.mutation.StandardError(); ok {
		_spec.SetField(assessmentevent.FieldStandardError, field.TypeFloat64, value)
		_node.StandardError = value
	}
	if value, ok := _c.mutation.ItemsAsked(); ok {
		_spec.SetField(assessmentevent.FieldItemsAsked, field.TypeInt, value)
		_node.ItemsAsked = value
	}
	if value, ok := _c.mutation.EarlyTermination(); ok {
		_spec.SetField(assessmentevent.FieldEarlyTermination, field.TypeBool, value)
		_node.EarlyTermination = value
	}
	if value, ok := _c.mutation.ConceptMapScore(); ok {
		_spec.SetField(assessmentevent.FieldConceptMapScore, field.TypeFloat64, value)
		_node.ConceptMapScore = &value
	}
	if value, ok := _c.mutation.GraderScore(); ok {
		_spec.SetField(assessmentevent.FieldGraderScore, field.TypeFloat64, value)
		_node.GraderScore = &value
	}
	if value, ok := _c.mutation.GraderPath(); ok {
		_spec.SetField(assessmentevent.FieldGraderPath, field.TypeString, value)
		_node.GraderPath = value
	}
	return _node, _spec
}

// AssessmentEventCreateBulk is the builder for creating many AssessmentEvent entities in bulk.
type AssessmentEventCreateBulk struct {
	config
	err      error
	builders []*AssessmentEventCreate
}

// Save creates the AssessmentEvent entities in the database.
func (_c *AssessmentEventCreateBulk) Save(ctx context.Context) ([]*AssessmentEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AssessmentEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssessmentEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AssessmentEventCreateBulk) SaveX(ctx context.Context) []*AssessmentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
