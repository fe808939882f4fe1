// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/imranulf/learnora/ent/learningtimeevent"
)

// LearningTimeEventCreate is the builder for creating a LearningTimeEvent entity.
type LearningTimeEventCreate struct {
	config
	mutation *LearningTimeEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *LearningTimeEventCreate) SetSequence(v int64) *LearningTimeEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *LearningTimeEventCreate) SetTimestamp(v time.Time) *LearningTimeEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *LearningTimeEventCreate) SetNillableTimestamp(v *time.Time) *LearningTimeEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *LearningTimeEventCreate) SetUserID(v string) *LearningTimeEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetContentIds sets the "content_ids" field.
func (_c *LearningTimeEventCreate) SetContentIds(v []string) *LearningTimeEventCreate {
	_c.mutation.SetContentIds(v)
	return _c
}

// SetMinutes sets the "minutes" field.
func (_c *LearningTimeEventCreate) SetMinutes(v int) *LearningTimeEventCreate {
	_c.mutation.SetMinutes(v)
	return _c
}

// Mutation returns the LearningTimeEventMutation object of the builder.
func (_c *LearningTimeEventCreate) Mutation() *LearningTimeEventMutation {
	return _c.mutation
}

// Save creates the LearningTimeEvent in the database.
func (_c *LearningTimeEventCreate) Save(ctx context.Context) (*LearningTimeEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearningTimeEventCreate) SaveX(ctx context.Context) *LearningTimeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningTimeEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningTimeEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearningTimeEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := learningtimeevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearningTimeEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "LearningTimeEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "LearningTimeEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "LearningTimeEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := learningtimeevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LearningTimeEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentIds(); !ok {
		return &ValidationError{Name: "content_ids", err: errors.New(`ent: missing required field "LearningTimeEvent.content_ids"`)}
	}
	if _, ok := _c.mutation.Minutes(); !ok {
		return &ValidationError{Name: "minutes", err: errors.New(`ent: missing required field "LearningTimeEvent.minutes"`)}
	}
	return nil
}

func (_c *LearningTimeEventCreate) sqlSave(ctx context.Context) (*LearningTimeEvent, error) {
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

func (_c *LearningTimeEventCreate) createSpec() (*LearningTimeEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &LearningTimeEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learningtimeevent.Table, sqlgraph.NewFieldSpec(learningtimeevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(learningtimeevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(learningtimeevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(learningtimeevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ContentIds(); ok {
		_spec.SetField(learningtimeevent.FieldContentIds, field.TypeJSON, value)
		_node.ContentIds = value
	}
	if value, ok := _c.mutation.Minutes(); ok {
		_spec.SetField(learningtimeevent.FieldMinutes, field.TypeInt, value)
		_node.Minutes = value
	}
	return _node, _spec
}

// LearningTimeEventCreateBulk is the builder for creating many LearningTimeEvent entities in bulk.
type LearningTimeEventCreateBulk struct {
	config
	err      error
	builders []*LearningTimeEventCreate
}

// Save creates the LearningTimeEvent entities in the database.
func (_c *LearningTimeEventCreateBulk) Save(ctx context.Context) ([]*LearningTimeEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearningTimeEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearningTimeEventMutation)
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
func (_c *LearningTimeEventCreateBulk) SaveX(ctx context.Context) []*LearningTimeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningTimeEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningTimeEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
