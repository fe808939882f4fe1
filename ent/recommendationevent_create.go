// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/imranulf/learnora/ent/recommendationevent"
)

// RecommendationEventCreate is the builder for creating a RecommendationEvent entity.
type RecommendationEventCreate struct {
	config
	mutation *RecommendationEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *RecommendationEventCreate) SetSequence(v int64) *RecommendationEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *RecommendationEventCreate) SetTimestamp(v time.Time) *RecommendationEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *RecommendationEventCreate) SetNillableTimestamp(v *time.Time) *RecommendationEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *RecommendationEventCreate) SetUserID(v string) *RecommendationEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetBundleID sets the "bundle_id" field.
func (_c *RecommendationEventCreate) SetBundleID(v string) *RecommendationEventCreate {
	_c.mutation.SetBundleID(v)
	return _c
}

// SetGapCount sets the "gap_count" field.
func (_c *RecommendationEventCreate) SetGapCount(v int) *RecommendationEventCreate {
	_c.mutation.SetGapCount(v)
	return _c
}

// SetContentCount sets the "content_count" field.
func (_c *RecommendationEventCreate) SetContentCount(v int) *RecommendationEventCreate {
	_c.mutation.SetContentCount(v)
	return _c
}

// SetEstimatedMinutes sets the "estimated_minutes" field.
func (_c *RecommendationEventCreate) SetEstimatedMinutes(v int) *RecommendationEventCreate {
	_c.mutation.SetEstimatedMinutes(v)
	return _c
}

// SetLearningPath sets the "learning_path" field.
func (_c *RecommendationEventCreate) SetLearningPath(v []string) *RecommendationEventCreate {
	_c.mutation.SetLearningPath(v)
	return _c
}

// Mutation returns the RecommendationEventMutation object of the builder.
func (_c *RecommendationEventCreate) Mutation() *RecommendationEventMutation {
	return _c.mutation
}

// Save creates the RecommendationEvent in the database.
func (_c *RecommendationEventCreate) Save(ctx context.Context) (*RecommendationEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RecommendationEventCreate) SaveX(ctx context.Context) *RecommendationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecommendationEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecommendationEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RecommendationEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := recommendationevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RecommendationEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "RecommendationEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "RecommendationEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "RecommendationEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := recommendationevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "RecommendationEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BundleID(); !ok {
		return &ValidationError{Name: "bundle_id", err: errors.New(`ent: missing required field "RecommendationEvent.bundle_id"`)}
	}
	if v, ok := _c.mutation.BundleID(); ok {
		if err := recommendationevent.BundleIDValidator(v); err != nil {
			return &ValidationError{Name: "bundle_id", err: fmt.Errorf(`ent: validator failed for field "RecommendationEvent.bundle_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GapCount(); !ok {
		return &ValidationError{Name: "gap_count", err: errors.New(`ent: missing required field "RecommendationEvent.gap_count"`)}
	}
	if _, ok := _c.mutation.ContentCount(); !ok {
		return &ValidationError{Name: "content_count", err: errors.New(`ent: missing required field "RecommendationEvent.content_count"`)}
	}
	if _, ok := _c.mutation.EstimatedMinutes(); !ok {
		return &ValidationError{Name: "estimated_minutes", err: errors.New(`ent: missing required field "RecommendationEvent.estimated_minutes"`)}
	}
	if _, ok := _c.mutation.LearningPath(); !ok {
		return &ValidationError{Name: "learning_path", err: errors.New(`ent: missing required field "RecommendationEvent.learning_path"`)}
	}
	return nil
}

func (_c *RecommendationEventCreate) sqlSave(ctx context.Context) (*RecommendationEvent, error) {
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

func (_c *RecommendationEventCreate) createSpec() (*RecommendationEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &RecommendationEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(recommendationevent.Table, sqlgraph.NewFieldSpec(recommendationevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(recommendationevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(recommendationevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(recommendationevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.BundleID(); ok {
		_spec.SetField(recommendationevent.FieldBundleID, field.TypeString, value)
		_node.BundleID = value
	}
	if value, ok := _c.mutation.GapCount(); ok {
		_spec.SetField(recommendationevent.FieldGapCount, field.TypeInt, value)
		_node.GapCount = value
	}
	if value, ok := _c.mutation.ContentCount(); ok {
		_spec.SetField(recommendationevent.FieldContentCount, field.TypeInt, value)
		_node.ContentCount = value
	}
	if value, ok := _c.mutation.EstimatedMinutes(); ok {
		_spec.SetField(recommendationevent.FieldEstimatedMinutes, field.TypeInt, value)
		_node.EstimatedMinutes = value
	}
	if value, ok := _c.mutation.LearningPath(); ok {
		_spec.SetField(recommendationevent.FieldLearningPath, field.TypeJSON, value)
		_node.LearningPath = value
	}
	return _node, _spec
}

// RecommendationEventCreateBulk is the builder for creating many RecommendationEvent entities in bulk.
type RecommendationEventCreateBulk struct {
	config
	err      error
	builders []*RecommendationEventCreate
}

// Save creates the RecommendationEvent entities in the database.
func (_c *RecommendationEventCreateBulk) Save(ctx context.Context) ([]*RecommendationEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RecommendationEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RecommendationEventMutation)
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
func (_c *RecommendationEventCreateBulk) SaveX(ctx context.Context) []*RecommendationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecommendationEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecommendationEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
