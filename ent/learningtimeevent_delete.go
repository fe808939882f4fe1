// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/imranulf/learnora/ent/learningtimeevent"
	"github.com/imranulf/learnora/ent/predicate"
)

// LearningTimeEventDelete is the builder for deleting a LearningTimeEvent entity.
type LearningTimeEventDelete struct {
	config
	hooks    []Hook
	mutation *LearningTimeEventMutation
}

// Where appends a list predicates to the LearningTimeEventDelete builder.
func (_d *LearningTimeEventDelete) Where(ps ...predicate.LearningTimeEvent) *LearningTimeEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *LearningTimeEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LearningTimeEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *LearningTimeEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(learningtimeevent.Table, sqlgraph.NewFieldSpec(learningtimeevent.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// LearningTimeEventDeleteOne is the builder for deleting a single LearningTimeEvent entity.
type LearningTimeEventDeleteOne struct {
	_d *LearningTimeEventDelete
}

// Where appends a list predicates to the LearningTimeEventDelete builder.
func (_d *LearningTimeEventDeleteOne) Where(ps ...predicate.LearningTimeEvent) *LearningTimeEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *LearningTimeEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{learningtimeevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LearningTimeEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
