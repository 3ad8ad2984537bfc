// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/joseph-ayodele/docuextract/gen/ent/extractedfield"
	"github.com/joseph-ayodele/docuextract/gen/ent/predicate"
)

// ExtractedFieldDelete is the builder for deleting a ExtractedField entity.
type ExtractedFieldDelete struct {
	config
	hooks    []Hook
	mutation *ExtractedFieldMutation
}

// Where appends a list predicates to the ExtractedFieldDelete builder.
func (_d *ExtractedFieldDelete) Where(ps ...predicate.ExtractedField) *ExtractedFieldDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ExtractedFieldDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractedFieldDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ExtractedFieldDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(extractedfield.Table, sqlgraph.NewFieldSpec(extractedfield.FieldID, field.TypeUUID))
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

// ExtractedFieldDeleteOne is the builder for deleting a single ExtractedField entity.
type ExtractedFieldDeleteOne struct {
	_d *ExtractedFieldDelete
}

// Where appends a list predicates to the ExtractedFieldDelete builder.
func (_d *ExtractedFieldDeleteOne) Where(ps ...predicate.ExtractedField) *ExtractedFieldDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ExtractedFieldDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{extractedfield.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractedFieldDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
