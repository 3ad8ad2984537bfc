// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/docuextract/gen/ent/document"
	"github.com/joseph-ayodele/docuextract/gen/ent/extractedfield"
	"github.com/joseph-ayodele/docuextract/gen/ent/predicate"
)

// ExtractedFieldUpdate is the builder for updating ExtractedField entities.
type ExtractedFieldUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractedFieldMutation
}

// Where appends a list predicates to the ExtractedFieldUpdate builder.
func (_u *ExtractedFieldUpdate) Where(ps ...predicate.ExtractedField) *ExtractedFieldUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractedFieldUpdate) SetDocumentID(v uuid.UUID) *ExtractedFieldUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractedFieldUpdate) SetNillableDocumentID(v *uuid.UUID) *ExtractedFieldUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetKey sets the "key" field.
func (_u *ExtractedFieldUpdate) SetKey(v string) *ExtractedFieldUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *ExtractedFieldUpdate) SetNillableKey(v *string) *ExtractedFieldUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *ExtractedFieldUpdate) SetValue(v string) *ExtractedFieldUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *ExtractedFieldUpdate) SetNillableValue(v *string) *ExtractedFieldUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetDataType sets the "data_type" field.
func (_u *ExtractedFieldUpdate) SetDataType(v string) *ExtractedFieldUpdate {
	_u.mutation.SetDataType(v)
	return _u
}

// SetNillableDataType sets the "data_type" field if the given value is not nil.
func (_u *ExtractedFieldUpdate) SetNillableDataType(v *string) *ExtractedFieldUpdate {
	if v != nil {
		_u.SetDataType(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *ExtractedFieldUpdate) SetPosition(v int) *ExtractedFieldUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *ExtractedFieldUpdate) SetNillablePosition(v *int) *ExtractedFieldUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *ExtractedFieldUpdate) AddPosition(v int) *ExtractedFieldUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ExtractedFieldUpdate) SetDocument(v *Document) *ExtractedFieldUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ExtractedFieldMutation object of the builder.
func (_u *ExtractedFieldUpdate) Mutation() *ExtractedFieldMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ExtractedFieldUpdate) ClearDocument() *ExtractedFieldUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractedFieldUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedFieldUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractedFieldUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedFieldUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractedFieldUpdate) check() error {
	if v, ok := _u.mutation.Key(); ok {
		if err := extractedfield.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "ExtractedField.key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Value(); ok {
		if err := extractedfield.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "ExtractedField.value": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DataType(); ok {
		if err := extractedfield.DataTypeValidator(v); err != nil {
			return &ValidationError{Name: "data_type", err: fmt.Errorf(`ent: validator failed for field "ExtractedField.data_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := extractedfield.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "ExtractedField.position": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedField.document"`)
	}
	return nil
}

func (_u *ExtractedFieldUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractedfield.Table, extractedfield.Columns, sqlgraph.NewFieldSpec(extractedfield.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(extractedfield.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(extractedfield.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.DataType(); ok {
		_spec.SetField(extractedfield.FieldDataType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(extractedfield.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(extractedfield.FieldPosition, field.TypeInt, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractedfield.DocumentTable,
			Columns: []string{extractedfield.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractedfield.DocumentTable,
			Columns: []string{extractedfield.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractedfield.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractedFieldUpdateOne is the builder for updating a single ExtractedField entity.
type ExtractedFieldUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractedFieldMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractedFieldUpdateOne) SetDocumentID(v uuid.UUID) *ExtractedFieldUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractedFieldUpdateOne) SetNillableDocumentID(v *uuid.UUID) *ExtractedFieldUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetKey sets the "key" field.
func (_u *ExtractedFieldUpdateOne) SetKey(v string) *ExtractedFieldUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *ExtractedFieldUpdateOne) SetNillableKey(v *string) *ExtractedFieldUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *ExtractedFieldUpdateOne) SetValue(v string) *ExtractedFieldUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *ExtractedFieldUpdateOne) SetNillableValue(v *string) *ExtractedFieldUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetDataType sets the "data_type" field.
func (_u *ExtractedFieldUpdateOne) SetDataType(v string) *ExtractedFieldUpdateOne {
	_u.mutation.SetDataType(v)
	return _u
}

// SetNillableDataType sets the "data_type" field if the given value is not nil.
func (_u *ExtractedFieldUpdateOne) SetNillableDataType(v *string) *ExtractedFieldUpdateOne {
	if v != nil {
		_u.SetDataType(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *ExtractedFieldUpdateOne) SetPosition(v int) *ExtractedFieldUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *ExtractedFieldUpdateOne) SetNillablePosition(v *int) *ExtractedFieldUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *ExtractedFieldUpdateOne) AddPosition(v int) *ExtractedFieldUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ExtractedFieldUpdateOne) SetDocument(v *Document) *ExtractedFieldUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ExtractedFieldMutation object of the builder.
func (_u *ExtractedFieldUpdateOne) Mutation() *ExtractedFieldMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ExtractedFieldUpdateOne) ClearDocument() *ExtractedFieldUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the ExtractedFieldUpdate builder.
func (_u *ExtractedFieldUpdateOne) Where(ps ...predicate.ExtractedField) *ExtractedFieldUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractedFieldUpdateOne) Select(field string, fields ...string) *ExtractedFieldUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractedField entity.
func (_u *ExtractedFieldUpdateOne) Save(ctx context.Context) (*ExtractedField, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedFieldUpdateOne) SaveX(ctx context.Context) *ExtractedField {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractedFieldUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedFieldUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractedFieldUpdateOne) check() error {
	if v, ok := _u.mutation.Key(); ok {
		if err := extractedfield.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "ExtractedField.key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Value(); ok {
		if err := extractedfield.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "ExtractedField.value": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DataType(); ok {
		if err := extractedfield.DataTypeValidator(v); err != nil {
			return &ValidationError{Name: "data_type", err: fmt.Errorf(`ent: validator failed for field "ExtractedField.data_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := extractedfield.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "ExtractedField.position": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedField.document"`)
	}
	return nil
}

func (_u *ExtractedFieldUpdateOne) sqlSave(ctx context.Context) (_node *ExtractedField, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractedfield.Table, extractedfield.Columns, sqlgraph.NewFieldSpec(extractedfield.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractedField.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractedfield.FieldID)
		for _, f := range fields {
			if !extractedfield.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractedfield.FieldID {
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
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(extractedfield.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(extractedfield.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.DataType(); ok {
		_spec.SetField(extractedfield.FieldDataType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(extractedfield.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(extractedfield.FieldPosition, field.TypeInt, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractedfield.DocumentTable,
			Columns: []string{extractedfield.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractedfield.DocumentTable,
			Columns: []string{extractedfield.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExtractedField{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractedfield.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
