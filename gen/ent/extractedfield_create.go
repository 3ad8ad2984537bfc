// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/docuextract/gen/ent/document"
	"github.com/joseph-ayodele/docuextract/gen/ent/extractedfield"
)

// ExtractedFieldCreate is the builder for creating a ExtractedField entity.
type ExtractedFieldCreate struct {
	config
	mutation *ExtractedFieldMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *ExtractedFieldCreate) SetDocumentID(v uuid.UUID) *ExtractedFieldCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetKey sets the "key" field.
func (_c *ExtractedFieldCreate) SetKey(v string) *ExtractedFieldCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *ExtractedFieldCreate) SetValue(v string) *ExtractedFieldCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetDataType sets the "data_type" field.
func (_c *ExtractedFieldCreate) SetDataType(v string) *ExtractedFieldCreate {
	_c.mutation.SetDataType(v)
	return _c
}

// SetNillableDataType sets the "data_type" field if the given value is not nil.
func (_c *ExtractedFieldCreate) SetNillableDataType(v *string) *ExtractedFieldCreate {
	if v != nil {
		_c.SetDataType(*v)
	}
	return _c
}

// SetPosition sets the "position" field.
func (_c *ExtractedFieldCreate) SetPosition(v int) *ExtractedFieldCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractedFieldCreate) SetCreatedAt(v time.Time) *ExtractedFieldCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractedFieldCreate) SetNillableCreatedAt(v *time.Time) *ExtractedFieldCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractedFieldCreate) SetID(v uuid.UUID) *ExtractedFieldCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractedFieldCreate) SetNillableID(v *uuid.UUID) *ExtractedFieldCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *ExtractedFieldCreate) SetDocument(v *Document) *ExtractedFieldCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the ExtractedFieldMutation object of the builder.
func (_c *ExtractedFieldCreate) Mutation() *ExtractedFieldMutation {
	return _c.mutation
}

// Save creates the ExtractedField in the database.
func (_c *ExtractedFieldCreate) Save(ctx context.Context) (*ExtractedField, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractedFieldCreate) SaveX(ctx context.Context) *ExtractedField {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedFieldCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedFieldCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractedFieldCreate) defaults() {
	if _, ok := _c.mutation.DataType(); !ok {
		v := extractedfield.DefaultDataType
		_c.mutation.SetDataType(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extractedfield.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extractedfield.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractedFieldCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "ExtractedField.document_id"`)}
	}
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "ExtractedField.key"`)}
	}
	if v, ok := _c.mutation.Key(); ok {
		if err := extractedfield.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "ExtractedField.key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "ExtractedField.value"`)}
	}
	if v, ok := _c.mutation.Value(); ok {
		if err := extractedfield.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "ExtractedField.value": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DataType(); !ok {
		return &ValidationError{Name: "data_type", err: errors.New(`ent: missing required field "ExtractedField.data_type"`)}
	}
	if v, ok := _c.mutation.DataType(); ok {
		if err := extractedfield.DataTypeValidator(v); err != nil {
			return &ValidationError{Name: "data_type", err: fmt.Errorf(`ent: validator failed for field "ExtractedField.data_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "ExtractedField.position"`)}
	}
	if v, ok := _c.mutation.Position(); ok {
		if err := extractedfield.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "ExtractedField.position": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExtractedField.created_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "ExtractedField.document"`)}
	}
	return nil
}

func (_c *ExtractedFieldCreate) sqlSave(ctx context.Context) (*ExtractedField, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExtractedFieldCreate) createSpec() (*ExtractedField, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractedField{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractedfield.Table, sqlgraph.NewFieldSpec(extractedfield.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(extractedfield.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(extractedfield.FieldValue, field.TypeString, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.DataType(); ok {
		_spec.SetField(extractedfield.FieldDataType, field.TypeString, value)
		_node.DataType = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(extractedfield.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extractedfield.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExtractedFieldCreateBulk is the builder for creating many ExtractedField entities in bulk.
type ExtractedFieldCreateBulk struct {
	config
	err      error
	builders []*ExtractedFieldCreate
}

// Save creates the ExtractedField entities in the database.
func (_c *ExtractedFieldCreateBulk) Save(ctx context.Context) ([]*ExtractedField, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractedField, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractedFieldMutation)
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
func (_c *ExtractedFieldCreateBulk) SaveX(ctx context.Context) []*ExtractedField {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedFieldCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedFieldCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
