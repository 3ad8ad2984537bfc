package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/joseph-ayodele/docuextract/constants"
	"github.com/joseph-ayodele/docuextract/db/ent/schema/utils"
)

type ExtractedField struct{ ent.Schema }

func (ExtractedField) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extracted_fields"},
	}
}

func (ExtractedField) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK so we can index on it
		field.UUID("document_id", uuid.UUID{}),
		field.String("key").NotEmpty(),
		field.String("value").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("data_type").
			Default(string(constants.TypeText)).
			Validate(utils.EnumValidator(constants.FieldTypes...)),
		field.Int("position").NonNegative(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (ExtractedField) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("fields").
			Field("document_id").
			Unique().
			Required(),
	}
}

func (ExtractedField) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "position"),
		index.Fields("document_id", "key"),
	}
}
