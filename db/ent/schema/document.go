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

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		field.String("original_filename").NotEmpty(),
		field.String("content_type").NotEmpty(),
		field.Int("file_size").NonNegative(),
		field.String("status").
			Default(string(constants.StatusPending)).
			Validate(utils.EnumValidator(constants.DocumentStatuses...)),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("processed_at").Optional().Nillable(),
		field.Int("page_count").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE document -> MANY extracted fields; fields die with the document.
		edge.To("fields", ExtractedField.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("created_at"),
	}
}
