package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LeaveRequest holds the schema definition for the LeaveRequest entity.
// Leave and overtime requests submitted by employees.
type LeaveRequest struct {
	ent.Schema
}

// Mixin of the LeaveRequest.
func (LeaveRequest) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the LeaveRequest.
func (LeaveRequest) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.Enum("kind").
			Values("leave", "overtime"),
		field.Time("starts_at"),
		field.Time("ends_at"),
		field.String("reason").
			Optional(),
		field.Enum("status").
			Values("pending", "approved", "rejected", "expired").
			Default("pending"),
		field.String("decided_by").
			Optional(),
		field.Time("decided_at").
			Optional().
			Nillable(),
	}
}

// Edges of the LeaveRequest.
func (LeaveRequest) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("leave_requests").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the LeaveRequest.
func (LeaveRequest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("status", "created_at"),
	}
}
