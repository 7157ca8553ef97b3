// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mayurpawar7875/plantops/ent/leaverequest"
	"github.com/mayurpawar7875/plantops/ent/predicate"
)

// LeaveRequestUpdate is the builder for updating LeaveRequest entities.
type LeaveRequestUpdate struct {
	config
	hooks    []Hook
	mutation *LeaveRequestMutation
}

// Where appends a list predicates to the LeaveRequestUpdate builder.
func (_u *LeaveRequestUpdate) Where(ps ...predicate.LeaveRequest) *LeaveRequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LeaveRequestUpdate) SetUpdatedAt(v time.Time) *LeaveRequestUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetKind sets the "kind" field.
func (_u *LeaveRequestUpdate) SetKind(v leaverequest.Kind) *LeaveRequestUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *LeaveRequestUpdate) SetNillableKind(v *leaverequest.Kind) *LeaveRequestUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetStartsAt sets the "starts_at" field.
func (_u *LeaveRequestUpdate) SetStartsAt(v time.Time) *LeaveRequestUpdate {
	_u.mutation.SetStartsAt(v)
	return _u
}

// SetNillableStartsAt sets the "starts_at" field if the given value is not nil.
func (_u *LeaveRequestUpdate) SetNillableStartsAt(v *time.Time) *LeaveRequestUpdate {
	if v != nil {
		_u.SetStartsAt(*v)
	}
	return _u
}

// SetEndsAt sets the "ends_at" field.
func (_u *LeaveRequestUpdate) SetEndsAt(v time.Time) *LeaveRequestUpdate {
	_u.mutation.SetEndsAt(v)
	return _u
}

// SetNillableEndsAt sets the "ends_at" field if the given value is not nil.
func (_u *LeaveRequestUpdate) SetNillableEndsAt(v *time.Time) *LeaveRequestUpdate {
	if v != nil {
		_u.SetEndsAt(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *LeaveRequestUpdate) SetReason(v string) *LeaveRequestUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *LeaveRequestUpdate) SetNillableReason(v *string) *LeaveRequestUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *LeaveRequestUpdate) ClearReason() *LeaveRequestUpdate {
	_u.mutation.ClearReason()
	return _u
}

// SetStatus sets the "status" field.
func (_u *LeaveRequestUpdate) SetStatus(v leaverequest.Status) *LeaveRequestUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LeaveRequestUpdate) SetNillableStatus(v *leaverequest.Status) *LeaveRequestUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDecidedBy sets the "decided_by" field.
func (_u *LeaveRequestUpdate) SetDecidedBy(v string) *LeaveRequestUpdate {
	_u.mutation.SetDecidedBy(v)
	return _u
}

// SetNillableDecidedBy sets the "decided_by" field if the given value is not nil.
func (_u *LeaveRequestUpdate) SetNillableDecidedBy(v *string) *LeaveRequestUpdate {
	if v != nil {
		_u.SetDecidedBy(*v)
	}
	return _u
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (_u *LeaveRequestUpdate) ClearDecidedBy() *LeaveRequestUpdate {
	_u.mutation.ClearDecidedBy()
	return _u
}

// SetDecidedAt sets the "decided_at" field.
func (_u *LeaveRequestUpdate) SetDecidedAt(v time.Time) *LeaveRequestUpdate {
	_u.mutation.SetDecidedAt(v)
	return _u
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_u *LeaveRequestUpdate) SetNillableDecidedAt(v *time.Time) *LeaveRequestUpdate {
	if v != nil {
		_u.SetDecidedAt(*v)
	}
	return _u
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (_u *LeaveRequestUpdate) ClearDecidedAt() *LeaveRequestUpdate {
	_u.mutation.ClearDecidedAt()
	return _u
}

// Mutation returns the LeaveRequestMutation object of the builder.
func (_u *LeaveRequestUpdate) Mutation() *LeaveRequestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LeaveRequestUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeaveRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LeaveRequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeaveRequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LeaveRequestUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := leaverequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeaveRequestUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := leaverequest.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "LeaveRequest.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := leaverequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "LeaveRequest.status": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LeaveRequest.user"`)
	}
	return nil
}

func (_u *LeaveRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(leaverequest.Table, leaverequest.Columns, sqlgraph.NewFieldSpec(leaverequest.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(leaverequest.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(leaverequest.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartsAt(); ok {
		_spec.SetField(leaverequest.FieldStartsAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndsAt(); ok {
		_spec.SetField(leaverequest.FieldEndsAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(leaverequest.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(leaverequest.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(leaverequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DecidedBy(); ok {
		_spec.SetField(leaverequest.FieldDecidedBy, field.TypeString, value)
	}
	if _u.mutation.DecidedByCleared() {
		_spec.ClearField(leaverequest.FieldDecidedBy, field.TypeString)
	}
	if value, ok := _u.mutation.DecidedAt(); ok {
		_spec.SetField(leaverequest.FieldDecidedAt, field.TypeTime, value)
	}
	if _u.mutation.DecidedAtCleared() {
		_spec.ClearField(leaverequest.FieldDecidedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{leaverequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LeaveRequestUpdateOne is the builder for updating a single LeaveRequest entity.
type LeaveRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LeaveRequestMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LeaveRequestUpdateOne) SetUpdatedAt(v time.Time) *LeaveRequestUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetKind sets the "kind" field.
func (_u *LeaveRequestUpdateOne) SetKind(v leaverequest.Kind) *LeaveRequestUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *LeaveRequestUpdateOne) SetNillableKind(v *leaverequest.Kind) *LeaveRequestUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetStartsAt sets the "starts_at" field.
func (_u *LeaveRequestUpdateOne) SetStartsAt(v time.Time) *LeaveRequestUpdateOne {
	_u.mutation.SetStartsAt(v)
	return _u
}

// SetNillableStartsAt sets the "starts_at" field if the given value is not nil.
func (_u *LeaveRequestUpdateOne) SetNillableStartsAt(v *time.Time) *LeaveRequestUpdateOne {
	if v != nil {
		_u.SetStartsAt(*v)
	}
	return _u
}

// SetEndsAt sets the "ends_at" field.
func (_u *LeaveRequestUpdateOne) SetEndsAt(v time.Time) *LeaveRequestUpdateOne {
	_u.mutation.SetEndsAt(v)
	return _u
}

// SetNillableEndsAt sets the "ends_at" field if the given value is not nil.
func (_u *LeaveRequestUpdateOne) SetNillableEndsAt(v *time.Time) *LeaveRequestUpdateOne {
	if v != nil {
		_u.SetEndsAt(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *LeaveRequestUpdateOne) SetReason(v string) *LeaveRequestUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *LeaveRequestUpdateOne) SetNillableReason(v *string) *LeaveRequestUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *LeaveRequestUpdateOne) ClearReason() *LeaveRequestUpdateOne {
	_u.mutation.ClearReason()
	return _u
}

// SetStatus sets the "status" field.
func (_u *LeaveRequestUpdateOne) SetStatus(v leaverequest.Status) *LeaveRequestUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LeaveRequestUpdateOne) SetNillableStatus(v *leaverequest.Status) *LeaveRequestUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDecidedBy sets the "decided_by" field.
func (_u *LeaveRequestUpdateOne) SetDecidedBy(v string) *LeaveRequestUpdateOne {
	_u.mutation.SetDecidedBy(v)
	return _u
}

// SetNillableDecidedBy sets the "decided_by" field if the given value is not nil.
func (_u *LeaveRequestUpdateOne) SetNillableDecidedBy(v *string) *LeaveRequestUpdateOne {
	if v != nil {
		_u.SetDecidedBy(*v)
	}
	return _u
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (_u *LeaveRequestUpdateOne) ClearDecidedBy() *LeaveRequestUpdateOne {
	_u.mutation.ClearDecidedBy()
	return _u
}

// SetDecidedAt sets the "decided_at" field.
func (_u *LeaveRequestUpdateOne) SetDecidedAt(v time.Time) *LeaveRequestUpdateOne {
	_u.mutation.SetDecidedAt(v)
	return _u
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_u *LeaveRequestUpdateOne) SetNillableDecidedAt(v *time.Time) *LeaveRequestUpdateOne {
	if v != nil {
		_u.SetDecidedAt(*v)
	}
	return _u
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (_u *LeaveRequestUpdateOne) ClearDecidedAt() *LeaveRequestUpdateOne {
	_u.mutation.ClearDecidedAt()
	return _u
}

// Mutation returns the LeaveRequestMutation object of the builder.
func (_u *LeaveRequestUpdateOne) Mutation() *LeaveRequestMutation {
	return _u.mutation
}

// Where appends a list predicates to the LeaveRequestUpdate builder.
func (_u *LeaveRequestUpdateOne) Where(ps ...predicate.LeaveRequest) *LeaveRequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LeaveRequestUpdateOne) Select(field string, fields ...string) *LeaveRequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LeaveRequest entity.
func (_u *LeaveRequestUpdateOne) Save(ctx context.Context) (*LeaveRequest, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeaveRequestUpdateOne) SaveX(ctx context.Context) *LeaveRequest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LeaveRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeaveRequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LeaveRequestUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := leaverequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeaveRequestUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := leaverequest.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "LeaveRequest.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := leaverequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "LeaveRequest.status": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LeaveRequest.user"`)
	}
	return nil
}

func (_u *LeaveRequestUpdateOne) sqlSave(ctx context.Context) (_node *LeaveRequest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(leaverequest.Table, leaverequest.Columns, sqlgraph.NewFieldSpec(leaverequest.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LeaveRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, leaverequest.FieldID)
		for _, f := range fields {
			if !leaverequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != leaverequest.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(leaverequest.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(leaverequest.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartsAt(); ok {
		_spec.SetField(leaverequest.FieldStartsAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndsAt(); ok {
		_spec.SetField(leaverequest.FieldEndsAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(leaverequest.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(leaverequest.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(leaverequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DecidedBy(); ok {
		_spec.SetField(leaverequest.FieldDecidedBy, field.TypeString, value)
	}
	if _u.mutation.DecidedByCleared() {
		_spec.ClearField(leaverequest.FieldDecidedBy, field.TypeString)
	}
	if value, ok := _u.mutation.DecidedAt(); ok {
		_spec.SetField(leaverequest.FieldDecidedAt, field.TypeTime, value)
	}
	if _u.mutation.DecidedAtCleared() {
		_spec.ClearField(leaverequest.FieldDecidedAt, field.TypeTime)
	}
	_node = &LeaveRequest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{leaverequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
