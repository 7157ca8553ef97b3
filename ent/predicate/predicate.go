// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// LeaveRequest is the predicate function for leaverequest builders.
type LeaveRequest func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)

// RoleAssignment is the predicate function for roleassignment builders.
type RoleAssignment func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
