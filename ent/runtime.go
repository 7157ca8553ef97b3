// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/mayurpawar7875/plantops/ent/auditlog"
	"github.com/mayurpawar7875/plantops/ent/leaverequest"
	"github.com/mayurpawar7875/plantops/ent/profile"
	"github.com/mayurpawar7875/plantops/ent/roleassignment"
	"github.com/mayurpawar7875/plantops/ent/schema"
	"github.com/mayurpawar7875/plantops/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditlogMixin := schema.AuditLog{}.Mixin()
	auditlogMixinFields0 := auditlogMixin[0].Fields()
	_ = auditlogMixinFields0
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogMixinFields0[0].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	// auditlogDescAction is the schema descriptor for action field.
	auditlogDescAction := auditlogFields[1].Descriptor()
	// auditlog.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	auditlog.ActionValidator = auditlogDescAction.Validators[0].(func(string) error)
	// auditlogDescResourceType is the schema descriptor for resource_type field.
	auditlogDescResourceType := auditlogFields[2].Descriptor()
	// auditlog.ResourceTypeValidator is a validator for the "resource_type" field. It is called by the builders before save.
	auditlog.ResourceTypeValidator = auditlogDescResourceType.Validators[0].(func(string) error)
	// auditlogDescResourceID is the schema descriptor for resource_id field.
	auditlogDescResourceID := auditlogFields[3].Descriptor()
	// auditlog.ResourceIDValidator is a validator for the "resource_id" field. It is called by the builders before save.
	auditlog.ResourceIDValidator = auditlogDescResourceID.Validators[0].(func(string) error)
	// auditlogDescActor is the schema descriptor for actor field.
	auditlogDescActor := auditlogFields[4].Descriptor()
	// auditlog.ActorValidator is a validator for the "actor" field. It is called by the builders before save.
	auditlog.ActorValidator = auditlogDescActor.Validators[0].(func(string) error)
	leaverequestMixin := schema.LeaveRequest{}.Mixin()
	leaverequestMixinFields0 := leaverequestMixin[0].Fields()
	_ = leaverequestMixinFields0
	leaverequestFields := schema.LeaveRequest{}.Fields()
	_ = leaverequestFields
	// leaverequestDescCreatedAt is the schema descriptor for created_at field.
	leaverequestDescCreatedAt := leaverequestMixinFields0[0].Descriptor()
	// leaverequest.DefaultCreatedAt holds the default value on creation for the created_at field.
	leaverequest.DefaultCreatedAt = leaverequestDescCreatedAt.Default.(func() time.Time)
	// leaverequestDescUpdatedAt is the schema descriptor for updated_at field.
	leaverequestDescUpdatedAt := leaverequestMixinFields0[1].Descriptor()
	// leaverequest.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	leaverequest.DefaultUpdatedAt = leaverequestDescUpdatedAt.Default.(func() time.Time)
	// leaverequest.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	leaverequest.UpdateDefaultUpdatedAt = leaverequestDescUpdatedAt.UpdateDefault.(func() time.Time)
	// leaverequestDescUserID is the schema descriptor for user_id field.
	leaverequestDescUserID := leaverequestFields[1].Descriptor()
	// leaverequest.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	leaverequest.UserIDValidator = leaverequestDescUserID.Validators[0].(func(string) error)
	profileMixin := schema.Profile{}.Mixin()
	profileMixinFields0 := profileMixin[0].Fields()
	_ = profileMixinFields0
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileMixinFields0[0].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileMixinFields0[1].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// profileDescUserID is the schema descriptor for user_id field.
	profileDescUserID := profileFields[1].Descriptor()
	// profile.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	profile.UserIDValidator = profileDescUserID.Validators[0].(func(string) error)
	// profileDescName is the schema descriptor for name field.
	profileDescName := profileFields[2].Descriptor()
	// profile.NameValidator is a validator for the "name" field. It is called by the builders before save.
	profile.NameValidator = func() func(string) error {
		validators := profileDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// profileDescIsActive is the schema descriptor for is_active field.
	profileDescIsActive := profileFields[3].Descriptor()
	// profile.DefaultIsActive holds the default value on creation for the is_active field.
	profile.DefaultIsActive = profileDescIsActive.Default.(bool)
	roleassignmentMixin := schema.RoleAssignment{}.Mixin()
	roleassignmentMixinFields0 := roleassignmentMixin[0].Fields()
	_ = roleassignmentMixinFields0
	roleassignmentFields := schema.RoleAssignment{}.Fields()
	_ = roleassignmentFields
	// roleassignmentDescCreatedAt is the schema descriptor for created_at field.
	roleassignmentDescCreatedAt := roleassignmentMixinFields0[0].Descriptor()
	// roleassignment.DefaultCreatedAt holds the default value on creation for the created_at field.
	roleassignment.DefaultCreatedAt = roleassignmentDescCreatedAt.Default.(func() time.Time)
	// roleassignmentDescUpdatedAt is the schema descriptor for updated_at field.
	roleassignmentDescUpdatedAt := roleassignmentMixinFields0[1].Descriptor()
	// roleassignment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	roleassignment.DefaultUpdatedAt = roleassignmentDescUpdatedAt.Default.(func() time.Time)
	// roleassignment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	roleassignment.UpdateDefaultUpdatedAt = roleassignmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// roleassignmentDescUserID is the schema descriptor for user_id field.
	roleassignmentDescUserID := roleassignmentFields[1].Descriptor()
	// roleassignment.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	roleassignment.UserIDValidator = roleassignmentDescUserID.Validators[0].(func(string) error)
	// roleassignmentDescRole is the schema descriptor for role field.
	roleassignmentDescRole := roleassignmentFields[2].Descriptor()
	// roleassignment.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	roleassignment.RoleValidator = roleassignmentDescRole.Validators[0].(func(string) error)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields0[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields0[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = func() func(string) error {
		validators := userDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescEnabled is the schema descriptor for enabled field.
	userDescEnabled := userFields[3].Descriptor()
	// user.DefaultEnabled holds the default value on creation for the enabled field.
	user.DefaultEnabled = userDescEnabled.Default.(bool)
}
