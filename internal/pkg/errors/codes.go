package errors

// Error code constants. Codes map one-to-one onto the role-update
// service failure taxonomy; messages carry the wire-contract strings.

// Auth error codes.
const (
	CodeNoAuthHeader = "NO_AUTH_HEADER"
	CodeTokenInvalid = "TOKEN_INVALID"
	CodeNotAdmin     = "NOT_ADMIN"
)

// Request validation error codes.
const (
	CodeMissingFields = "MISSING_FIELDS"
	CodeInvalidRole   = "INVALID_ROLE"
	CodeSelfModify    = "SELF_MODIFY_BLOCKED"
)

// Lookup / persistence error codes.
const (
	CodeTargetNotFound = "TARGET_NOT_FOUND"
	CodeRoleUpdateFail = "ROLE_UPDATE_FAILED"
	CodeRoleAssignFail = "ROLE_ASSIGN_FAILED"
	CodeInternal       = "INTERNAL_ERROR"
)

// Leave request error codes.
const (
	CodeLeaveNotFound  = "LEAVE_REQUEST_NOT_FOUND"
	CodeLeaveDecided   = "LEAVE_REQUEST_ALREADY_DECIDED"
	CodeInvalidRequest = "INVALID_REQUEST"
)
