package code

// Error code to message mapping
var codeMessageMap = map[int]string{
	// Common error codes
	ErrSuccess:          "success",
	ErrUnknown:          "internal server error",
	ErrBind:             "invalid request body",
	ErrValidation:       "request validation failed",
	ErrTokenInvalid:     "invalid authentication token",
	ErrPermissionDenied: "insufficient permissions",
	ErrTooManyRequests:  "too many requests",

	// User and auth error codes
	ErrUserNotFound:          "user not found",
	ErrUserAlreadyExist:      "user already exists",
	ErrUserPasswordIncorrect: "invalid username or password",
	ErrUserInactive:          "user account is disabled",

	// Guest error codes
	ErrGuestNotFound: "guest not found",

	// Visit error codes
	ErrVisitNotFound:          "visit not found",
	ErrVisitAlreadyCheckedOut: "visit already checked out",
	ErrVisitNoActive:          "no active visit to check out",

	// Reference data error codes
	ErrReferenceNotFound:  "referenced record not found",
	ErrReferenceNameTaken: "name already in use",
	ErrReferenceInUse:     "record is still in use",

	// Upload error codes
	ErrUploadTooLarge: "uploaded file exceeds the size limit",
	ErrUploadBadType:  "uploaded file type is not allowed",
	ErrUploadMissing:  "no file in the request",

	// Database error codes
	ErrDatabase:       "database error",
	ErrRecordNotFound: "record not found",
}

// Error code to HTTP status mapping
var codeStatusMap = map[int]int{
	// Common error codes
	ErrSuccess:          StatusOK,
	ErrUnknown:          StatusInternalServerError,
	ErrBind:             StatusBadRequest,
	ErrValidation:       StatusBadRequest,
	ErrTokenInvalid:     StatusUnauthorized,
	ErrPermissionDenied: StatusForbidden,
	ErrTooManyRequests:  StatusTooManyRequests,

	// User and auth error codes
	ErrUserNotFound:          StatusNotFound,
	ErrUserAlreadyExist:      StatusConflict,
	ErrUserPasswordIncorrect: StatusUnauthorized,
	ErrUserInactive:          StatusUnauthorized,

	// Guest error codes
	ErrGuestNotFound: StatusNotFound,

	// Visit error codes
	ErrVisitNotFound:          StatusNotFound,
	ErrVisitAlreadyCheckedOut: StatusBadRequest,
	ErrVisitNoActive:          StatusNotFound,

	// Reference data error codes
	ErrReferenceNotFound:  StatusNotFound,
	ErrReferenceNameTaken: StatusConflict,
	ErrReferenceInUse:     StatusBadRequest,

	// Upload error codes
	ErrUploadTooLarge: StatusBadRequest,
	ErrUploadBadType:  StatusBadRequest,
	ErrUploadMissing:  StatusBadRequest,

	// Database error codes
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage returns the message for an error code
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "unknown error"
}

// GetStatus returns the HTTP status for an error code
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
