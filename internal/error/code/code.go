package code

// HTTP status codes.
const (
	// StatusOK - 200: success.
	StatusOK = 200
	// StatusBadRequest - 400: invalid request parameters.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: unauthorized.
	StatusUnauthorized = 401
	// StatusForbidden - 403: forbidden.
	StatusForbidden = 403
	// StatusNotFound - 404: resource not found.
	StatusNotFound = 404
	// StatusConflict - 409: conflict with existing data.
	StatusConflict = 409
	// StatusInternalServerError - 500: internal server error.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: too many requests.
	StatusTooManyRequests = 429
)

// Common error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: request body binding failed.
	ErrBind
	// ErrValidation - 400: request validation failed.
	ErrValidation
	// ErrTokenInvalid - 401: invalid token.
	ErrTokenInvalid
	// ErrPermissionDenied - 403: insufficient permissions.
	ErrPermissionDenied
	// ErrTooManyRequests - 429: request rate too high.
	ErrTooManyRequests
)

// User and auth error codes (101xxx).
const (
	// ErrUserNotFound - 404: user not found.
	ErrUserNotFound int = iota + 101000
	// ErrUserAlreadyExist - 409: user already exists.
	ErrUserAlreadyExist
	// ErrUserPasswordIncorrect - 401: wrong username or password.
	ErrUserPasswordIncorrect
	// ErrUserInactive - 401: user account is disabled.
	ErrUserInactive
)

// Guest error codes (102xxx).
const (
	// ErrGuestNotFound - 404: guest not found.
	ErrGuestNotFound int = iota + 102000
)

// Visit error codes (103xxx).
const (
	// ErrVisitNotFound - 404: visit not found.
	ErrVisitNotFound int = iota + 103000
	// ErrVisitAlreadyCheckedOut - 400: visit already checked out.
	ErrVisitAlreadyCheckedOut
	// ErrVisitNoActive - 404: no active visit to check out.
	ErrVisitNoActive
)

// Reference data error codes (104xxx).
const (
	// ErrReferenceNotFound - 404: referenced record not found.
	ErrReferenceNotFound int = iota + 104000
	// ErrReferenceNameTaken - 409: name already in use.
	ErrReferenceNameTaken
	// ErrReferenceInUse - 400: record still referenced by other data.
	ErrReferenceInUse
)

// Upload error codes (105xxx).
const (
	// ErrUploadTooLarge - 400: uploaded file exceeds the size limit.
	ErrUploadTooLarge int = iota + 105000
	// ErrUploadBadType - 400: uploaded file type is not allowed.
	ErrUploadBadType
	// ErrUploadMissing - 400: no file in the request.
	ErrUploadMissing
)

// Database error codes (106xxx).
const (
	// ErrDatabase - 500: database error.
	ErrDatabase int = iota + 106000
	// ErrRecordNotFound - 404: record not found.
	ErrRecordNotFound
)
