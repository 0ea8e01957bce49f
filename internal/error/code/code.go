package code

// HTTP status codes.
const (
	// StatusOK - 200: success.
	StatusOK = 200
	// StatusBadRequest - 400: invalid request parameters.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: authentication required.
	StatusUnauthorized = 401
	// StatusForbidden - 403: access denied.
	StatusForbidden = 403
	// StatusNotFound - 404: resource not found.
	StatusNotFound = 404
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
	// ErrBind - 400: request parameter binding error.
	ErrBind
	// ErrValidation - 400: request parameter validation error.
	ErrValidation
	// ErrTokenInvalid - 401: invalid token.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: request rate too high.
	ErrTooManyRequests
)

// User error codes (101xxx).
const (
	// ErrUserNotFound - 404: user not found.
	ErrUserNotFound int = iota + 101000
	// ErrUserAlreadyExist - 400: user already exists.
	ErrUserAlreadyExist
	// ErrUserPasswordIncorrect - 401: wrong password.
	ErrUserPasswordIncorrect
)

// Location error codes (102xxx).
const (
	// ErrLocationNotFound - 404: location not found.
	ErrLocationNotFound int = iota + 102000
)

// Employee / group error codes (103xxx).
const (
	// ErrEmployeeNotFound - 404: employee not found.
	ErrEmployeeNotFound int = iota + 103000
	// ErrEmployeeGroupNotFound - 404: employee group not found.
	ErrEmployeeGroupNotFound
)

// Camera error codes (104xxx).
const (
	// ErrCameraNotFound - 404: camera not found.
	ErrCameraNotFound int = iota + 104000
	// ErrCameraTypeInvalid - 400: camera type out of range.
	ErrCameraTypeInvalid
)

// Tourniquet lock error codes (105xxx).
const (
	// ErrLockNotFound - 404: tourniquet lock not found.
	ErrLockNotFound int = iota + 105000
	// ErrLockTypeInvalid - 400: lock type out of range.
	ErrLockTypeInvalid
)

// Link / time-sheet error codes (106xxx).
const (
	// ErrLinkNotFound - 404: camera-to-lock link not found.
	ErrLinkNotFound int = iota + 106000
	// ErrTimeSheetNotFound - 404: time sheet not found.
	ErrTimeSheetNotFound
	// ErrTimeOfDayInvalid - 400: malformed HH:MM value.
	ErrTimeOfDayInvalid
)

// Store error codes (107xxx).
const (
	// ErrDatabase - 500: database error.
	ErrDatabase int = iota + 107000
	// ErrRecordNotFound - 404: record not found.
	ErrRecordNotFound
	// ErrConflict - 400: uniqueness or referential-integrity violation.
	ErrConflict
)
