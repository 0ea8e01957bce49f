package code

// Error code to message mapping.
var codeMessageMap = map[int]string{
	// Common error codes
	ErrSuccess:      "success",
	ErrUnknown:      "unknown error",
	ErrBind:         "request parameter binding error",
	ErrValidation:   "request parameter validation error",
	ErrTokenInvalid: "invalid authentication token",

	// User error codes
	ErrUserNotFound:          "user not found",
	ErrUserAlreadyExist:      "user already exists",
	ErrUserPasswordIncorrect: "wrong username or password",

	// Location error codes
	ErrLocationNotFound: "location not found",

	// Employee / group error codes
	ErrEmployeeNotFound:      "employee not found",
	ErrEmployeeGroupNotFound: "employee group not found",

	// Camera error codes
	ErrCameraNotFound:    "camera not found",
	ErrCameraTypeInvalid: "invalid camera type",

	// Tourniquet lock error codes
	ErrLockNotFound:    "tourniquet lock not found",
	ErrLockTypeInvalid: "invalid lock type",

	// Link / time-sheet error codes
	ErrLinkNotFound:      "camera-to-lock link not found",
	ErrTimeSheetNotFound: "time sheet not found",
	ErrTimeOfDayInvalid:  "invalid time of day, want HH:MM",

	// Store error codes
	ErrDatabase:       "database error",
	ErrRecordNotFound: "record not found",
	ErrConflict:       "constraint violation",
}

// Error code to HTTP status mapping.
var codeStatusMap = map[int]int{
	// Common error codes
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,

	// User error codes
	ErrUserNotFound:          StatusNotFound,
	ErrUserAlreadyExist:      StatusBadRequest,
	ErrUserPasswordIncorrect: StatusUnauthorized,

	// Location error codes
	ErrLocationNotFound: StatusNotFound,

	// Employee / group error codes
	ErrEmployeeNotFound:      StatusNotFound,
	ErrEmployeeGroupNotFound: StatusNotFound,

	// Camera error codes
	ErrCameraNotFound:    StatusNotFound,
	ErrCameraTypeInvalid: StatusBadRequest,

	// Tourniquet lock error codes
	ErrLockNotFound:    StatusNotFound,
	ErrLockTypeInvalid: StatusBadRequest,

	// Link / time-sheet error codes
	ErrLinkNotFound:      StatusNotFound,
	ErrTimeSheetNotFound: StatusNotFound,
	ErrTimeOfDayInvalid:  StatusBadRequest,

	// Store error codes
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
	ErrConflict:       StatusBadRequest,
}

// GetMessage returns the message registered for an error code.
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "unknown error"
}

// GetStatus returns the HTTP status registered for an error code.
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
