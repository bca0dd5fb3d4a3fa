package errors

import "net/http"

var ErrUserNotFound = &Exception{
	Message:    "User not found",
	StatusCode: http.StatusNotFound,
}

var ErrGroupNotFound = &Exception{
	Message:    "Group not found",
	StatusCode: http.StatusNotFound,
}

var ErrMissingFields = &Exception{
	Message:    "Missing fields",
	StatusCode: http.StatusBadRequest,
}

var ErrMissingName = &Exception{
	Message:    "Missing name",
	StatusCode: http.StatusBadRequest,
}

var ErrUsernameTaken = &Exception{
	Message:    "Username already exists",
	StatusCode: http.StatusConflict,
}

var ErrCannotDeleteSelf = &Exception{
	Message:    "Cannot delete yourself",
	StatusCode: http.StatusBadRequest,
}

var ErrResetFailed = &Exception{
	Message:    "Reset failed",
	StatusCode: http.StatusInternalServerError,
}

var ErrSetupComplete = &Exception{
	Message:    "Setup has already been completed",
	StatusCode: http.StatusConflict,
}
