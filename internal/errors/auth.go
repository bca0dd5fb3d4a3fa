package errors

import "net/http"

var ErrUnauthorized = &Exception{
	Message:    "Unauthorized",
	StatusCode: http.StatusUnauthorized,
}

var ErrInvalidCredentials = &Exception{
	Message:    "Invalid credentials",
	StatusCode: http.StatusUnauthorized,
}

var ErrPermissionDenied = &Exception{
	Message:    "Permission denied",
	StatusCode: http.StatusForbidden,
}
