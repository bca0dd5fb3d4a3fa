package errors

import "net/http"

var ErrBoardNotFound = &Exception{
	Message:    "Board not found",
	StatusCode: http.StatusNotFound,
}

var ErrColumnNotFound = &Exception{
	Message:    "Column not found",
	StatusCode: http.StatusNotFound,
}

var ErrCreateBoardDenied = &Exception{
	Message:    "You do not have permission to create boards.",
	StatusCode: http.StatusForbidden,
}

var ErrDeleteBoardDenied = &Exception{
	Message:    "You do not have permission to delete this board.",
	StatusCode: http.StatusForbidden,
}

var ErrTitleRequired = &Exception{
	Message:    "Title is required",
	StatusCode: http.StatusBadRequest,
}
