package errors

import "net/http"

var ErrTaskNotFound = &Exception{
	Message:    "Task not found",
	StatusCode: http.StatusNotFound,
}

var ErrSubtaskNotFound = &Exception{
	Message:    "Subtask not found",
	StatusCode: http.StatusNotFound,
}

var ErrLabelNotFound = &Exception{
	Message:    "Label not found",
	StatusCode: http.StatusNotFound,
}

var ErrSelfDependency = &Exception{
	Message:    "Cannot depend on self",
	StatusCode: http.StatusBadRequest,
}

var ErrCircularDependency = &Exception{
	Message:    "Circular dependency detected",
	StatusCode: http.StatusConflict,
}

var ErrTaskBlocked = &Exception{
	Message:    "Cannot complete a blocked task",
	StatusCode: http.StatusConflict,
}
