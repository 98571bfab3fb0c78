package http

import (
	"encoding/json"
	"net/http"

	"github.com/fwojciec/devhub"
)

// API error codes returned in the error envelope.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeTokenExpired = "TOKEN_EXPIRED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeInternal     = "INTERNAL_ERROR"
)

// ErrorResponse is the JSON envelope of every API error.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody describes a failed API call.
type ErrorBody struct {
	Code       string   `json:"code"`
	Message    string   `json:"message"`
	Status     int      `json:"status"`
	Details    []string `json:"details,omitempty"`
	Suggestion string   `json:"suggestion,omitempty"`
}

type errorKind struct {
	code       string
	status     int
	suggestion string
}

var errorKinds = map[string]errorKind{
	devhub.EINVALID:      {CodeValidation, http.StatusBadRequest, "Please check your input and try again."},
	devhub.EUNAUTHORIZED: {CodeUnauthorized, http.StatusUnauthorized, "Please log in to access this resource."},
	devhub.EFORBIDDEN:    {CodeForbidden, http.StatusForbidden, "You do not have permission to perform this action."},
	devhub.ENOTFOUND:     {CodeNotFound, http.StatusNotFound, "The requested resource does not exist."},
	devhub.ECONFLICT:     {CodeConflict, http.StatusConflict, "This resource already exists. Please use a different value."},
	devhub.EINTERNAL:     {CodeInternal, http.StatusInternalServerError, "Please try again later. If the problem persists, contact support."},
}

// ErrorStatusCode returns the HTTP status for an application error code.
func ErrorStatusCode(code string) int {
	if k, ok := errorKinds[code]; ok {
		return k.status
	}
	return http.StatusInternalServerError
}

// NewErrorBody maps err to its API envelope body. Internal errors carry a
// generic message unless debug is set.
func NewErrorBody(err error, debug bool) ErrorBody {
	code := devhub.ErrorCode(err)
	kind, ok := errorKinds[code]
	if !ok {
		kind = errorKinds[devhub.EINTERNAL]
	}

	body := ErrorBody{
		Code:       kind.code,
		Message:    devhub.ErrorMessage(err),
		Status:     kind.status,
		Details:    devhub.ErrorDetails(err),
		Suggestion: kind.suggestion,
	}
	if code == devhub.EUNAUTHORIZED && body.Message == devhub.TokenExpiredMessage {
		body.Code = CodeTokenExpired
		body.Suggestion = "Your session has expired. Please log in again."
	}
	if code == devhub.EINTERNAL && debug {
		body.Message = err.Error()
	}
	return body
}

// Error writes err as a JSON error envelope. Internal errors are logged.
func (s *Server) Error(w http.ResponseWriter, r *http.Request, err error) {
	body := NewErrorBody(err, s.DebugErrors)
	if body.Status == http.StatusInternalServerError {
		s.Logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	writeJSON(w, body.Status, ErrorResponse{Error: body})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
