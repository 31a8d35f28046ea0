package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ishwarya-18/todo-app/internal/common"
)

// errorBody is the JSON shape of every failed response.
type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// Machine-readable error codes.
const (
	CodeBadRequest         = "bad_request"
	CodeMissingField       = "missing_field"
	CodeInvalidField       = "invalid_field"
	CodeDuplicateIdentity  = "duplicate_identity"
	CodeInvalidCredentials = "invalid_credentials"
	CodeMissingToken       = "missing_token"
	CodeInvalidToken       = "invalid_token"
	CodeInsufficientRole   = "insufficient_role"
	CodeNotFound           = "not_found"
	CodeSelfDeletion       = "self_deletion_forbidden"
	CodeBodyTooLarge       = "body_too_large"
	CodeInternal           = "internal_error"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody{Error: message, Code: code})
}

// writeServiceError maps a service error onto the HTTP error taxonomy.
// notFound is the message used for common.ErrorNotFound; internal is shown
// instead of the real cause, which is only logged.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error, notFound, internal string) {
	var input *common.InputError

	switch {
	case errors.As(err, &input):
		code := CodeInvalidField
		if errors.Is(err, common.ErrorMissingField) {
			code = CodeMissingField
		}
		writeError(w, http.StatusBadRequest, code, input.Message)
	case errors.Is(err, common.ErrDuplicateIdentity):
		writeError(w, http.StatusBadRequest, CodeDuplicateIdentity, "User with this email already exists")
	case errors.Is(err, common.ErrorUnauthorized):
		writeError(w, http.StatusUnauthorized, CodeInvalidCredentials, "Invalid email or password")
	case errors.Is(err, common.ErrSelfDeletion):
		writeError(w, http.StatusBadRequest, CodeSelfDeletion, "Cannot delete your own account")
	case errors.Is(err, common.ErrorNotFound):
		writeError(w, http.StatusNotFound, CodeNotFound, notFound)
	default:
		s.logger.Error(r.Context(), internal, "error", err, "request_id", requestIDFrom(r.Context()))
		writeError(w, http.StatusInternalServerError, CodeInternal, internal)
	}
}
