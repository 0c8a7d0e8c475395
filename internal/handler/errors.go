package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pkordes/eld-planner/backend/internal/domain"
	"github.com/pkordes/eld-planner/backend/internal/handler/gen"
)

// Error codes carried in ErrorDetail.Code.
const (
	codeValidation  = "validation_error"
	codeUnplannable = "unplannable_trip"
	codeNotFound    = "not_found"
	codeBadRequest  = "bad_request"
	codeTooLarge    = "request_too_large"
	codeInternal    = "internal_error"
)

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the human-readable message (e.g. "trip not found")
// because the handler is the layer that knows what was being looked up.
func notFoundBody(message string) gen.ErrorResponse {
	return errorBody(codeNotFound, message)
}

// requestBody returns an ErrorResponse for a bad request rejected before
// reaching the service layer (e.g. missing body).
func requestBody(message string) gen.ErrorResponse {
	return errorBody(codeValidation, message)
}

// unprocessableBody maps input and planning failures to a 422 body. ok is
// false for every other error, which the caller returns as-is so the strict
// handler's response error func turns it into a 500.
func unprocessableBody(err error) (body gen.ErrorResponse, ok bool) {
	var input *domain.InputError
	var unplannable *domain.UnplannableError
	switch {
	case errors.As(err, &input):
		body = errorBody(codeValidation, input.Field+" "+input.Reason)
		body.Error.Field = &input.Field
		return body, true
	case errors.As(err, &unplannable):
		return errorBody(codeUnplannable, unplannable.Reason), true
	case errors.Is(err, domain.ErrUnplannable):
		return errorBody(codeUnplannable, unwrapMessage(err)), true
	case errors.Is(err, domain.ErrValidation):
		return errorBody(codeValidation, unwrapMessage(err)), true
	}
	return gen.ErrorResponse{}, false
}

func errorBody(code, message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: code, Message: message}}
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.TripService.Plan: validation error: bad input" → "bad input"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, sentinel := range []error{domain.ErrValidation, domain.ErrUnplannable} {
		prefix := sentinel.Error() + ": "
		if i := strings.Index(msg, prefix); i >= 0 {
			return msg[i+len(prefix):]
		}
	}
	return msg
}

// RequestErrorHandler answers requests the generated layer rejects before a
// handler runs: undecodable JSON bodies, malformed path or query parameters
// and bodies over the size limit.
func RequestErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, errorBody(codeTooLarge, "request body too large"))
		return
	}
	writeError(w, http.StatusBadRequest, errorBody(codeBadRequest, err.Error()))
}

// ResponseErrorHandler returns the strict server's response error func. Any
// error a handler returns is unexpected: it is logged with the request ID and
// answered with a generic 500 so internals never reach the client.
func ResponseErrorHandler(log *slog.Logger) func(http.ResponseWriter, *http.Request, error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		log.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, errorBody(codeInternal, "internal server error"))
	}
}

func writeError(w http.ResponseWriter, status int, body gen.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // the status line is already written.
	json.NewEncoder(w).Encode(body)
}
