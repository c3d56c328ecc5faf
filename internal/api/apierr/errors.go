package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MarinVandelet/qr-game-backend/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodePlayerNotFound    = "PLAYER_NOT_FOUND"
	CodeInvalidPlayerName = "INVALID_PLAYER_NAME"
	CodeRoomNotFound      = "ROOM_NOT_FOUND"
	CodeRoomEmpty         = "ROOM_EMPTY"
	CodeNoQuestions       = "NO_QUESTIONS"
	CodeNoHuntItems       = "NO_HUNT_ITEMS"
	CodeItemNotFound      = "ITEM_NOT_FOUND"
	CodeInternalError     = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrInvalidPlayerName):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPlayerName, "Player first name must not be empty"}}
	case errors.Is(err, model.ErrRoomNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeRoomNotFound, "Room not found"}}
	case errors.Is(err, model.ErrRoomEmpty):
		return &httpError{http.StatusConflict, APIError{CodeRoomEmpty, "Room has no members"}}
	case errors.Is(err, model.ErrNoQuestions):
		return &httpError{http.StatusConflict, APIError{CodeNoQuestions, "No quiz questions configured"}}
	case errors.Is(err, model.ErrNoHuntItems):
		return &httpError{http.StatusConflict, APIError{CodeNoHuntItems, "No hunt items configured"}}
	case errors.Is(err, model.ErrItemNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeItemNotFound, "Hunt item not found"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
