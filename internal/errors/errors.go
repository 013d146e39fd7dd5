package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrReadingNotFound is returned when a reading is not found.
	ErrReadingNotFound = errors.New("reading not found")
	// ErrPromptNotFound is returned when no prompt template exists for a reading type.
	ErrPromptNotFound = errors.New("system prompt not found for reading type")
	// ErrUserExists is returned when a username or email is already registered.
	ErrUserExists = errors.New("user already exists")
	// ErrPromptExists is returned when a prompt template name is already taken.
	ErrPromptExists = errors.New("prompt already exists")
	// ErrEmailTaken is returned when a profile update targets an email in use.
	ErrEmailTaken = errors.New("email already in use")
	// ErrUsernameTaken is returned when a profile update targets a username in use.
	ErrUsernameTaken = errors.New("username already in use")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidRefreshToken is returned when a refresh token is invalid or expired.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	// ErrForbidden is returned when a user acts on a resource they do not own.
	ErrForbidden = errors.New("forbidden")
	// ErrCardSource is returned when the tarot card API fails.
	ErrCardSource = errors.New("card source unavailable")
	// ErrInterpretation is returned when the AI interpretation service fails.
	ErrInterpretation = errors.New("failed to get AI interpretation")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Upstream causes are
// wrapped around the sentinels, so matching goes through errors.Is and the
// client only ever sees the sentinel text.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, ErrUserNotFound.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrReadingNotFound):
		return NewHTTPError(http.StatusNotFound, ErrReadingNotFound.Error(), "READING_NOT_FOUND")
	case errors.Is(err, ErrPromptNotFound):
		return NewHTTPError(http.StatusNotFound, ErrPromptNotFound.Error(), "PROMPT_NOT_FOUND")
	case errors.Is(err, ErrUserExists):
		return NewHTTPError(http.StatusConflict, ErrUserExists.Error(), "USER_ALREADY_EXISTS")
	case errors.Is(err, ErrPromptExists):
		return NewHTTPError(http.StatusConflict, ErrPromptExists.Error(), "PROMPT_ALREADY_EXISTS")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, ErrEmailTaken.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrUsernameTaken):
		return NewHTTPError(http.StatusConflict, ErrUsernameTaken.Error(), "USERNAME_TAKEN")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrInvalidRefreshToken):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidRefreshToken.Error(), "INVALID_REFRESH_TOKEN")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, ErrForbidden.Error(), "FORBIDDEN")
	case errors.Is(err, ErrCardSource):
		return NewHTTPError(http.StatusBadGateway, ErrCardSource.Error(), "CARD_SOURCE_ERROR")
	case errors.Is(err, ErrInterpretation):
		return NewHTTPError(http.StatusBadGateway, ErrInterpretation.Error(), "INTERPRETATION_ERROR")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
