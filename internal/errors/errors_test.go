package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantCode   string
	}{
		{ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND"},
		{ErrReadingNotFound, http.StatusNotFound, "READING_NOT_FOUND"},
		{ErrPromptNotFound, http.StatusNotFound, "PROMPT_NOT_FOUND"},
		{ErrUserExists, http.StatusConflict, "USER_ALREADY_EXISTS"},
		{ErrPromptExists, http.StatusConflict, "PROMPT_ALREADY_EXISTS"},
		{ErrEmailTaken, http.StatusConflict, "EMAIL_TAKEN"},
		{ErrUsernameTaken, http.StatusConflict, "USERNAME_TAKEN"},
		{ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{ErrInvalidRefreshToken, http.StatusUnauthorized, "INVALID_REFRESH_TOKEN"},
		{ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{ErrCardSource, http.StatusBadGateway, "CARD_SOURCE_ERROR"},
		{ErrInterpretation, http.StatusBadGateway, "INTERPRETATION_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.wantCode, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, httpErr.StatusCode)
			assert.Equal(t, tt.wantCode, httpErr.Code)
			assert.Equal(t, tt.err.Error(), httpErr.Message)
		})
	}
}

func TestMapErrorToHTTP_WrappedCauseIsHidden(t *testing.T) {
	wrapped := fmt.Errorf("%w: connect tcp 10.0.0.1:443: timeout", ErrCardSource)

	httpErr := MapErrorToHTTP(wrapped)

	assert.Equal(t, http.StatusBadGateway, httpErr.StatusCode)
	assert.Equal(t, ErrCardSource.Error(), httpErr.Message)
	assert.NotContains(t, httpErr.Message, "10.0.0.1")
}

func TestMapErrorToHTTP_UnknownError(t *testing.T) {
	httpErr := MapErrorToHTTP(fmt.Errorf("sql: database is locked"))

	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
	assert.Equal(t, "INTERNAL_ERROR", httpErr.Code)
	assert.Equal(t, "internal server error", httpErr.Message)
}

func TestHTTPErrorToErrorResponse(t *testing.T) {
	httpErr := NewHTTPError(http.StatusForbidden, "forbidden", "FORBIDDEN")
	resp := httpErr.ToErrorResponse()

	assert.Equal(t, ErrorResponse{Error: "forbidden", Code: "FORBIDDEN"}, resp)
	assert.Equal(t, "forbidden", httpErr.Error())
}
