package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceError_StatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "bad request", err: BadRequestError(nil, "bad input"), code: http.StatusBadRequest},
		{name: "not found", err: ResourceNotFoundError(nil, "missing"), code: http.StatusNotFound},
		{name: "conflict", err: ConflictError(nil, "duplicate"), code: http.StatusConflict},
		{name: "general", err: GeneralError(nil), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var svcErr *ServiceError
			require.True(t, errors.As(tt.err, &svcErr))
			assert.Equal(t, tt.code, svcErr.StatusCode())
		})
	}
}

func TestIs_MatchesCategory(t *testing.T) {
	err := ResourceNotFoundError(errors.New("row missing"), "Token not found")

	assert.True(t, Is(err, CategoryResourceNotFound))
	assert.False(t, Is(err, CategoryDataError))
	assert.False(t, Is(errors.New("plain"), CategoryResourceNotFound))
}

func TestIs_MatchesWrappedError(t *testing.T) {
	inner := errors.New("row missing")
	err := fmt.Errorf("load token: %w", ResourceNotFoundError(inner, "Token not found"))

	assert.True(t, Is(err, CategoryResourceNotFound))
	assert.ErrorIs(t, err, inner)
}

func TestIsInternalError(t *testing.T) {
	assert.True(t, IsInternalError(GeneralError(errors.New("boom"))))
	assert.True(t, IsInternalError(errors.New("plain")))
	assert.False(t, IsInternalError(BadRequestError(nil, "bad input")))
	assert.False(t, IsInternalError(ResourceNotFoundError(nil, "missing")))
}

func TestGeneralError_HidesDetail(t *testing.T) {
	err := GeneralError(errors.New("password=hunter2 leaked"))

	var svcErr *ServiceError
	require.True(t, errors.As(err, &svcErr))
	assert.Equal(t, "Internal Server Error", svcErr.Message)
}
