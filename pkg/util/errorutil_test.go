package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainErrorPassthrough(t *testing.T) {
	original := NewConflict("duplicate email", map[string]any{"email": "a@b.c"})

	mapped := ToDomainError(original)
	require.NotNil(t, mapped)
	assert.Equal(t, "CONFLICT", mapped.Code)
	assert.Equal(t, http.StatusConflict, mapped.HTTPStatus)
}

func TestToDomainErrorNoRows(t *testing.T) {
	mapped := ToDomainError(pgx.ErrNoRows)
	require.NotNil(t, mapped)
	assert.Equal(t, "NOT_FOUND", mapped.Code)
	assert.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
}

func TestToDomainErrorUnknownCollapsesToInternal(t *testing.T) {
	mapped := ToDomainError(errors.New("disk on fire"))
	require.NotNil(t, mapped)
	assert.Equal(t, "INTERNAL_ERROR", mapped.Code)
	assert.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
}

func TestToDomainErrorNil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
}

func TestWrappedDomainErrorSurvives(t *testing.T) {
	wrapped := &DomainError{
		Code:       "UNAUTHORIZED",
		Message:    "bad token",
		HTTPStatus: http.StatusUnauthorized,
		Err:        errors.New("signature mismatch"),
	}

	mapped := ToDomainError(wrapped)
	assert.Equal(t, http.StatusUnauthorized, mapped.HTTPStatus)
	assert.ErrorContains(t, mapped, "bad token")
}
