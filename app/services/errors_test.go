package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{&NotFoundError{Message: "introuvable"}, 404},
		{&ConflictError{Message: "conflit"}, 409},
		{&ForbiddenError{Message: "interdit"}, 403},
		{&ValidationError{Message: "invalide"}, 400},
		{fmt.Errorf("wrapped: %w", &ConflictError{Message: "conflit"}), 409},
		{errors.New("autre chose"), 500},
		{nil, 500},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(tt.err))
	}
}

func TestPostgresViolations(t *testing.T) {
	unique := &pq.Error{Code: "23505"}
	fk := &pq.Error{Code: "23503"}

	assert.True(t, IsUniqueViolation(unique))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", unique)))
	assert.False(t, IsUniqueViolation(fk))
	assert.False(t, IsUniqueViolation(errors.New("nope")))

	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsForeignKeyViolation(unique))
}
