package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValiderFinancementCours(t *testing.T) {
	code := "FIN1"
	assert.NoError(t, ValiderFinancementCours(false, nil))
	assert.NoError(t, ValiderFinancementCours(false, &code))
	assert.NoError(t, ValiderFinancementCours(true, nil))

	err := ValiderFinancementCours(true, &code)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, 400, HTTPStatus(err))
}
