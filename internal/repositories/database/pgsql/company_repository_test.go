package pgsql

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// The singleton id is inserted into social_accounting.id and
// accounts.owner_id, both UUID columns.
func TestSocialAccountingIDIsValidUUID(t *testing.T) {
	_, err := uuid.Parse(socialAccountingID)
	assert.NoError(t, err)
}
