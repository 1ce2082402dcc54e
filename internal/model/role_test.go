package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleLabel(t *testing.T) {
	assert.Equal(t, "Author", RoleLabel(RoleAuthor))
	assert.Equal(t, "Translator", RoleLabel(730))
	assert.Equal(t, "004", RoleLabel(4))
}

func TestIdentityKind(t *testing.T) {
	assert.Equal(t, "person", KindPerson.String())
	assert.Equal(t, "corporate body", KindCorporateBody.String())
	assert.True(t, (&Identity{Kind: KindPerson}).IsPerson())
}
