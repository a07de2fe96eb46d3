package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContactMatchesQuery(t *testing.T) {
	c := &Contact{
		Name:    "Budi Santoso",
		Phone:   OptionalStr("+628123456"),
		Email:   OptionalStr("budi@acme.co.id"),
		Company: OptionalStr("Acme"),
	}

	assert.True(t, c.MatchesQuery(""), "empty query is identity")
	assert.True(t, c.MatchesQuery("budi"))
	assert.True(t, c.MatchesQuery("ACME"))
	assert.True(t, c.MatchesQuery("8123"))
	assert.True(t, c.MatchesQuery("@acme"))
	assert.False(t, c.MatchesQuery("siti"))
}

func TestContactMatchesQuery_NilFields(t *testing.T) {
	c := &Contact{Name: "Siti"}
	assert.True(t, c.MatchesQuery("siti"))
	assert.False(t, c.MatchesQuery("acme"))
}
