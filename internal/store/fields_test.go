package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional(t *testing.T) {
	name := "Hades"
	f := Optional("name", &name)
	assert.True(t, f.Set)
	assert.Equal(t, "Hades", f.Value)

	var absent *string
	f = Optional("name", absent)
	assert.False(t, f.Set)
}

func TestNullClearsColumn(t *testing.T) {
	f := Null("release_price")
	assert.True(t, f.Set)
	assert.Nil(t, f.Value)
}

func TestAssignments(t *testing.T) {
	name := "Celeste"
	m, err := assignments([]string{"name", "description"}, []Field{
		Optional("name", &name),
		Optional[string]("description", nil),
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "Celeste"}, m)
}

func TestAssignmentsNullValue(t *testing.T) {
	m, err := assignments([]string{"release_price"}, []Field{Null("release_price")})
	require.NoError(t, err)
	require.Contains(t, m, "release_price")
	assert.Nil(t, m["release_price"])
}

func TestAssignmentsAllAbsent(t *testing.T) {
	_, err := assignments([]string{"name"}, []Field{
		Optional[string]("name", nil),
	})
	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
}

func TestAssignmentsRejectsUnknownColumn(t *testing.T) {
	evil := "x"
	_, err := assignments([]string{"name"}, []Field{
		Optional("name; DROP TABLE users", &evil),
	})
	var internal *InternalError
	require.ErrorAs(t, err, &internal)
	assert.Equal(t, "internal failure", err.Error())
}
