package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Rating       int    `json:"rating" validate:"required,min=1,max=5"`
	Availability string `json:"availability" validate:"omitempty,availability"`
	Status       string `json:"status" validate:"omitempty,proposal-status"`
}

func TestValidate_ReportsFieldsByJSONTag(t *testing.T) {
	t.Parallel()

	v := New()
	err := v.Validate(&sampleForm{Email: "not-an-email", Rating: 3})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "this field is required", vErr.Errors["name"])
	assert.Equal(t, "must be a valid email address", vErr.Errors["email"])
}

func TestValidate_RangeMessages(t *testing.T) {
	t.Parallel()

	v := New()
	err := v.Validate(&sampleForm{Name: "n", Email: "a@b.com", Rating: 9})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "must be at most 5", vErr.Errors["rating"])
}

func TestValidate_DomainEnums(t *testing.T) {
	t.Parallel()

	v := New()

	ok := &sampleForm{Name: "n", Email: "a@b.com", Rating: 3, Availability: "part_time", Status: "accepted"}
	assert.NoError(t, v.Validate(ok))

	// Empty enum fields pass; required is a separate rule.
	empty := &sampleForm{Name: "n", Email: "a@b.com", Rating: 3}
	assert.NoError(t, v.Validate(empty))

	bad := &sampleForm{Name: "n", Email: "a@b.com", Rating: 3, Availability: "weekends"}
	err := v.Validate(bad)
	require.Error(t, err)
	vErr, ok2 := err.(*ValidationError)
	require.True(t, ok2)
	assert.Equal(t, "must be one of: available, part_time, busy", vErr.Errors["availability"])

	badStatus := &sampleForm{Name: "n", Email: "a@b.com", Rating: 3, Status: "maybe"}
	err = v.Validate(badStatus)
	require.Error(t, err)
	vErr, ok2 = err.(*ValidationError)
	require.True(t, ok2)
	assert.Equal(t, "must be one of: pending, accepted, rejected", vErr.Errors["status"])
}
