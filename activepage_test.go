package devhub_test

import (
	"testing"

	"github.com/fwojciec/devhub"
	"github.com/stretchr/testify/assert"
)

func TestActivePageInput_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires id", func(t *testing.T) {
		t.Parallel()
		in := devhub.ActivePageInput{Title: "Runbook"}
		assert.Equal(t, devhub.EINVALID, devhub.ErrorCode(in.Validate()))
	})

	t.Run("requires title", func(t *testing.T) {
		t.Parallel()
		in := devhub.ActivePageInput{ExternalID: "abc"}
		assert.Equal(t, devhub.EINVALID, devhub.ErrorCode(in.Validate()))
	})

	t.Run("accepts minimal input", func(t *testing.T) {
		t.Parallel()
		in := devhub.ActivePageInput{ExternalID: "abc", Title: "Runbook"}
		assert.NoError(t, in.Validate())
	})
}

func TestActivePageInput_IsActive(t *testing.T) {
	t.Parallel()

	no := false
	yes := true

	assert.True(t, (&devhub.ActivePageInput{}).IsActive())
	assert.True(t, (&devhub.ActivePageInput{Active: &yes}).IsActive())
	assert.False(t, (&devhub.ActivePageInput{Active: &no}).IsActive())
}
