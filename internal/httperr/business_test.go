package httperr

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusinessCode(t *testing.T) {
	err := ErrBusiness("slot_conflict")

	code, ok := BusinessCode(err)
	assert.True(t, ok)
	assert.Equal(t, "slot_conflict", code)

	// sobrevive a wrapping
	wrapped := fmt.Errorf("create: %w", err)
	code, ok = BusinessCode(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "slot_conflict", code)

	_, ok = BusinessCode(fmt.Errorf("boom"))
	assert.False(t, ok)
}

func TestIsBusiness(t *testing.T) {
	err := ErrBusiness("too_soon")

	assert.True(t, IsBusiness(err, "too_soon"))
	assert.False(t, IsBusiness(err, "slot_conflict"))
	assert.False(t, IsBusiness(nil, "too_soon"))
}
