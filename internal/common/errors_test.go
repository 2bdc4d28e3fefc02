package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinels_AreDistinct(t *testing.T) {
	all := []error{ErrorNotFound, ErrorAlreadyExists, ErrorValidation, ErrorInternal}
	for i, a := range all {
		for j, b := range all {
			if i != j {
				assert.False(t, errors.Is(a, b), "%v must not match %v", a, b)
			}
		}
	}
}

func TestSentinels_SurviveWrapping(t *testing.T) {
	err := fmt.Errorf("user 7: %w", ErrorNotFound)
	assert.ErrorIs(t, err, ErrorNotFound)

	err = fmt.Errorf("%w: name is required", ErrorValidation)
	assert.ErrorIs(t, err, ErrorValidation)
	assert.Equal(t, "validation error: name is required", err.Error())
}
