package site2context_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lisaross/site2context"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("returns code for application error", func(t *testing.T) {
		t.Parallel()

		err := site2context.Errorf(site2context.EINVALID, "bad selector")
		assert.Equal(t, site2context.EINVALID, site2context.ErrorCode(err))
	})

	t.Run("unwraps wrapped application error", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("loading config: %w", site2context.Errorf(site2context.ENOTFOUND, "config not found"))
		assert.Equal(t, site2context.ENOTFOUND, site2context.ErrorCode(err))
	})

	t.Run("returns EINTERNAL for non-application error", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, site2context.EINTERNAL, site2context.ErrorCode(errors.New("boom")))
	})

	t.Run("returns empty string for nil", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", site2context.ErrorCode(nil))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("returns message for application error", func(t *testing.T) {
		t.Parallel()

		err := site2context.Errorf(site2context.EINVALID, "input directory required")
		assert.Equal(t, "input directory required", site2context.ErrorMessage(err))
	})

	t.Run("masks non-application error", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Internal error.", site2context.ErrorMessage(errors.New("boom")))
	})

	t.Run("returns empty string for nil", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", site2context.ErrorMessage(nil))
	})
}
