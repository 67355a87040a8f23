//go:build unit

package errs_test

import (
	"testing"

	"book-catalog/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractStackLines(t *testing.T) {
	t.Run("nil error yields nothing", func(t *testing.T) {
		assert.Nil(t, errs.ExtractStackLines(nil, 10))
	})

	t.Run("first line is the message", func(t *testing.T) {
		err := errs.Wrap(errs.New("root cause"), "outer context")

		lines := errs.ExtractStackLines(err, 0)
		require.NotEmpty(t, lines)
		assert.Contains(t, lines[0], "outer context")
	})

	t.Run("truncates to maxLines", func(t *testing.T) {
		err := errs.Wrap(errs.New("root cause"), "outer context")

		lines := errs.ExtractStackLines(err, 3)
		assert.Len(t, lines, 3)
	})
}
