package failure

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type testError struct {
	NamedWithStackTrace
}

func newTestError() error {
	return testError{NamedWithCurrentStackTrace("TestFailure")}
}

func (testError) Error() string {
	return "something failed"
}

func TestNamedWithCurrentStackTrace(t *testing.T) {
	err := newTestError()

	var named Named
	require.True(t, errors.As(err, &named))
	require.Equal(t, "TestFailure", named.Name())

	var withStack WithStackTrace
	require.True(t, errors.As(err, &withStack))
	require.True(t, strings.Contains(withStack.Stack(), "TestNamedWithCurrentStackTrace"))
}

func TestFromError(t *testing.T) {
	t.Run("named", func(t *testing.T) {
		m := FromError(fmt.Errorf("wrapped: %w", newTestError()))
		require.NotNil(t, m.Name)
		require.Equal(t, "TestFailure", *m.Name)
		require.NotNil(t, m.Stack)
		require.Equal(t, "wrapped: something failed", m.Message)
	})

	t.Run("plain", func(t *testing.T) {
		m := FromError(errors.New("boom"))
		require.Nil(t, m.Name)
		require.Nil(t, m.Stack)
		require.Equal(t, "boom", m.Error())
	})
}
