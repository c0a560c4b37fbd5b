package future

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPollBeforeAndAfterResolve(t *testing.T) {
	f := New[int]()
	_, ok, _ := f.Poll()
	require.False(t, ok)

	f.Resolve(7, nil)
	v, ok, err := f.Poll()
	require.True(t, ok)
	require.NoError(t, err)
	require.Equal(t, 7, v)
}

func TestFirstResolveWins(t *testing.T) {
	f := New[string]()
	f.Resolve("a", nil)
	f.Resolve("b", errors.New("late"))

	v, ok, err := f.Poll()
	require.True(t, ok)
	require.NoError(t, err)
	require.Equal(t, "a", v)
}

func TestGoPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	f := Go(func() (int, error) { return 0, boom })
	<-f.Done()

	_, ok, err := f.Poll()
	require.True(t, ok)
	require.ErrorIs(t, err, boom)
}
