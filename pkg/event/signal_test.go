package event

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignalEmitOrder(t *testing.T) {
	var sig Signal[int]
	var got []string

	sig.Connect(func(v int) { got = append(got, "a") })
	sig.Connect(func(v int) { got = append(got, "b") })
	sig.Emit(1)

	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 2, sig.Receivers())
}

func TestSignalDisconnect(t *testing.T) {
	var sig Signal[string]
	calls := 0

	con := sig.Connect(func(string) { calls++ })
	require.NoError(t, sig.Disconnect(con))
	assert.Equal(t, 0, sig.Receivers())

	sig.Emit("ignored")
	assert.Equal(t, 0, calls)

	err := sig.Disconnect(con)
	assert.True(t, errors.Is(err, ErrNotConnected))
}

func TestSignalDisconnectDuringEmit(t *testing.T) {
	var sig Signal[int]
	var second Connection
	calls := 0

	sig.Connect(func(int) {
		calls++
		_ = sig.Disconnect(second)
	})
	second = sig.Connect(func(int) { calls++ })

	sig.Emit(0)
	assert.Equal(t, 2, calls, "running emit still reaches the receiver")

	sig.Emit(0)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 1, sig.Receivers())
}
