package hci

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStateTrigger(t *testing.T) {
	s := newStateTrigger()
	require.Equal(t, StateIdle, s.Get())

	ch := s.Changed()
	s.Set(StateAdvertising)
	select {
	case <-ch:
	default:
		t.Fatal("change not signalled")
	}
	require.Equal(t, StateAdvertising, s.Get())

	// no change, no signal
	ch = s.Changed()
	s.Set(StateAdvertising)
	select {
	case <-ch:
		t.Fatal("signalled without change")
	default:
	}

	s.Clear(StateAdvertising)
	require.Equal(t, StateIdle, s.Get())
}

func TestStateTryAction(t *testing.T) {
	s := newStateTrigger()
	s.Set(StateAdvertising | StateAbort)

	require.True(t, s.TryAction(StateScanning))
	require.Equal(t, StateAdvertising|StateScanning, s.Get())

	require.False(t, s.TryAction(StatePairing))
	require.False(t, s.TryAction(StateScanning))

	s.Clear(StateScanning)
	require.True(t, s.TryAction(StatePairing))
}

func TestStateWaitAny(t *testing.T) {
	s := newStateTrigger()

	start := time.Now()
	require.False(t, s.WaitAny(StateAbort, 20*time.Millisecond))
	require.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)

	go func() {
		time.Sleep(10 * time.Millisecond)
		s.Set(StateAdvertising)
		time.Sleep(10 * time.Millisecond)
		s.Set(StateAbort)
	}()
	require.True(t, s.WaitAny(StateAbort, 5*time.Second))

	// already set
	require.True(t, s.WaitAny(StateAbort, 0))
}

func TestStateString(t *testing.T) {
	require.Equal(t, "idle", StateIdle.String())
	require.Equal(t, "scanning", StateScanning.String())
	require.Equal(t, "advertising|abort", (StateAdvertising | StateAbort).String())
}
