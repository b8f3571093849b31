package leave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		name    string
		current Status
		action  Action
		want    Status
		wantErr error
	}{
		{"approve pending", StatusPending, ActionApprove, StatusApproved, nil},
		{"reject pending", StatusPending, ActionReject, StatusRejected, nil},
		{"request cancellation of approved", StatusApproved, ActionRequestCancellation, StatusRequestForCancellation, nil},
		{"approve cancellation", StatusRequestForCancellation, ActionApproveCancellation, StatusCancelled, nil},

		{"approve already approved", StatusApproved, ActionApprove, 0, ErrInvalidTransition},
		{"reject approved", StatusApproved, ActionReject, 0, ErrInvalidTransition},
		{"request cancellation of pending", StatusPending, ActionRequestCancellation, 0, ErrInvalidTransition},
		{"approve cancellation of pending", StatusPending, ActionApproveCancellation, 0, ErrInvalidTransition},
		{"approve cancellation of approved", StatusApproved, ActionApproveCancellation, 0, ErrInvalidTransition},
		{"unknown action code", StatusPending, Action(9), 0, ErrUnknownAction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := Transition(tt.current, tt.action)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, next)
		})
	}
}

func TestTransitionTerminalStates(t *testing.T) {
	actions := []Action{ActionReject, ActionApprove, ActionRequestCancellation, ActionApproveCancellation}
	for _, s := range []Status{StatusRejected, StatusCancelled} {
		require.True(t, s.Terminal())
		for _, a := range actions {
			_, err := Transition(s, a)
			assert.ErrorIs(t, err, ErrInvalidTransition, "status %s action %d", s, a)
		}
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusApproved, StatusRejected, StatusRequestForCancellation, StatusCancelled} {
		assert.True(t, s.Valid())
	}
	assert.False(t, Status(0).Valid())
	assert.False(t, Status(3).Valid())
	assert.False(t, Status(28).Valid())
}
