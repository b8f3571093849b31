package leave

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/staffhive/erp-backend-go/internal/domain/leave"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestCountDays(t *testing.T) {
	assert.Equal(t, 1.0, countDays(day("2026-02-10"), day("2026-02-10")))
	assert.Equal(t, 3.0, countDays(day("2026-02-10"), day("2026-02-12")))
	// Spanning a month boundary.
	assert.Equal(t, 5.0, countDays(day("2026-01-30"), day("2026-02-03")))
}

func TestApplyActionRequiresCancellationReason(t *testing.T) {
	// The reason check runs before any repository access, so a zero-value
	// service is enough to exercise it.
	svc := &LeaveServiceImpl{}
	actionType := int(leave.ActionRequestCancellation)

	_, err := svc.ApplyAction(context.Background(), leave.ApproveLeaveRequest{
		LeaveID: 1,
		Type:    &actionType,
	})
	assert.ErrorIs(t, err, leave.ErrReasonRequired)

	blank := "   "
	_, err = svc.ApplyAction(context.Background(), leave.ApproveLeaveRequest{
		LeaveID: 1,
		Type:    &actionType,
		Reason:  &blank,
	})
	assert.ErrorIs(t, err, leave.ErrReasonRequired)
}

func TestBalanceDeltas(t *testing.T) {
	tests := []struct {
		name        string
		action      leave.Action
		wantUsed    float64
		wantPending float64
	}{
		{"approve moves pending into used", leave.ActionApprove, 3, -3},
		{"reject releases pending", leave.ActionReject, 0, -3},
		{"cancellation request leaves balance alone", leave.ActionRequestCancellation, 0, 0},
		{"approved cancellation refunds used", leave.ActionApproveCancellation, -3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			used, pending := balanceDeltas(tt.action, 3)
			assert.Equal(t, tt.wantUsed, used)
			assert.Equal(t, tt.wantPending, pending)
		})
	}
}
