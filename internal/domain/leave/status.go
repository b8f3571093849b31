package leave

// Status is the integer-coded state of a leave application. The codes are
// fixed by the existing database and clients; do not renumber.
type Status int

const (
	StatusPending                Status = 1
	StatusApproved               Status = 2
	StatusRejected               Status = 4
	StatusRequestForCancellation Status = 26
	StatusCancelled              Status = 27
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusRequestForCancellation, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further action can be applied.
func (s Status) Terminal() bool {
	return s == StatusRejected || s == StatusCancelled
}

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusApproved:
		return "Approved"
	case StatusRejected:
		return "Rejected"
	case StatusRequestForCancellation:
		return "Request For Cancellation"
	case StatusCancelled:
		return "Cancelled"
	}
	return "Unknown"
}

// Action is the integer action code carried by POST /leaves/{id}/approve.
type Action int

const (
	ActionReject              Action = 0
	ActionApprove             Action = 1
	ActionRequestCancellation Action = 3
	ActionApproveCancellation Action = 4
)

func (a Action) Valid() bool {
	switch a {
	case ActionReject, ActionApprove, ActionRequestCancellation, ActionApproveCancellation:
		return true
	}
	return false
}

type transitionKey struct {
	from   Status
	action Action
}

var transitions = map[transitionKey]Status{
	{StatusPending, ActionApprove}:                            StatusApproved,
	{StatusPending, ActionReject}:                             StatusRejected,
	{StatusApproved, ActionRequestCancellation}:               StatusRequestForCancellation,
	{StatusRequestForCancellation, ActionApproveCancellation}: StatusCancelled,
}

// Transition returns the next status for (current, action). It validates
// against the persisted current state; client-side button visibility is not
// trusted.
func Transition(current Status, action Action) (Status, error) {
	if !action.Valid() {
		return 0, ErrUnknownAction
	}
	next, ok := transitions[transitionKey{current, action}]
	if !ok {
		return 0, ErrInvalidTransition
	}
	return next, nil
}
