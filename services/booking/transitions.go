package booking

import (
	"devmitra/models"
	"devmitra/utils"
)

// transitionEvent is a lifecycle event a caller can fire at a booking.
type transitionEvent string

const (
	eventAccept transitionEvent = "accept"
	eventReject transitionEvent = "reject"
	eventCancel transitionEvent = "cancel"
)

// transitions is the guarded part of the booking state machine, keyed by
// (current status, event). Events absent for a status are disallowed.
//
// Two writes deliberately bypass this table:
//   - AssignVendor is a privileged admin override that forces `requested`
//     from any prior status.
//   - A successful payment forces `completed`/`paid` regardless of the
//     current lifecycle status.
var transitions = map[models.BookingStatus]map[transitionEvent]models.BookingStatus{
	models.BookingPending: {
		eventCancel: models.BookingCancelled,
	},
	models.BookingRequested: {
		eventAccept: models.BookingAccepted,
		eventReject: models.BookingRejected,
		eventCancel: models.BookingCancelled,
	},
	models.BookingAccepted: {
		eventCancel: models.BookingCancelled,
	},
}

// nextStatus resolves the target status for an event, or a TransitionError
// when the state machine does not allow it.
func nextStatus(current models.BookingStatus, ev transitionEvent) (models.BookingStatus, error) {
	if next, ok := transitions[current][ev]; ok {
		return next, nil
	}
	return "", &utils.TransitionError{From: string(current), Event: string(ev)}
}
