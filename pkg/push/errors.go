package push

import "errors"

// Client-side validation errors. These fail the current call synchronously;
// no request is issued when one of them is returned.
var (
	// ErrEmptyNotification is returned by Notification.Build when every
	// field is absent.
	ErrEmptyNotification = errors.New("notification body may not be empty")

	// ErrWNSMessageType is returned by WNS.Build unless exactly one of
	// alert/toast/tile/badge is set.
	ErrWNSMessageType = errors.New("must specify exactly one message type")

	// ErrMissingParameter flags a required builder field left empty.
	ErrMissingParameter = errors.New("missing required parameter")

	// ErrInvalidChannel flags an audience channel selector whose id is not
	// a UUID.
	ErrInvalidChannel = errors.New("channel id must be a UUID")

	// ErrNoScheduleURL is returned by Cancel and Update on a schedule that
	// was never created or fetched.
	ErrNoScheduleURL = errors.New("schedule URL is not set")

	// ErrEmptyScheduleID is returned by List for a blank schedule id.
	ErrEmptyScheduleID = errors.New("schedule id must be a non-empty string")
)
