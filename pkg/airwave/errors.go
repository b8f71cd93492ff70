package airwave

import "errors"

// Sentinel errors raised by the transport layer. Callers match them with
// errors.Is; entity code in pkg/push propagates them unchanged.
var (
	// ErrUnauthorized maps an HTTP 401: the app key/secret pair was rejected.
	ErrUnauthorized = errors.New("authorization failed, check app key and secret")

	// ErrForbidden maps an HTTP 403: the account is not entitled to the
	// requested feature.
	ErrForbidden = errors.New("account is not entitled to this feature")

	// ErrRequestFailed wraps connection-level failures (DNS, timeout,
	// unreadable body). The underlying cause is appended to the message.
	ErrRequestFailed = errors.New("request failed")
)
