package push

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/airwave-io/go-airwave/pkg/airwave"
)

// PushResponse normalizes one API reply into a uniform result. It is
// derived entirely from a single response and immutable after construction.
type PushResponse struct {
	Ok          bool
	PushIDs     []string
	ScheduleURL string
	OperationID string

	// Payload is the raw response body; StatusCode the stringified HTTP
	// status.
	Payload    map[string]any
	StatusCode string
}

// NewPushResponse extracts the typed fields from a response body. A nil or
// empty body yields a zero-valued response carrying only the status code.
// ScheduleURL is the first entry of the schedule_urls array when present.
func NewPushResponse(body map[string]any, code string) *PushResponse {
	r := &PushResponse{Payload: body, StatusCode: code}
	if len(body) == 0 {
		return r
	}

	if ok, isBool := body["ok"].(bool); isBool {
		r.Ok = ok
	}
	switch ids := body["push_ids"].(type) {
	case []any:
		for _, id := range ids {
			if s, isString := id.(string); isString {
				r.PushIDs = append(r.PushIDs, s)
			}
		}
	case []string:
		r.PushIDs = ids
	}
	if urls, isList := body["schedule_urls"].([]any); isList && len(urls) > 0 {
		if s, isString := urls[0].(string); isString {
			r.ScheduleURL = s
		}
	}
	if op, isString := body["operation_id"].(string); isString {
		r.OperationID = op
	}
	return r
}

func newPushResponseFrom(resp *airwave.Response) *PushResponse {
	body, _ := resp.Map()
	return NewPushResponse(body, strconv.Itoa(resp.Code))
}

// Format renders a deterministic multi-line diagnostic: a header with the
// status code, then one line per top-level body key in sorted order. Nil
// values render as the literal None.
func (r *PushResponse) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Received an HTTP %s response", r.StatusCode)
	for _, key := range slices.Sorted(maps.Keys(r.Payload)) {
		value := r.Payload[key]
		if value == nil {
			fmt.Fprintf(&b, "\n%s:\tNone", key)
		} else {
			fmt.Fprintf(&b, "\n%s:\t%v", key, value)
		}
	}
	return b.String()
}
