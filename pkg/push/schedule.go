package push

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/airwave-io/go-airwave/pkg/airwave"
)

// The API accepts schedule times without a zone suffix.
const scheduleTimeFormat = "2006-01-02T15:04:05"

// ScheduledTime schedules delivery at an absolute UTC time.
func ScheduledTime(t time.Time) FieldMap {
	return FieldMap{"scheduled_time": t.UTC().Format(scheduleTimeFormat)}
}

// LocalScheduledTime schedules delivery at the device's local wall-clock
// time.
func LocalScheduledTime(t time.Time) FieldMap {
	return FieldMap{"local_scheduled_time": t.Format(scheduleTimeFormat)}
}

// ScheduledPush wraps a Push with deferred-delivery metadata. URL is empty
// until the schedule is created (the server assigns a per-resource URL) or
// the schedule was fetched with ScheduledPushFromURL. Cancel and Update
// require it.
//
// A ScheduledPush is not safe for concurrent use.
type ScheduledPush struct {
	client airwave.RequestSender
	logger *slog.Logger

	Schedule FieldMap
	Name     string
	Push     *Push
	URL      string
}

// NewScheduledPush wires a schedule to the transport it will be sent
// through.
func NewScheduledPush(client airwave.RequestSender, logger *slog.Logger) *ScheduledPush {
	return &ScheduledPush{
		client: client,
		logger: logger.With("component", "ScheduledPush"),
	}
}

// Payload compacts name, schedule and the wrapped push payload.
func (s *ScheduledPush) Payload() FieldMap {
	m := FieldMap{}
	if s.Name != "" {
		m["name"] = s.Name
	}
	setIfMap(m, "schedule", s.Schedule)
	if s.Push != nil {
		m["push"] = s.Push.Payload()
	}
	return m
}

// Send creates the schedule. On success the server-assigned schedule URL is
// stored on the entity, enabling Cancel and Update.
func (s *ScheduledPush) Send(ctx context.Context) (*PushResponse, error) {
	body, err := json.Marshal(s.Payload())
	if err != nil {
		return nil, fmt.Errorf("marshaling schedule payload: %w", err)
	}

	resp, err := s.client.SendRequest(ctx, http.MethodPost, schedulesPath, body, contentTypeJSON)
	if err != nil {
		return nil, err
	}

	result := newPushResponseFrom(resp)
	if result.ScheduleURL != "" {
		s.URL = result.ScheduleURL
	}
	s.logger.Info("schedule created", "status", result.StatusCode, "url", s.URL)
	return result, nil
}

// ScheduledPushFromURL fetches an existing schedule and reconstructs the
// full entity, including the wrapped Push, from the server's JSON.
func ScheduledPushFromURL(ctx context.Context, client airwave.RequestSender, logger *slog.Logger, scheduleURL string) (*ScheduledPush, error) {
	resp, err := client.SendRequest(ctx, http.MethodGet, scheduleURL, nil, contentTypeJSON)
	if err != nil {
		return nil, err
	}
	body, ok := resp.Map()
	if !ok {
		return nil, fmt.Errorf("schedule %q returned a non-JSON body", scheduleURL)
	}
	pushBody, ok := body["push"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("schedule %q response is missing the push object", scheduleURL)
	}

	p := NewPush(client, logger)
	p.Audience = asSelector(pushBody["audience"])
	p.Notification = asFieldMap(pushBody["notification"])
	p.Campaigns = asFieldMap(pushBody["campaigns"])
	p.Options = asFieldMap(pushBody["options"])
	p.DeviceTypes = pushBody["device_types"]
	p.Message = asFieldMap(pushBody["message"])
	p.InApp = asFieldMap(pushBody["in_app"])

	s := NewScheduledPush(client, logger)
	s.Push = p
	if name, isString := body["name"].(string); isString {
		s.Name = name
	}
	s.Schedule = asFieldMap(body["schedule"])
	s.URL = scheduleURL
	return s, nil
}

func asFieldMap(v any) FieldMap {
	if m, ok := v.(map[string]any); ok {
		return FieldMap(m)
	}
	return nil
}

// asSelector keeps audience values in their natural shape: selector maps
// become FieldMaps, the "all" broadcast string passes through.
func asSelector(v any) any {
	if m, ok := v.(map[string]any); ok {
		return FieldMap(m)
	}
	return v
}

// Cancel deletes the schedule. The entity must hold a schedule URL; no
// request is issued otherwise.
func (s *ScheduledPush) Cancel(ctx context.Context) (*PushResponse, error) {
	if s.URL == "" {
		return nil, fmt.Errorf("cancel: %w", ErrNoScheduleURL)
	}

	resp, err := s.client.SendRequest(ctx, http.MethodDelete, s.URL, nil, "")
	if err != nil {
		return nil, err
	}

	result := newPushResponseFrom(resp)
	s.logger.Info("schedule cancelled", "status", result.StatusCode, "url", s.URL)
	return result, nil
}

// Update replaces the schedule's payload with the entity's current state.
// The entity must hold a schedule URL; no request is issued otherwise.
func (s *ScheduledPush) Update(ctx context.Context) (*PushResponse, error) {
	if s.URL == "" {
		return nil, fmt.Errorf("update: %w", ErrNoScheduleURL)
	}

	body, err := json.Marshal(s.Payload())
	if err != nil {
		return nil, fmt.Errorf("marshaling schedule payload: %w", err)
	}

	resp, err := s.client.SendRequest(ctx, http.MethodPut, s.URL, body, contentTypeJSON)
	if err != nil {
		return nil, err
	}

	result := newPushResponseFrom(resp)
	s.logger.Info("schedule updated", "status", result.StatusCode, "url", s.URL)
	return result, nil
}

// List fetches a single schedule by id and returns the raw transport
// response. Unlike its sibling operations this deliberately skips the
// PushResponse wrapper: the listing body has no push_ids/ok shape to
// normalize.
func (s *ScheduledPush) List(ctx context.Context, scheduleID string) (*airwave.Response, error) {
	if scheduleID == "" {
		return nil, fmt.Errorf("list: %w", ErrEmptyScheduleID)
	}
	return s.client.SendRequest(ctx, http.MethodGet, schedulesPath+scheduleID, nil, "")
}

// NewScheduledPushList iterates over every scheduled push visible to the
// app, page by page.
func NewScheduledPushList(client airwave.RequestSender) *airwave.PageIterator {
	return airwave.NewPageIterator(client, schedulesPath, "schedules")
}
