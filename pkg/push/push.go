package push

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/airwave-io/go-airwave/pkg/airwave"
)

// Fixed API paths, relative to the transport's base URL.
const (
	pushPath      = "api/push/"
	schedulesPath = "api/schedules/"

	contentTypeJSON = "application/json"
)

// Push is one outbound notification: the audience to reach, what to show
// per platform, and delivery options. Fields are assigned directly by the
// caller (no validation at assignment time); builders in this package
// produce the FieldMap values. Audience takes a selector FieldMap or the
// All broadcast sentinel.
//
// A Push is not safe for concurrent use.
type Push struct {
	client airwave.RequestSender
	logger *slog.Logger

	Audience     any
	Notification FieldMap
	Campaigns    FieldMap
	Options      FieldMap
	DeviceTypes  any
	Message      FieldMap
	InApp        FieldMap
}

// NewPush wires a push to the transport it will be sent through.
func NewPush(client airwave.RequestSender, logger *slog.Logger) *Push {
	return &Push{
		client: client,
		logger: logger.With("component", "Push"),
	}
}

// Payload compacts the seven payload fields, recomputed on every call.
func (p *Push) Payload() FieldMap {
	m := FieldMap{}
	setIfSelector(m, "audience", p.Audience)
	setIfMap(m, "notification", p.Notification)
	setIfMap(m, "campaigns", p.Campaigns)
	setIfMap(m, "options", p.Options)
	setIfAny(m, "device_types", p.DeviceTypes)
	setIfMap(m, "message", p.Message)
	setIfMap(m, "in_app", p.InApp)
	return m
}

// Send posts the payload to the push endpoint and wraps the reply.
// Transport errors (authorization, entitlement, connection) propagate
// unchanged.
func (p *Push) Send(ctx context.Context) (*PushResponse, error) {
	body, err := json.Marshal(p.Payload())
	if err != nil {
		return nil, fmt.Errorf("marshaling push payload: %w", err)
	}

	resp, err := p.client.SendRequest(ctx, http.MethodPost, pushPath, body, contentTypeJSON)
	if err != nil {
		return nil, err
	}

	result := newPushResponseFrom(resp)
	p.logger.Info("push sent",
		"status", result.StatusCode,
		"push_ids", result.PushIDs,
		"operation_id", result.OperationID,
	)
	return result, nil
}
