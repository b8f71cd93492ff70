package push_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/airwave-io/go-airwave/pkg/airwave"
	"github.com/airwave-io/go-airwave/pkg/push"
)

// MockRequestSender stands in for the airwave.Client in entity tests.
type MockRequestSender struct {
	mock.Mock
}

func (m *MockRequestSender) SendRequest(ctx context.Context, method string, rawURL string, body []byte, contentType string) (*airwave.Response, error) {
	args := m.Called(ctx, method, rawURL, body, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*airwave.Response), args.Error(1)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPushPayload(t *testing.T) {
	t.Run("Round-trips exactly the set fields", func(t *testing.T) {
		p := push.NewPush(nil, newTestLogger())
		p.Audience = push.Tag("sports")
		notification, err := push.Notification{Alert: push.String("Hello")}.Build()
		require.NoError(t, err)
		p.Notification = notification
		p.DeviceTypes = push.DeviceTypes(push.DeviceTypeAll)

		payload := p.Payload()

		assert.Equal(t, push.FieldMap{
			"audience":     push.FieldMap{"tag": "sports"},
			"notification": push.FieldMap{"alert": "Hello"},
			"device_types": "all",
		}, payload)
	})

	t.Run("Broadcast audience passes the sentinel through", func(t *testing.T) {
		p := push.NewPush(nil, newTestLogger())
		p.Audience = push.All
		p.DeviceTypes = push.DeviceTypes(push.DeviceTypeAll)

		assert.Equal(t, push.FieldMap{
			"audience":     "all",
			"device_types": "all",
		}, p.Payload())
	})

	t.Run("Empty push compacts to an empty map", func(t *testing.T) {
		p := push.NewPush(nil, newTestLogger())
		assert.Empty(t, p.Payload())
	})

	t.Run("Recomputed on each call", func(t *testing.T) {
		p := push.NewPush(nil, newTestLogger())
		assert.Empty(t, p.Payload())

		p.Audience = push.NamedUser("user-1")
		assert.Contains(t, p.Payload(), "audience")
	})
}

func TestPushSend(t *testing.T) {
	ctx := context.Background()

	t.Run("Posts payload and wraps response", func(t *testing.T) {
		sender := new(MockRequestSender)
		p := push.NewPush(sender, newTestLogger())
		p.Audience = push.NamedUser("user-1")
		p.DeviceTypes = push.DeviceTypes("ios")

		mockResponse := &airwave.Response{
			Body: map[string]any{
				"ok":           true,
				"push_ids":     []any{"p1"},
				"operation_id": "op-1",
			},
			Code: 202,
		}
		sender.On("SendRequest", ctx, "POST", "api/push/", mock.MatchedBy(func(body []byte) bool {
			var sent map[string]any
			if err := json.Unmarshal(body, &sent); err != nil {
				return false
			}
			audience, ok := sent["audience"].(map[string]any)
			return ok && audience["named_user"] == "user-1"
		}), "application/json").Return(mockResponse, nil)

		result, err := p.Send(ctx)

		require.NoError(t, err)
		assert.True(t, result.Ok)
		assert.Equal(t, []string{"p1"}, result.PushIDs)
		assert.Equal(t, "op-1", result.OperationID)
		assert.Equal(t, "202", result.StatusCode)
		sender.AssertExpectations(t)
	})

	t.Run("Transport errors propagate unchanged", func(t *testing.T) {
		sender := new(MockRequestSender)
		p := push.NewPush(sender, newTestLogger())

		sender.On("SendRequest", ctx, "POST", "api/push/", mock.Anything, "application/json").
			Return(nil, airwave.ErrUnauthorized)

		result, err := p.Send(ctx)

		require.ErrorIs(t, err, airwave.ErrUnauthorized)
		assert.Nil(t, result)
	})
}
