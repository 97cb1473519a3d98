package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_PublishInvokesSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var got []Event
	d.Subscribe(UserRegistered, func(_ context.Context, e Event) error {
		got = append(got, e)
		return nil
	})

	event := Event{
		Type:    UserRegistered,
		Payload: AuthEventPayload{UserID: "user-42", Email: "john@example.com"},
	}
	require.NoError(t, d.Publish(context.Background(), event))

	require.Len(t, got, 1)
	assert.Equal(t, event, got[0])
}

func TestDispatcher_FailingHandlerDoesNotStopOthers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var secondCalled bool
	d.Subscribe(UserLoggedIn, func(context.Context, Event) error {
		return errors.New("listener broke")
	})
	d.Subscribe(UserLoggedIn, func(context.Context, Event) error {
		secondCalled = true
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: UserLoggedIn}))
	assert.True(t, secondCalled)
}

func TestDispatcher_IgnoresUnrelatedEventTypes(t *testing.T) {
	d := NewInMemoryDispatcher()

	var called bool
	d.Subscribe(UserRegistered, func(context.Context, Event) error {
		called = true
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: UserLoggedIn}))
	assert.False(t, called)
}
