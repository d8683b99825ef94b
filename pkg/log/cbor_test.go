package log

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRoundTrip(t *testing.T) {
	ts := time.Date(2026, 8, 23, 10, 30, 0, 123456789, time.UTC)
	event := Event{
		Timestamp: ts,
		SessionID: "0f2d9c3a-1111-2222-3333-444455556666",
		Category:  CategoryChange,
		Severity:  SeverityInfo,
		Change: &ChangeEvent{
			Kind:        "ADDED",
			Interface:   "eth0",
			ChassisName: "switch1",
			PortID:      "Gi0/1",
		},
	}

	data, err := EncodeEvent(event)
	require.NoError(t, err)

	decoded, err := DecodeEvent(data)
	require.NoError(t, err)

	// Nanosecond precision must survive the round trip.
	assert.True(t, ts.Equal(decoded.Timestamp), "timestamp: want %v, got %v", ts, decoded.Timestamp)
	assert.Equal(t, event.SessionID, decoded.SessionID)
	assert.Equal(t, event.Category, decoded.Category)
	assert.Equal(t, event.Severity, decoded.Severity)
	require.NotNil(t, decoded.Change)
	assert.Equal(t, *event.Change, *decoded.Change)
	assert.Nil(t, decoded.State)
	assert.Nil(t, decoded.Error)
}

func TestStatePayloadRoundTrip(t *testing.T) {
	event := Event{
		Timestamp: time.Now().UTC(),
		Category:  CategoryState,
		Severity:  SeverityInfo,
		State: &StateChangeEvent{
			OldState: "Stopped",
			NewState: "Running",
			Reason:   "start requested",
		},
	}

	data, err := EncodeEvent(event)
	require.NoError(t, err)
	decoded, err := DecodeEvent(data)
	require.NoError(t, err)

	require.NotNil(t, decoded.State)
	assert.Equal(t, *event.State, *decoded.State)
}

func TestErrorPayloadRoundTrip(t *testing.T) {
	event := Event{
		Timestamp: time.Now().UTC(),
		Category:  CategoryError,
		Severity:  SeverityError,
		Message:   "connection dropped",
		Error:     &ErrorEventData{Code: 2, Context: "watch"},
	}

	data, err := EncodeEvent(event)
	require.NoError(t, err)
	decoded, err := DecodeEvent(data)
	require.NoError(t, err)

	assert.Equal(t, "connection dropped", decoded.Message)
	require.NotNil(t, decoded.Error)
	assert.Equal(t, *event.Error, *decoded.Error)
}

func TestDecodeGarbage(t *testing.T) {
	_, err := DecodeEvent([]byte{0xff, 0x00, 0x13})
	assert.Error(t, err)
}
