package queue

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/event-seating/internal/config"
)

type mockInvalidator struct{ mock.Mock }

func (m *mockInvalidator) InvalidateEvent(ctx context.Context, eventID uint64) (int64, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).(int64), args.Error(1)
}

func TestCatalogChangedEventValidate(t *testing.T) {
	assert.NoError(t, CatalogChangedEvent{EventID: 4, Action: ActionUpdated}.Validate())
	assert.Error(t, CatalogChangedEvent{Action: ActionUpdated}.Validate())
	assert.Error(t, CatalogChangedEvent{EventID: 4, Action: "renamed"}.Validate())
	assert.Error(t, CatalogChangedEvent{EventID: 4}.Validate())
}

func TestHandleMessage_Invalidates(t *testing.T) {
	inv := new(mockInvalidator)
	inv.On("InvalidateEvent", mock.Anything, uint64(4)).Return(int64(3), nil)

	err := handleMessage(context.Background(), []byte(`{"event_id":4,"action":"updated"}`), inv)
	require.NoError(t, err)
	inv.AssertExpectations(t)
}

func TestHandleMessage_BadPayloads(t *testing.T) {
	inv := new(mockInvalidator)
	for _, body := range []string{`not json`, `{"event_id":0,"action":"updated"}`, `{"event_id":2,"action":"noop"}`} {
		err := handleMessage(context.Background(), []byte(body), inv)
		require.Error(t, err, body)
		assert.ErrorIs(t, err, errBadMessage, body)
	}
	inv.AssertNotCalled(t, "InvalidateEvent", mock.Anything, mock.Anything)
}

func TestHandleMessage_InvalidationFailure(t *testing.T) {
	inv := new(mockInvalidator)
	inv.On("InvalidateEvent", mock.Anything, uint64(8)).Return(int64(0), errors.New("redis down"))

	err := handleMessage(context.Background(), []byte(`{"event_id":8,"action":"deleted"}`), inv)
	require.Error(t, err)
	assert.NotErrorIs(t, err, errBadMessage)
}

func TestCacheInvalidator(t *testing.T) {
	rdb, rmock := redismock.NewClientMock()
	rmock.ExpectSMembers("cache:tag:event:12").SetVal([]string{"cache:k1"})
	rmock.ExpectDel("cache:k1").SetVal(1)
	rmock.ExpectDel("cache:tag:event:12").SetVal(1)

	ci := CacheInvalidator{Redis: rdb, Cache: config.CacheConfig{Prefix: "cache"}}
	n, err := ci.InvalidateEvent(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestPublishRejectsInvalidEvent(t *testing.T) {
	err := PublishCatalogChanged(context.Background(), "amqp://unused", "", CatalogChangedEvent{Action: ActionCreated})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid event")
}
