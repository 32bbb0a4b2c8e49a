package notification

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ptgym/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Init()

	code := m.Run()
	os.Exit(code)
}

type fakeSender struct {
	err  error
	sent []Job
}

func (f *fakeSender) Send(ctx context.Context, job Job) error {
	f.sent = append(f.sent, job)
	return f.err
}

func newTestQueue(rdb *redis.Client, sender Sender) *Queue {
	q := NewQueue(rdb, sender)
	q.retryDelay = 0
	return q
}

func encodedJob(t *testing.T, tries int) string {
	t.Helper()
	data, err := json.Marshal(Job{
		Recipient: Trainer(3),
		Token:     "device-token",
		Title:     TitleLessonRequested,
		Body:      "2025-03-03 10:00",
		Tries:     tries,
		Created:   time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return string(data)
}

func TestQueue_Enqueue(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.Regexp().ExpectLPush("notifications", `"title":"수업 신청"`).SetVal(1)

	q := newTestQueue(rdb, &fakeSender{})
	err := q.Enqueue(context.Background(), Job{Recipient: Trainer(3), Token: "t", Title: TitleLessonRequested})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueue_EnqueueError(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.Regexp().ExpectLPush("notifications", `.*`).SetErr(errors.New("redis down"))

	q := newTestQueue(rdb, &fakeSender{})
	err := q.Enqueue(context.Background(), Job{Recipient: User(1), Token: "t"})

	assert.Error(t, err)
}

func TestQueue_ProcessNextSends(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectBRPop(2*time.Second, "notifications").SetVal([]string{"notifications", encodedJob(t, 0)})

	sender := &fakeSender{}
	q := newTestQueue(rdb, sender)
	q.processNext(context.Background())

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "device-token", sender.sent[0].Token)
	assert.Equal(t, 1, sender.sent[0].Tries)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueue_ProcessNextRetries(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectBRPop(2*time.Second, "notifications").SetVal([]string{"notifications", encodedJob(t, 0)})
	mock.Regexp().ExpectLPush("^notifications$", `"tries":1`).SetVal(1)

	q := newTestQueue(rdb, &fakeSender{err: errors.New("unavailable")})
	q.processNext(context.Background())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueue_ProcessNextGivesUp(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectBRPop(2*time.Second, "notifications").SetVal([]string{"notifications", encodedJob(t, maxTries-1)})
	mock.Regexp().ExpectLPush("notifications:failed", `"error":"unregistered"`).SetVal(1)

	sender := &fakeSender{err: errors.New("unregistered")}
	q := newTestQueue(rdb, sender)
	q.processNext(context.Background())

	assert.Len(t, sender.sent, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueue_ProcessNextEmpty(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectBRPop(2*time.Second, "notifications").RedisNil()

	sender := &fakeSender{}
	q := newTestQueue(rdb, sender)
	q.processNext(context.Background())

	assert.Empty(t, sender.sent)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueue_ProcessNextMalformed(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectBRPop(2*time.Second, "notifications").SetVal([]string{"notifications", "{not json"})

	sender := &fakeSender{}
	q := newTestQueue(rdb, sender)
	q.processNext(context.Background())

	assert.Empty(t, sender.sent)
}

func TestQueue_StartStopsOnCancel(t *testing.T) {
	rdb, _ := redismock.NewClientMock()
	q := newTestQueue(rdb, &fakeSender{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		q.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestQueue_QueueLength(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectLLen("notifications").SetVal(4)

	q := newTestQueue(rdb, &fakeSender{})

	assert.Equal(t, int64(4), q.QueueLength(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
