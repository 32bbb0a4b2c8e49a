package notification

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"ptgym/internal/logger"
	"ptgym/internal/metrics"
)

const (
	queueKey       = "notifications"
	failedQueueKey = "notifications:failed"
	maxTries       = 3
)

// Queue buffers push notifications in Redis and delivers them from a
// background worker with a bounded number of retries.
type Queue struct {
	redis      *redis.Client
	sender     Sender
	retryDelay time.Duration
	popTimeout time.Duration
}

func NewQueue(rdb *redis.Client, sender Sender) *Queue {
	return &Queue{
		redis:      rdb,
		sender:     sender,
		retryDelay: 5 * time.Second,
		popTimeout: 2 * time.Second,
	}
}

func (q *Queue) Enqueue(ctx context.Context, job Job) error {
	if job.Created.IsZero() {
		job.Created = time.Now()
	}

	data, err := json.Marshal(job)
	if err != nil {
		return err
	}

	return q.redis.LPush(ctx, queueKey, string(data)).Err()
}

func (q *Queue) Start(ctx context.Context) {
	logger.Info("Notification worker started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Notification worker stopped")
			return
		default:
			q.processNext(ctx)
		}
	}
}

func (q *Queue) processNext(ctx context.Context) {
	result, err := q.redis.BRPop(ctx, q.popTimeout, queueKey).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) && ctx.Err() == nil {
			logger.WithError(err).Warn("Notification queue pop failed")
			time.Sleep(q.popTimeout)
		}
		return
	}

	var job Job
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		logger.Errorf("Bad notification data: %v", err)
		metrics.RecordNotification("delivery", "malformed")
		return
	}

	job.Tries++
	if err := q.sender.Send(ctx, job); err != nil {
		logger.WithError(err).Error("Failed to send notification",
			"role", job.Recipient.Role,
			"recipient_id", job.Recipient.ID,
			"attempt", job.Tries,
		)

		if job.Tries < maxTries {
			metrics.RecordNotification("delivery", "retried")
			q.retry(ctx, job)
		} else {
			metrics.RecordNotification("delivery", "failed")
			q.saveFailed(job, err)
		}
		return
	}

	metrics.RecordNotification("delivery", "sent")
}

func (q *Queue) retry(ctx context.Context, job Job) {
	if q.retryDelay > 0 {
		select {
		case <-ctx.Done():
		case <-time.After(q.retryDelay):
		}
	}

	data, _ := json.Marshal(job)
	if err := q.redis.LPush(context.Background(), queueKey, string(data)).Err(); err != nil {
		logger.WithError(err).Error("Failed to requeue notification", "recipient_id", job.Recipient.ID)
	}
}

func (q *Queue) saveFailed(job Job, err error) {
	failed := map[string]interface{}{
		"job":   job,
		"error": err.Error(),
		"time":  time.Now(),
	}
	data, _ := json.Marshal(failed)
	q.redis.LPush(context.Background(), failedQueueKey, string(data))
	logger.Error("Notification moved to failed queue", "recipient_id", job.Recipient.ID, "title", job.Title)
}

func (q *Queue) QueueLength(ctx context.Context) int64 {
	length, _ := q.redis.LLen(ctx, queueKey).Result()
	metrics.SetNotificationQueueLength(length)
	return length
}

func (q *Queue) Close() error {
	return q.redis.Close()
}
