package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ptgym_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ptgym_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	SchedulesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ptgym_schedules_total",
			Help: "Total number of schedule bookings by outcome",
		},
		[]string{"result"},
	)

	ScheduleChangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ptgym_schedule_changes_total",
			Help: "Total number of applied schedule changes by target status",
		},
		[]string{"status"},
	)

	ChangeTicketsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ptgym_change_tickets_total",
			Help: "Total number of change ticket transitions",
		},
		[]string{"type", "status"},
	)

	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ptgym_notifications_total",
			Help: "Total number of push notifications by stage and result",
		},
		[]string{"stage", "result"},
	)

	NotificationQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ptgym_notification_queue_length",
			Help: "Current length of the notification queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

// RecordSchedule counts booking attempts: "created", "conflict", "no_lessons".
func RecordSchedule(result string) {
	SchedulesTotal.WithLabelValues(result).Inc()
}

func RecordScheduleChange(status string) {
	ScheduleChangesTotal.WithLabelValues(status).Inc()
}

func RecordChangeTicket(changeType, status string) {
	ChangeTicketsTotal.WithLabelValues(changeType, status).Inc()
}

// RecordNotification counts a notification at "dispatch" or "delivery".
func RecordNotification(stage, result string) {
	NotificationsTotal.WithLabelValues(stage, result).Inc()
}

func SetNotificationQueueLength(n int64) {
	NotificationQueueLength.Set(float64(n))
}
