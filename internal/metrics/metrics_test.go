package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("GET", "/schedules/:scheduleID", "200", 0.5)

	count := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/schedules/:scheduleID", "200"))
	assert.Equal(t, float64(1), count)
	assert.Equal(t, 1, testutil.CollectAndCount(HTTPRequestDuration))
}

func TestRecordHTTPRequestMultiple(t *testing.T) {
	HTTPRequestsTotal.Reset()

	RecordHTTPRequest("POST", "/schedules", "201", 0.1)
	RecordHTTPRequest("POST", "/schedules", "201", 0.2)
	RecordHTTPRequest("POST", "/schedules", "400", 0.05)

	assert.Equal(t, float64(2), testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/schedules", "201")))
	assert.Equal(t, float64(1), testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/schedules", "400")))
}

func TestRecordSchedule(t *testing.T) {
	SchedulesTotal.Reset()

	RecordSchedule("created")
	RecordSchedule("created")
	RecordSchedule("conflict")

	assert.Equal(t, float64(2), testutil.ToFloat64(SchedulesTotal.WithLabelValues("created")))
	assert.Equal(t, float64(1), testutil.ToFloat64(SchedulesTotal.WithLabelValues("conflict")))
}

func TestRecordScheduleChange(t *testing.T) {
	ScheduleChangesTotal.Reset()

	RecordScheduleChange("CANCELLED")

	assert.Equal(t, float64(1), testutil.ToFloat64(ScheduleChangesTotal.WithLabelValues("CANCELLED")))
}

func TestRecordChangeTicket(t *testing.T) {
	ChangeTicketsTotal.Reset()

	RecordChangeTicket("MODIFY", "WAITING")
	RecordChangeTicket("MODIFY", "APPROVED")

	assert.Equal(t, float64(1), testutil.ToFloat64(ChangeTicketsTotal.WithLabelValues("MODIFY", "APPROVED")))
}

func TestRecordNotification(t *testing.T) {
	NotificationsTotal.Reset()

	RecordNotification("dispatch", "queued")
	RecordNotification("delivery", "failed")

	assert.Equal(t, float64(1), testutil.ToFloat64(NotificationsTotal.WithLabelValues("dispatch", "queued")))
	assert.Equal(t, float64(1), testutil.ToFloat64(NotificationsTotal.WithLabelValues("delivery", "failed")))
}

func TestSetNotificationQueueLength(t *testing.T) {
	SetNotificationQueueLength(7)
	assert.Equal(t, float64(7), testutil.ToFloat64(NotificationQueueLength))
}
