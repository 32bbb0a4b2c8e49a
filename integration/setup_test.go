package integration_test

import (
	"fmt"
	"os"
	"testing"
	"time"

	"ptgym/internal/changeticket"
	"ptgym/internal/db"
	"ptgym/internal/notification"
	"ptgym/internal/schedule"
	"ptgym/internal/trainer"
	"ptgym/internal/traineruser"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlx.DB {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	// TEST_DSN points at a disposable database, e.g. the one in docker compose.
	dsn := os.Getenv("TEST_DSN")
	if dsn == "" {
		t.Skip("Skipping integration test: TEST_DSN not set")
	}

	database, err := db.Connect(dsn)
	if err != nil {
		t.Skipf("Skipping integration tests: cannot connect to test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	require.NoError(t, db.RunMigrations(database, "../migrations"))
	cleanDatabase(t, database)
	return database
}

func cleanDatabase(t *testing.T, database *sqlx.DB) {
	tables := []string{
		"change_tickets",
		"schedules",
		"trainer_users",
		"trainer_availabilities",
		"trainer_fcm_tokens",
		"user_fcm_tokens",
		"users",
		"trainers",
	}

	for _, table := range tables {
		_, err := database.Exec(fmt.Sprintf("DELETE FROM %s", table))
		require.NoError(t, err, "Failed to clean table "+table)
	}
}

type fixture struct {
	db        *sqlx.DB
	schedules schedule.Service
	tickets   changeticket.Service

	trainerID int64
	userID    int64
	relID     int64
}

// newFixture seeds one trainer with 60 minute lessons and one member
// holding the given number of credits.
func newFixture(t *testing.T, credits int) *fixture {
	database := setupTestDB(t)

	f := &fixture{db: database}
	require.NoError(t, database.Get(&f.trainerID,
		`INSERT INTO trainers (name, lesson_name, lesson_minutes, lesson_change_range)
		 VALUES ('Kim', 'PT', 60, 1) RETURNING id`))
	require.NoError(t, database.Get(&f.userID,
		`INSERT INTO users (name, phone_number) VALUES ('Lee', '01012345678') RETURNING id`))
	require.NoError(t, database.Get(&f.relID,
		`INSERT INTO trainer_users (trainer_id, user_id, lesson_total_count, lesson_current_count)
		 VALUES ($1, $2, $3, $3) RETURNING id`, f.trainerID, f.userID, credits))

	tx := db.NewTransactor(database)
	scheduleRepo := schedule.NewRepository(database)
	f.schedules = schedule.NewService(
		scheduleRepo,
		trainer.NewRepository(database),
		traineruser.NewRepository(database),
		tx,
		notification.Nop{},
		schedule.Options{Now: func() time.Time { return at("2024-01-01 09:00:00") }},
	)
	f.tickets = changeticket.NewService(
		changeticket.NewRepository(database), scheduleRepo, f.schedules, tx, notification.Nop{}, changeticket.PolicyAny)

	return f
}

func (f *fixture) credits(t *testing.T) int {
	var n int
	require.NoError(t, f.db.Get(&n, `SELECT lesson_current_count FROM trainer_users WHERE id = $1`, f.relID))
	return n
}

func at(s string) time.Time {
	t, err := schedule.ParseDateTime(s)
	if err != nil {
		panic(err)
	}
	return t
}
