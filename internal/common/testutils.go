package common

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testPostgresImage = "docker.io/postgres:14.11-bookworm"
	testRabbitMQImage = "rabbitmq:3.12.11-management-alpine"
)

// TestRabbitMQ starts a broker container for the test and returns its AMQP URL.
func TestRabbitMQ(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	container, err := rabbitmq.Run(ctx, testRabbitMQImage,
		rabbitmq.WithAdminUsername("guest"),
		rabbitmq.WithAdminPassword("guest"),
	)
	if err != nil {
		t.Fatalf("could not start rabbitmq container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("could not terminate rabbitmq container: %v", err)
		}
	})

	uri, err := container.AmqpURL(ctx)
	if err != nil {
		t.Fatalf("could not get rabbitmq connection URL: %v", err)
	}

	return uri
}

// TestSessionDB starts a postgres container with the session schema applied.
// migrations is relative to the calling package, e.g. "file://../../migrations".
func TestSessionDB(t *testing.T, migrations string) *sql.DB {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx, testPostgresImage,
		postgres.WithDatabase("blogfront"),
		postgres.WithUsername("blogfront"),
		postgres.WithPassword("blogfront"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("could not start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		container.Terminate(ctx)
		t.Fatalf("could not get postgres connection string: %v", err)
	}

	m, err := Migrate(migrations, dsn)
	if err != nil {
		container.Terminate(ctx)
		t.Fatalf("could not run migrations: %v", err)
	}

	db, err := NewDB(dsn, 5, 5, time.Minute)
	if err != nil {
		container.Terminate(ctx)
		t.Fatalf("could not open database: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
		m.Drop()
		m.Close()
		if err := container.Terminate(ctx); err != nil {
			t.Logf("could not terminate postgres container: %v", err)
		}
	})

	return db
}
