package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pribylovaa/go-blog/internal/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(dsn, port string) *config.Config {
	return &config.Config{
		Env:      envLocal,
		HTTP:     config.HTTPConfig{Host: "127.0.0.1", Port: port},
		Postgres: config.PostgresConfig{URL: dsn},
		Cache:    config.CacheConfig{SweepInterval: time.Minute},
		Timeouts: config.TimeoutConfig{Request: time.Second, Shutdown: time.Second},
	}
}

// Ошибка старта возвращается из run, а не завершает процесс внутри него.
func TestRun_PostgresConfigError(t *testing.T) {
	err := run(testConfig("::not a dsn", "0"), discardLogger())
	require.Error(t, err)
	require.ErrorContains(t, err, "postgres connect")
}

// Занятый порт: run возвращает ошибку listen после того, как пул уже открыт.
func TestIntegration_Run_ListenError(t *testing.T) {
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "docker.io/postgres:16-alpine",
			Env:          map[string]string{"POSTGRES_USER": "user", "POSTGRES_PASSWORD": "pass", "POSTGRES_DB": "db"},
			ExposedPorts: []string{"5432/tcp"},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)
	dsn := fmt.Sprintf("postgres://user:pass@%s:%s/db?sslmode=disable", host, port.Port())

	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = busy.Close() })
	_, busyPort, err := net.SplitHostPort(busy.Addr().String())
	require.NoError(t, err)

	err = run(testConfig(dsn, busyPort), discardLogger())
	require.Error(t, err)
	require.ErrorContains(t, err, "http listen")
}
