package test

import (
	"database/sql"
	"os"
	"testing"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

// Postgres test database configuration
const (
	PostgresUser     = "proposals"
	PostgresPassword = "proposals_pwd"
	PostgresDB       = "proposals_test"
	PostgresHost     = "localhost"
)

// PostgresDSN returns the data source name for Postgres connection with dynamic port
func PostgresDSN(port string) string {
	return "postgres://" + PostgresUser + ":" + PostgresPassword + "@" + PostgresHost + ":" + port + "/" + PostgresDB + "?sslmode=disable"
}

// PostgresDockerEnv returns the environment variables for Postgres Docker container
func PostgresDockerEnv() []string {
	return []string{
		"POSTGRES_USER=" + PostgresUser,
		"POSTGRES_PASSWORD=" + PostgresPassword,
		"POSTGRES_DB=" + PostgresDB,
	}
}

// SetupPostgresDB starts a disposable Postgres container and waits for it to
// accept connections. Returns a database/sql handle for fixtures, the mapped
// host port and the resource for cleanup.
func SetupPostgresDB(t *testing.T, pool *dockertest.Pool) (*sql.DB, string, *dockertest.Resource) {
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env:        PostgresDockerEnv(),
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("Could not start postgres container: %s", err)
	}

	port := resource.GetPort("5432/tcp")

	var db *sql.DB
	if err := pool.Retry(func() error {
		var openErr error
		db, openErr = sql.Open("pgx", PostgresDSN(port))
		if openErr != nil {
			return openErr
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("Could not connect to postgres container: %s", err)
	}

	return db, port, resource
}

func ExecFile(t *testing.T, db *sql.DB, file string) {
	if t.Failed() {
		return
	}
	fileContent, err := os.ReadFile(file)
	if err != nil {
		t.Errorf("cannot read sql file %v", err)
		return
	}
	sql := string(fileContent)
	_, err = db.Exec(sql)
	if err != nil {
		t.Errorf("cannot execute sql file %v", err)
		return
	}
}

// ResetTables truncates the document store between tests.
func ResetTables(t *testing.T, db *sql.DB) {
	if t.Failed() {
		return
	}
	if _, err := db.Exec("TRUNCATE TABLE documents"); err != nil {
		t.Errorf("cannot truncate documents: %v", err)
	}
}

// Fixture inserts one document row for test setup.
func Fixture(t *testing.T, db *sql.DB, collection, id, doc string) {
	if t.Failed() {
		return
	}
	_, err := db.Exec(
		"INSERT INTO documents (collection, id, doc) VALUES ($1, $2, $3::jsonb)",
		collection, id, doc,
	)
	if err != nil {
		t.Errorf("cannot insert fixture into %s: %v", collection, err)
	}
}
