// Package integration runs rendered specql statements against real databases.
package integration

import (
	"context"
	"database/sql"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	_ "github.com/microsoft/go-mssqldb"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mariadb"
	"github.com/testcontainers/testcontainers-go/modules/mssql"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/zoobzio/dbml"
	"github.com/zoobzio/specql"
)

// PostgresContainer wraps a testcontainers PostgreSQL instance.
type PostgresContainer struct {
	container *postgres.PostgresContainer
	conn      *pgx.Conn
}

// MariaDBContainer wraps a testcontainers MariaDB instance, used for the mysql dialect.
type MariaDBContainer struct {
	container *mariadb.MariaDBContainer
	db        *sql.DB
}

// MSSQLContainer wraps a testcontainers SQL Server instance.
type MSSQLContainer struct {
	container *mssql.MSSQLServerContainer
	db        *sql.DB
}

// Shared containers - lazily initialized
var (
	sharedPgContainer      *PostgresContainer
	sharedMariaDBContainer *MariaDBContainer
	sharedMSSQLContainer   *MSSQLContainer

	pgOnce      sync.Once
	mariadbOnce sync.Once
	mssqlOnce   sync.Once
)

// TestMain tears down whichever shared containers were started.
func TestMain(m *testing.M) {
	// testing.Short() is not available before m.Run; each test checks it.
	code := m.Run()

	ctx := context.Background()

	if sharedPgContainer != nil {
		_ = sharedPgContainer.conn.Close(ctx)
		_ = sharedPgContainer.container.Terminate(ctx)
	}
	if sharedMariaDBContainer != nil {
		_ = sharedMariaDBContainer.db.Close()
		_ = sharedMariaDBContainer.container.Terminate(ctx)
	}
	if sharedMSSQLContainer != nil {
		_ = sharedMSSQLContainer.db.Close()
		_ = sharedMSSQLContainer.container.Terminate(ctx)
	}

	os.Exit(code)
}

// getPostgresContainer returns the shared PostgreSQL container, starting it if needed.
func getPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()

	pgOnce.Do(func() {
		ctx := context.Background()

		container, err := postgres.Run(ctx,
			"docker.io/postgres:16-alpine",
			postgres.WithDatabase("specql_test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second),
			),
		)
		if err != nil {
			log.Fatalf("Failed to start postgres container: %v", err)
		}

		connStr, err := container.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			log.Fatalf("Failed to get connection string: %v", err)
		}

		conn, err := pgx.Connect(ctx, connStr)
		if err != nil {
			log.Fatalf("Failed to connect to postgres: %v", err)
		}

		sharedPgContainer = &PostgresContainer{container: container, conn: conn}
	})

	return sharedPgContainer
}

// getMariaDBContainer returns the shared MariaDB container, starting it if needed.
func getMariaDBContainer(t *testing.T) *MariaDBContainer {
	t.Helper()

	mariadbOnce.Do(func() {
		ctx := context.Background()

		container, err := mariadb.Run(ctx,
			"docker.io/mariadb:11",
			mariadb.WithDatabase("specql_test"),
			mariadb.WithUsername("test"),
			mariadb.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("mariadbd: ready for connections").
					WithStartupTimeout(60*time.Second),
			),
		)
		if err != nil {
			log.Fatalf("Failed to start mariadb container: %v", err)
		}

		connStr, err := container.ConnectionString(ctx)
		if err != nil {
			log.Fatalf("Failed to get connection string: %v", err)
		}

		db, err := sql.Open("mysql", connStr)
		if err != nil {
			log.Fatalf("Failed to connect to mariadb: %v", err)
		}
		waitForPing(db, 30)

		sharedMariaDBContainer = &MariaDBContainer{container: container, db: db}
	})

	return sharedMariaDBContainer
}

// getMSSQLContainer returns the shared MSSQL container, starting it if needed.
func getMSSQLContainer(t *testing.T) *MSSQLContainer {
	t.Helper()

	mssqlOnce.Do(func() {
		ctx := context.Background()

		container, err := mssql.Run(ctx,
			"mcr.microsoft.com/mssql/server:2022-latest",
			mssql.WithAcceptEULA(),
			mssql.WithPassword("Test@12345"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("SQL Server is now ready for client connections").
					WithStartupTimeout(120*time.Second),
			),
		)
		if err != nil {
			log.Fatalf("Failed to start mssql container: %v", err)
		}

		connStr, err := container.ConnectionString(ctx)
		if err != nil {
			log.Fatalf("Failed to get connection string: %v", err)
		}

		db, err := sql.Open("sqlserver", connStr)
		if err != nil {
			log.Fatalf("Failed to connect to mssql: %v", err)
		}
		waitForPing(db, 60)

		sharedMSSQLContainer = &MSSQLContainer{container: container, db: db}
	})

	return sharedMSSQLContainer
}

func waitForPing(db *sql.DB, attempts int) {
	for i := 0; i < attempts; i++ {
		if err := db.Ping(); err == nil {
			return
		}
		time.Sleep(time.Second)
	}
}

// schemaStatements create and seed the shared test schema. The DDL uses
// types every engine under test accepts.
var schemaStatements = []string{
	`DROP TABLE IF EXISTS orders`,
	`DROP TABLE IF EXISTS users`,
	`CREATE TABLE users (
		id BIGINT PRIMARY KEY,
		username VARCHAR(100) NOT NULL,
		email VARCHAR(100) NOT NULL,
		age INT NULL,
		active INT NOT NULL,
		status VARCHAR(20) NOT NULL
	)`,
	`CREATE TABLE orders (
		id BIGINT PRIMARY KEY,
		user_id BIGINT NOT NULL,
		total DECIMAL(10,2) NOT NULL,
		status VARCHAR(20) NOT NULL
	)`,
	`INSERT INTO users (id, username, email, age, active, status) VALUES
		(1, 'alice', 'alice@example.com', 30, 1, 'active'),
		(2, 'bob', 'bob@example.com', 25, 1, 'active'),
		(3, 'charlie', 'charlie@example.com', NULL, 0, 'inactive'),
		(4, 'diana', 'diana@example.com', 28, 1, 'active'),
		(5, 'O''Brien', 'obrien@example.com', 41, 0, 'inactive')`,
	`INSERT INTO orders (id, user_id, total, status) VALUES
		(1, 1, 99.99, 'completed'),
		(2, 1, 149.99, 'completed'),
		(3, 2, 49.99, 'pending'),
		(4, 4, 199.99, 'completed')`,
}

// createTestInstance creates a SpecQL instance matching the test database schema.
func createTestInstance(t *testing.T) *specql.SpecQL {
	t.Helper()

	project := dbml.NewProject("test")

	users := dbml.NewTable("users")
	users.AddColumn(dbml.NewColumn("id", "bigint"))
	users.AddColumn(dbml.NewColumn("username", "varchar"))
	users.AddColumn(dbml.NewColumn("email", "varchar"))
	users.AddColumn(dbml.NewColumn("age", "int"))
	users.AddColumn(dbml.NewColumn("active", "int"))
	users.AddColumn(dbml.NewColumn("status", "varchar"))
	project.AddTable(users)

	orders := dbml.NewTable("orders")
	orders.AddColumn(dbml.NewColumn("id", "bigint"))
	orders.AddColumn(dbml.NewColumn("user_id", "bigint"))
	orders.AddColumn(dbml.NewColumn("total", "numeric"))
	orders.AddColumn(dbml.NewColumn("status", "varchar"))
	project.AddTable(orders)

	instance, err := specql.NewFromDBML(project)
	if err != nil {
		t.Fatalf("Failed to create instance: %v", err)
	}
	return instance
}

// queryCase is a spec run against every engine along with the rows it must return.
type queryCase struct {
	name string
	spec *specql.Builder
	rows int
	// skip lists dialects whose validator rejects the spec.
	skip []specql.Dialect
}

func (qc queryCase) skips(d specql.Dialect) bool {
	for _, s := range qc.skip {
		if s == d {
			return true
		}
	}
	return false
}

func queryCases(instance *specql.SpecQL) []queryCase {
	users := instance.T("users")
	orders := instance.T("orders")
	username := instance.C("users", "username")
	onUser := specql.Cmp(instance.C("orders", "user_id"), specql.EQ, instance.C("users", "id", "u"))

	return []queryCase{
		{
			name: "select all",
			spec: specql.Select(users),
			rows: 5,
		},
		{
			name: "where equals",
			spec: specql.Select(users).
				Columns(instance.C("users", "id"), username).
				Where(specql.Cmp(instance.C("users", "status"), specql.EQ, "active")),
			rows: 3,
		},
		{
			name: "quoted literal",
			spec: specql.Select(users).Where(specql.Cmp(username, specql.EQ, "O'Brien")),
			rows: 1,
		},
		{
			name: "in list",
			spec: specql.Select(users).Where(specql.Cmp(username, specql.IN, "alice", "bob", "zed")),
			rows: 2,
		},
		{
			name: "not in list",
			spec: specql.Select(users).Where(specql.Cmp(username, specql.NotIn, "alice", "bob")),
			rows: 3,
		},
		{
			name: "like",
			spec: specql.Select(users).Where(specql.Cmp(username, specql.LIKE, "li")),
			rows: 2,
		},
		{
			name: "is null",
			spec: specql.Select(users).Where(specql.Cmp(instance.C("users", "age"), specql.IsNull)),
			rows: 1,
		},
		{
			name: "range",
			spec: specql.Select(users).Where(
				specql.Cmp(instance.C("users", "age"), specql.GE, 28),
				specql.Cmp(instance.C("users", "age"), specql.LT, 41),
			),
			rows: 2,
		},
		{
			name: "inner join",
			spec: specql.Select(instance.T("users", "u")).
				Columns(instance.C("users", "username", "u"), instance.C("orders", "total")).
				InnerJoin("orders", onUser).
				Where(specql.Cmp(instance.C("orders", "status"), specql.EQ, "completed")),
			rows: 3,
		},
		{
			name: "left join",
			spec: specql.Select(instance.T("users", "u")).
				Columns(instance.C("users", "username", "u")).
				LeftJoin("orders", onUser).
				Where(specql.Cmp(instance.C("users", "active", "u"), specql.EQ, 1)),
			rows: 4,
		},
		{
			name: "multiple tables",
			spec: specql.Select(users, orders).
				Columns(username, instance.C("orders", "total")).
				Where(specql.Cmp(instance.C("orders", "user_id"), specql.EQ, instance.C("users", "id"))),
			rows: 4,
		},
		{
			name: "aggregate",
			spec: specql.Select(orders).
				Aggregate(specql.AggSum, instance.C("orders", "total")).
				GroupBy(instance.C("orders", "status")),
			rows: 2,
		},
		{
			name: "having",
			spec: specql.Select(orders).
				Aggregate(specql.AggSum, instance.C("orders", "total")).
				GroupBy(instance.C("orders", "status")).
				Having(specql.Cmp(specql.Raw("SUM(orders.total)"), specql.GT, 100)),
			rows: 1,
			skip: []specql.Dialect{specql.SQLite},
		},
		{
			name: "distinct",
			spec: specql.Select(users).Distinct().Columns(instance.C("users", "status")),
			rows: 2,
		},
		{
			name: "order and limit",
			spec: specql.Select(users).
				Columns(username).
				OrderBy("users.id DESC").
				Limit(2),
			rows: 2,
		},
	}
}

// runCases renders each case for the dialect and checks the row count
// reported by count.
func runCases(t *testing.T, d specql.Dialect, count func(t *testing.T, sql string) int) {
	t.Helper()
	instance := createTestInstance(t)

	for _, qc := range queryCases(instance) {
		t.Run(qc.name, func(t *testing.T) {
			spec := qc.spec.For(d).Spec()
			sql, err := instance.Render(spec)
			if qc.skips(d) {
				if err == nil {
					t.Fatalf("expected %s to reject spec, got: %s", d, sql)
				}
				return
			}
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			if got := count(t, sql); got != qc.rows {
				t.Errorf("rows = %d, want %d\nSQL: %s", got, qc.rows, sql)
			}
		})
	}
}

// countSQLRows runs a query through database/sql and counts the rows.
func countSQLRows(ctx context.Context, t *testing.T, db *sql.DB, query string) int {
	t.Helper()
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		t.Fatalf("Failed to execute query: %v\nSQL: %s", err, query)
	}
	defer rows.Close()

	n := 0
	for rows.Next() {
		n++
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("Row iteration failed: %v", err)
	}
	return n
}

func execAll(ctx context.Context, t *testing.T, db *sql.DB) {
	t.Helper()
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			t.Fatalf("Failed to execute SQL: %v\nSQL: %s", err, stmt)
		}
	}
}
