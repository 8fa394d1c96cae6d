package orders

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/storefront/internal/server/models"
)

const (
	insertQuery = `(?s)^INSERT\s+INTO\s+orders\s*\(user_id,\s*package_id,\s*quantity,\s*total,\s*status\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5\)\s*RETURNING\s+id,\s*created_at\s*$`
	listQuery   = `(?s)^SELECT\s+id,\s*user_id,\s*package_id,\s*quantity,\s*total,\s*status,\s*created_at\s+FROM\s+orders\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+created_at\s+DESC\s*$`
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(insertQuery).
		WithArgs("u1", "p1", 2, int64(243000), models.OrderStatusPlaced).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("o1", created))

	o := &models.Order{UserID: "u1", PackageID: "p1", Quantity: 2, Total: 243000, Status: models.OrderStatusPlaced}
	got, err := repo.Create(context.Background(), o)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "o1" || !got.CreatedAt.Equal(created) {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQuery).
		WithArgs("u1", "p1", 1, int64(1), models.OrderStatusPlaced).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.Order{UserID: "u1", PackageID: "p1", Quantity: 1, Total: 1, Status: models.OrderStatusPlaced})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestListByUser(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "user_id", "package_id", "quantity", "total", "status", "created_at"}).
		AddRow("o2", "u1", "p2", 1, int64(100), "placed", now).
		AddRow("o1", "u1", "p1", 3, int64(300), "placed", now.Add(-time.Hour))
	mock.ExpectQuery(listQuery).WithArgs("u1").WillReturnRows(rows)

	got, err := repo.ListByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "o2" || got[1].Quantity != 3 {
		t.Fatalf("unexpected orders: %+v", got)
	}
}

func TestListByUser_EmptyIsNotNil(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(listQuery).WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "package_id", "quantity", "total", "status", "created_at"}))

	got, err := repo.ListByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestListByUser_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(listQuery).WithArgs("u1").WillReturnError(errors.New("db err"))

	_, err := repo.ListByUser(context.Background(), "u1")
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
