package user

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPostgresGetByUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"user_id", "username", "password"}).
		AddRow(3, "alice", "$2a$10$hash")
	mock.ExpectQuery("FROM users").WithArgs("alice").WillReturnRows(rows)

	u, err := repo.GetByUsername("alice")
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if u.ID != 3 || u.Username != "alice" {
		t.Fatalf("unexpected user %+v", u)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresGetByUsername_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM users").WithArgs("bob").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "username", "password"}))

	if _, err := repo.GetByUsername("bob"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("INSERT INTO users").WithArgs("alice", "$2a$10$hash").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(7))

	created, err := repo.Create(User{Username: "alice", Password: "$2a$10$hash"})
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if created.ID != 7 {
		t.Fatalf("expected assigned id 7, got %d", created.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
