package item

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPostgresList(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"item_id", "name", "description", "price"}).
		AddRow(1, "Round Widget", "A widget that is round", "2.99").
		AddRow(2, "Square Widget", "A widget that is square", "1.99")
	mock.ExpectQuery("FROM items").WillReturnRows(rows)

	items, err := repo.List()
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Price.String() != "2.99" {
		t.Fatalf("unexpected price %s", items[0].Price.String())
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM items").WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"item_id", "name", "description", "price"}))

	if _, err := repo.GetByID(99); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresListByName(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"item_id", "name", "description", "price"}).
		AddRow(1, "Round Widget", "A widget that is round", "2.99")
	mock.ExpectQuery("FROM items").WithArgs("Round Widget").WillReturnRows(rows)

	items, err := repo.ListByName("Round Widget")
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if len(items) != 1 || items[0].Name != "Round Widget" {
		t.Fatalf("unexpected result %+v", items)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
