package item

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	listItemsQuery = `
		SELECT item_id, name, description, price
		FROM items
		ORDER BY item_id
	`
	getItemByIDQuery = `
		SELECT item_id, name, description, price
		FROM items
		WHERE item_id = $1
	`
	listItemsByNameQuery = `
		SELECT item_id, name, description, price
		FROM items
		WHERE lower(name) = lower($1)
		ORDER BY item_id
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Item, error) {
	rows, err := r.db.Query(listItemsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Item, error) {
	it, err := scanItem(r.db.QueryRow(getItemByIDQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return Item{}, ErrNotFound
		}
		return Item{}, err
	}
	return it, nil
}

func (r *PostgresRepository) ListByName(name string) ([]Item, error) {
	rows, err := r.db.Query(listItemsByNameQuery, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func scanItem(scanner rowScanner) (Item, error) {
	var it Item
	if err := scanner.Scan(&it.ID, &it.Name, &it.Description, &it.Price); err != nil {
		return Item{}, err
	}
	return it, nil
}
