package cart

import (
	"database/sql"

	"github.com/lib/pq"

	"github.com/pakin42/ecommerce-backend/internal/item"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	getCartByUserQuery = `
		SELECT cart_id, user_id, item_ids, total
		FROM carts
		WHERE user_id = $1
	`
	saveCartQuery = `
		UPDATE carts
		SET item_ids = $1, total = $2
		WHERE user_id = $3
		RETURNING cart_id
	`
	insertCartQuery = `
		INSERT INTO carts (user_id, item_ids, total)
		VALUES ($1, '{}', 0)
	`
	getItemsByIDsQuery = `
		SELECT item_id, name, description, price
		FROM items
		WHERE item_id = ANY($1::int[])
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateForUser(userID int) error {
	_, err := r.db.Exec(insertCartQuery, userID)
	return err
}

func (r *PostgresRepository) GetByUserID(userID int) (Cart, error) {
	var (
		c   Cart
		ids pq.Int64Array
	)
	err := r.db.QueryRow(getCartByUserQuery, userID).Scan(&c.ID, &c.UserID, &ids, &c.Total)
	if err != nil {
		if err == sql.ErrNoRows {
			return Cart{}, ErrNotFound
		}
		return Cart{}, err
	}

	items, err := r.hydrateItems(ids)
	if err != nil {
		return Cart{}, err
	}
	c.Items = items
	return c, nil
}

func (r *PostgresRepository) Save(c Cart) (Cart, error) {
	ids := make(pq.Int64Array, 0, len(c.Items))
	for _, it := range c.Items {
		ids = append(ids, int64(it.ID))
	}

	var cartID int
	err := r.db.QueryRow(saveCartQuery, ids, c.Total, c.UserID).Scan(&cartID)
	if err != nil {
		if err == sql.ErrNoRows {
			return Cart{}, ErrNotFound
		}
		return Cart{}, err
	}
	c.ID = cartID
	return c, nil
}

// hydrateItems expands an ordered id sequence into full item records. The
// query returns each distinct id once; repetition in the sequence is
// restored from the map so duplicates keep their positions.
func (r *PostgresRepository) hydrateItems(ids pq.Int64Array) ([]item.Item, error) {
	if len(ids) == 0 {
		return []item.Item{}, nil
	}

	rows, err := r.db.Query(getItemsByIDsQuery, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byID := make(map[int]item.Item)
	for rows.Next() {
		var it item.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.Price); err != nil {
			return nil, err
		}
		byID[it.ID] = it
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	items := make([]item.Item, 0, len(ids))
	for _, id := range ids {
		if it, ok := byID[int(id)]; ok {
			items = append(items, it)
		}
	}
	return items, nil
}
