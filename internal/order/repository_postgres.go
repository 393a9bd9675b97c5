package order

import (
	"database/sql"

	"github.com/lib/pq"

	"github.com/pakin42/ecommerce-backend/internal/item"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	insertOrderQuery = `
		INSERT INTO orders (user_id, item_ids, total, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING order_id
	`
	listOrdersByUserQuery = `
		SELECT order_id, user_id, item_ids, total, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY order_id
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

func (r *PostgresRepository) Create(ord Order) (Order, error) {
	ids := make(pq.Int64Array, 0, len(ord.Items))
	for _, it := range ord.Items {
		ids = append(ids, int64(it.ID))
	}

	var id int
	err := r.db.QueryRow(insertOrderQuery, ord.UserID, ids, ord.Total, ord.CreatedAt).Scan(&id)
	if err != nil {
		return Order{}, err
	}
	ord.ID = id
	return ord, nil
}

func (r *PostgresRepository) ListByUserID(userID int) ([]Order, error) {
	rows, err := r.db.Query(listOrdersByUserQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]Order, 0)
	sequences := make([]pq.Int64Array, 0)
	for rows.Next() {
		var (
			ord Order
			ids pq.Int64Array
		)
		if err := rows.Scan(&ord.ID, &ord.UserID, &ids, &ord.Total, &ord.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, ord)
		sequences = append(sequences, ids)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	byID, err := r.loadItems(sequences)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		items := make([]item.Item, 0, len(sequences[i]))
		for _, id := range sequences[i] {
			if it, ok := byID[int(id)]; ok {
				items = append(items, it)
			}
		}
		orders[i].Items = items
	}
	return orders, nil
}

// loadItems fetches every distinct item referenced by the given id
// sequences in one query.
func (r *PostgresRepository) loadItems(sequences []pq.Int64Array) (map[int]item.Item, error) {
	seen := make(map[int64]struct{})
	ids := make(pq.Int64Array, 0)
	for _, seq := range sequences {
		for _, id := range seq {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	byID := make(map[int]item.Item)
	if len(ids) == 0 {
		return byID, nil
	}

	rows, err := r.db.Query(getItemsByIDsQuery, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var it item.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.Price); err != nil {
			return nil, err
		}
		byID[it.ID] = it
	}
	return byID, rows.Err()
}
