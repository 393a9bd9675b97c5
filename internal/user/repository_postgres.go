package user

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
	getUserByIDQuery = `
		SELECT user_id, username, password
		FROM users
		WHERE user_id = $1
	`
	getUserByUsernameQuery = `
		SELECT user_id, username, password
		FROM users
		WHERE username = $1
	`
	insertUserQuery = `
		INSERT INTO users (username, password)
		VALUES ($1, $2)
		RETURNING user_id
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByID(id int) (User, error) {
	u, err := scanUser(r.db.QueryRow(getUserByIDQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepository) GetByUsername(username string) (User, error) {
	u, err := scanUser(r.db.QueryRow(getUserByUsernameQuery, username))
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepository) Create(u User) (User, error) {
	var id int
	if err := r.db.QueryRow(insertUserQuery, u.Username, u.Password).Scan(&id); err != nil {
		return User{}, err
	}
	u.ID = id
	return u, nil
}

func scanUser(scanner rowScanner) (User, error) {
	var u User
	if err := scanner.Scan(&u.ID, &u.Username, &u.Password); err != nil {
		return User{}, err
	}
	return u, nil
}
