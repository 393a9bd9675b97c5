package main

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/pakin42/ecommerce-backend/internal/cart"
	"github.com/pakin42/ecommerce-backend/internal/config"
	"github.com/pakin42/ecommerce-backend/internal/item"
	"github.com/pakin42/ecommerce-backend/internal/order"
	"github.com/pakin42/ecommerce-backend/internal/user"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLogger)

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()

	bootstrapSchema(db)
	seedItems(db)

	// the cart repository doubles as the user service's cart provisioner
	cartRepo := cart.NewPostgresRepository(db)

	userService := user.NewService(user.NewPostgresRepository(db), cartRepo)
	userHandler := user.NewHandler(userService)

	itemService := item.NewService(item.NewPostgresRepository(db))
	itemHandler := item.NewHandler(itemService)

	cartService := cart.NewService(cartRepo, userService, itemService)
	cartHandler := cart.NewHandler(cartService)

	orderService := order.NewService(order.NewPostgresRepository(db), userService, cartService)
	orderHandler := order.NewHandler(orderService)

	userHandler.RegisterRoutes(app)
	itemHandler.RegisterRoutes(app)
	cartHandler.RegisterRoutes(app)
	orderHandler.RegisterRoutes(app)

	if err := app.Listen(cfg.Addr); err != nil {
		panic(err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}

func requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	fmt.Printf("URL = %s, Method = %s, Start Time = %v\n", c.OriginalURL(), c.Method(), start)
	return c.Next()
}

func mustOpenDB(dbURL string) *sql.DB {
	if dbURL == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}

func bootstrapSchema(db *sql.DB) {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS users (
		user_id SERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL
	)`); err != nil {
		panic(err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS items (
		item_id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price NUMERIC NOT NULL DEFAULT 0
	)`); err != nil {
		panic(err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS carts (
		cart_id SERIAL PRIMARY KEY,
		user_id INT NOT NULL UNIQUE,
		item_ids integer[] NOT NULL DEFAULT '{}',
		total NUMERIC NOT NULL DEFAULT 0
	)`); err != nil {
		panic(err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS orders (
		order_id SERIAL PRIMARY KEY,
		user_id INT NOT NULL,
		item_ids integer[] NOT NULL DEFAULT '{}',
		total NUMERIC NOT NULL DEFAULT 0,
		created_at TEXT
	)`); err != nil {
		panic(err)
	}
}

// seedItems fills the catalog when it is empty. Items are administered out
// of band, so a fresh database gets a small starter catalog.
func seedItems(db *sql.DB) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM items`).Scan(&count); err != nil {
		fmt.Printf("warning: could not count items: %v\n", err)
		return
	}
	if count > 0 {
		return
	}

	seed := []struct {
		name, desc, price string
	}{
		{"Round Widget", "A widget that is round", "2.99"},
		{"Square Widget", "A widget that is square", "1.99"},
	}
	for _, s := range seed {
		if _, err := db.Exec(`INSERT INTO items (name, description, price) VALUES ($1,$2,$3)`, s.name, s.desc, s.price); err != nil {
			fmt.Printf("warning: could not seed item %q: %v\n", s.name, err)
		}
	}
}
