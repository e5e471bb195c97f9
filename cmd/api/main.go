package main

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/modernhome/storefront-backend/internal/catalogue"
	"github.com/modernhome/storefront-backend/internal/category"
	"github.com/modernhome/storefront-backend/internal/config"
	"github.com/modernhome/storefront-backend/internal/contact"
	"github.com/modernhome/storefront-backend/internal/dashboard"
	"github.com/modernhome/storefront-backend/internal/home"
	"github.com/modernhome/storefront-backend/internal/image"
	"github.com/modernhome/storefront-backend/internal/product"
	"github.com/modernhome/storefront-backend/internal/storage"
	"github.com/modernhome/storefront-backend/internal/user"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLog)

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()
	ensureSchema(db)

	store, err := storage.NewDiskStorage(cfg.UploadsDir)
	if err != nil {
		panic(err)
	}

	imageRepo := image.NewPostgresRepository(db)
	imageManager := image.NewManager(imageRepo, store)

	contactRepo := contact.NewPostgresRepository(db)
	contactService := contact.NewService(contactRepo, newMailer(cfg))
	contactHandler := contact.NewHandler(contactService)

	userService := user.NewService(user.NewPostgresRepository(db))
	userHandler := user.NewHandler(userService, cfg.JWTSecret)

	categoryHandler := category.NewHandler(category.NewService(category.NewPostgresRepository(db), store))
	productHandler := product.NewHandler(product.NewService(product.NewPostgresRepository(db), imageManager))
	catalogueHandler := catalogue.NewHandler(catalogue.NewService(catalogue.NewPostgresRepository(db), imageManager))
	homeHandler := home.NewHandler(home.NewService(home.NewPostgresRepository(db), imageManager))
	dashboardHandler := dashboard.NewHandler(dashboard.NewService(dashboard.NewPostgresRepository(db), contactRepo))

	homeHandler.RegisterPublicRoutes(app)
	catalogueHandler.RegisterPublicRoutes(app)
	contactHandler.RegisterPublicRoutes(app)
	userHandler.RegisterPublicRoutes(app)

	// uploaded category and product images are served as static files
	app.Static("/uploads", cfg.UploadsDir)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	dashboardHandler.RegisterAdminRoutes(app)
	categoryHandler.RegisterAdminRoutes(app)
	productHandler.RegisterAdminRoutes(app)
	userHandler.RegisterAdminRoutes(app)
	contactHandler.RegisterAdminRoutes(app)

	app.Listen(cfg.Addr)
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func requestLog(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	fmt.Printf("URL = %s, Method = %s, Status = %d, Took = %v\n",
		c.OriginalURL(), c.Method(), c.Response().StatusCode(), time.Since(start))
	return err
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

func newMailer(cfg config.Config) contact.Mailer {
	if cfg.SMTPAddr == "" {
		return &contact.LogMailer{To: cfg.OperatorEmail}
	}
	return contact.NewSMTPMailer(cfg.SMTPAddr, cfg.SMTPFrom, cfg.OperatorEmail)
}

func ensureSchema(db *sql.DB) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			image TEXT,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			is_featured BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id SERIAL PRIMARY KEY,
			category_id INT NOT NULL REFERENCES categories(id),
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price NUMERIC NOT NULL DEFAULT 0,
			sale_price NUMERIC,
			stock_quantity INT NOT NULL DEFAULT 0,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			is_featured BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS product_images (
			id SERIAL PRIMARY KEY,
			product_id INT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
			path TEXT NOT NULL,
			position INT NOT NULL DEFAULT 0,
			is_primary BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE TABLE IF NOT EXISTS tags (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS product_tag (
			product_id INT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
			tag_id INT NOT NULL REFERENCES tags(id) ON DELETE CASCADE,
			PRIMARY KEY (product_id, tag_id)
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			email_verified_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS contact_messages (
			id SERIAL PRIMARY KEY,
			name TEXT,
			email TEXT,
			phone TEXT,
			subject TEXT,
			message TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			panic(err)
		}
	}
}
