package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"shadeworks/internal/config"
	"shadeworks/internal/http/handlers"
	applog "shadeworks/internal/log"
	"shadeworks/internal/repos"
	"shadeworks/internal/store"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	gw := store.NewGateway(repos.NewKVRepo(db))

	// Change feed: log every state broadcast the way another open tab
	// would observe it.
	go func() {
		cartCh, _ := gw.Subscribe(store.TopicCart)
		savedCh, _ := gw.Subscribe(store.TopicSavedCarts)
		itemsCh, _ := gw.Subscribe(store.TopicSavedItems)
		for {
			select {
			case t := <-cartCh:
				applog.Info(nil, "store.changed", map[string]any{"topic": string(t)})
			case t := <-savedCh:
				applog.Info(nil, "store.changed", map[string]any{"topic": string(t)})
			case t := <-itemsCh:
				applog.Info(nil, "store.changed", map[string]any{"topic": string(t)})
			}
		}
	}()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Something went wrong. Please try again.",
			})
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
	}))

	// ---------- App handlers ----------
	deps := handlers.NewDeps(db, cfg, gw)

	// Catalog
	app.Get("/products", deps.ProductHandler.List)
	app.Get("/products/:id", deps.ProductHandler.Detail)

	// Pricing quotes
	api := app.Group("/api/v1")
	api.Post("/quote", deps.QuoteHandler.Quote)

	// Cart
	app.Get("/cart", deps.CartHandler.View)
	app.Post("/cart", deps.CartHandler.Add)
	app.Post("/cart/quantity", deps.CartHandler.UpdateQuantity)
	app.Post("/cart/remove", deps.CartHandler.Remove)
	app.Post("/cart/clear", deps.CartHandler.Clear)
	app.Post("/cart/coupon", deps.CartHandler.ApplyCoupon)

	// Saved carts
	app.Get("/saved-carts", deps.SavedCartHandler.List)
	app.Post("/saved-carts", deps.SavedCartHandler.Save)
	app.Post("/saved-carts/:id/delete", deps.SavedCartHandler.Delete)
	app.Post("/saved-carts/:id/load", deps.SavedCartHandler.Load)
	app.Post("/saved-carts/:id/merge", deps.SavedCartHandler.Merge)

	// Saved for later
	app.Get("/saved", deps.SavedHandler.List)
	app.Post("/saved", deps.SavedHandler.MoveToSaved)
	app.Post("/saved/restore", deps.SavedHandler.MoveToCart)
	app.Post("/saved/delete", deps.SavedHandler.Remove)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).JSON(fiber.Map{"error": "not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
