package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"pos-service/internal/api/handlers"
	"pos-service/internal/cache"
	"pos-service/internal/database"
	"pos-service/internal/repository"
)

func main() {
	cfg, err := database.LoadConfig()
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}

	conn, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}
	defer conn.Close(context.Background())

	if err := database.Migrate(conn, cfg.MigrationsDir); err != nil {
		log.Fatal("migrations failed: ", err)
	}

	rdb, err := cache.ConnectRedis(cfg)
	if err != nil {
		log.Fatal("failed to connect redis: ", err)
	}
	defer rdb.Close()

	productRepo := repository.NewProductRepository(conn)
	saleRepo := repository.NewSaleRepository(conn)
	reportRepo := cache.NewCachedReportRepository(repository.NewReportRepository(conn), rdb)

	productHandler := handlers.NewProductHandler(productRepo)
	saleHandler := handlers.NewSaleHandler(saleRepo, reportRepo)
	reportHandler := handlers.NewReportHandler(reportRepo)
	exportHandler := handlers.NewExportHandler(productRepo, saleRepo)
	maintenanceHandler := handlers.NewMaintenanceHandler(productRepo, saleRepo, reportRepo)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/products", func(r chi.Router) {
		r.Post("/", productHandler.Create)
		r.Get("/", productHandler.List)
		r.Get("/search", productHandler.Search)
		r.Get("/{id}", productHandler.GetByID)
		r.Patch("/{id}", productHandler.Update)
		r.Post("/{id}/activate", productHandler.Activate)
		r.Post("/{id}/deactivate", productHandler.Deactivate)
		r.Delete("/{id}", productHandler.Delete)
	})

	r.Route("/sales", func(r chi.Router) {
		r.Post("/", saleHandler.Create)
		r.Get("/", saleHandler.ListInRange)
		r.Get("/today", saleHandler.Today)
		r.Delete("/{id}", saleHandler.Delete)
	})

	r.Route("/reports", func(r chi.Router) {
		r.Get("/today", reportHandler.Today)
		r.Get("/summary", reportHandler.PeriodSummary)
		r.Get("/top-products", reportHandler.TopProducts)
		r.Get("/daily-revenue", reportHandler.DailyRevenue)
		r.Get("/stats", reportHandler.Stats)
	})

	r.Route("/export", func(r chi.Router) {
		r.Get("/backup", exportHandler.Backup)
		r.Get("/sales.csv", exportHandler.SalesCSV)
	})

	r.Route("/maintenance", func(r chi.Router) {
		r.Post("/clear-sales", maintenanceHandler.ClearSales)
		r.Post("/clear-products", maintenanceHandler.ClearProducts)
	})

	log.Printf("Listening on %s", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatal("server stopped: ", err)
	}
}
