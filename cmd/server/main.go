package main // Entry point package

import (
	"log" // Logging library

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/movie-ticket-sales/internal/booking"
	"github.com/iliyamo/movie-ticket-sales/internal/cache"
	"github.com/iliyamo/movie-ticket-sales/internal/config"
	"github.com/iliyamo/movie-ticket-sales/internal/database"
	"github.com/iliyamo/movie-ticket-sales/internal/handler"
	"github.com/iliyamo/movie-ticket-sales/internal/queue"
	"github.com/iliyamo/movie-ticket-sales/internal/repository"
	"github.com/iliyamo/movie-ticket-sales/internal/router"
	queue_publisher "github.com/iliyamo/movie-ticket-sales/internal/service"
)

func main() {
	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database open failed: %v", err)
	}
	defer db.Close()

	// Redis is optional; a nil client disables the booking lock and
	// the listing cache but the service stays correct without them.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; booking lock and listing cache disabled")
	}
	store := cache.New(rdb)

	theaters := repository.NewTheaterRepo(db)
	movies := repository.NewMovieRepo(db)
	screenings := repository.NewScreeningRepo(db)
	customers := repository.NewCustomerRepo(db)
	tickets := repository.NewTicketRepo(db, screenings)
	admin := repository.NewAdminRepo(db)

	engine := booking.NewService(customers, screenings, tickets, store, queue_publisher.New())

	h := router.Handlers{
		Auth:         handler.NewAuthHandler(cfg, customers),
		Theaters:     handler.NewTheaterHandler(theaters),
		Movies:       handler.NewMovieHandler(movies),
		Performances: handler.NewPerformanceHandler(screenings, store),
		Tickets:      handler.NewTicketHandler(engine),
		Admin:        handler.NewAdminHandler(admin, store),
	}

	// Background consumer that appends issued tickets to the log file.
	go func() {
		if err := queue.StartTicketConsumer(); err != nil {
			log.Printf("ticket consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.RegisterRoutes(e, h, cfg.JWTSecret)

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
