package main

import (
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"mathpad/core"
	"mathpad/handlers/api/solutions"
	"mathpad/handlers/api/solve"
	"mathpad/solver"
	"mathpad/stores"
)

func setupRouter(s solver.Solver, store core.SolutionStore) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Content-Length", "Origin", "Host"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api/v2", func(r chi.Router) {
		r.Post("/solve", solve.HandleSolve(s, store))
		r.Route("/solutions", func(r chi.Router) {
			r.Get("/", solutions.HandleList(store))
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", solutions.HandleGet(store))
				r.Delete("/", solutions.HandleDelete(store))
			})
		})
	})

	return r
}

func waitForShutdown() {
	exit := make(chan struct{})
	signalC := make(chan os.Signal, 1)

	signal.Notify(signalC, os.Interrupt, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-signalC
		close(exit)
	}()

	<-exit
	logrus.Info("Shutting down...")
	os.Exit(0)
}

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found")
	}

	listenAddress := flag.String("listen", ":3002", "The address to listen on.")
	logLevel := flag.String("loglevel", "info", "The log level (debug, info, warn, error).")
	flag.Parse()

	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %v", err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	client := solver.NewClient(solver.ConfigFromEnv())
	store := stores.GetStore()

	r := setupRouter(client, store)

	logrus.WithField("addr", *listenAddress).Info("starting server")
	go func() {
		if err := http.ListenAndServe(*listenAddress, r); err != nil {
			logrus.WithField("event", "start server").Fatal(err)
		}
	}()

	waitForShutdown()
}
