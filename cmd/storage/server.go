package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/XJIeI5/rpncalc/internal/logging"
	"github.com/XJIeI5/rpncalc/internal/storage"
)

func main() {
	cfg := storage.DefaultConfig()
	hostPtr := flag.String("host", cfg.Host, "host of server")
	portPtr := flag.Int("port", cfg.Port, "port of server")
	dbPtr := flag.String("db", "store.db", "path of the sqlite database")
	workersPtr := flag.Int("workers", cfg.Workers, "amount of parallel calculations")
	keyPtr := flag.String("key", os.Getenv("CALC_JWT_KEY"), "key signing login tokens (default $CALC_JWT_KEY)")
	strictPtr := flag.Bool("strict", false, "reject malformed expressions")
	verbosityPtr := flag.Int("v", 0, "log verbosity")
	flag.Parse()

	log := logging.New(*verbosityPtr).WithName("storage")
	if *keyPtr == "" {
		log.Info("no signing key given, refusing to start")
		os.Exit(2)
	}
	cfg.Host = *hostPtr
	cfg.Port = *portPtr
	cfg.Workers = *workersPtr
	cfg.Key = []byte(*keyPtr)
	cfg.Strict = *strictPtr

	db, err := storage.OpenDB(context.TODO(), *dbPtr)
	if err != nil {
		log.Error(err, "open database")
		os.Exit(1)
	}
	defer db.Close()

	srv, s := storage.GetServer(cfg, db, log)
	go func() {
		log.Info("run storage server", "host", cfg.Host, "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error(err, "serve")
			os.Exit(1)
		}
	}()

	var stopChan = make(chan os.Signal, 2)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	<-stopChan // wait for SIGINT
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error(err, "shutdown")
	}
	// workers must drain before the deferred db.Close
	s.Close()
	log.Info("stop storage server")
}
