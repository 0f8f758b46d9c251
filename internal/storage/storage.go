package storage

import (
	"crypto/sha1"
	"database/sql"
	"encoding/binary"
	"fmt"
	"net/http"
	"strings"
	"sync"

	queue "github.com/XJIeI5/rpncalc/internal/datastructs"
	"github.com/XJIeI5/rpncalc/internal/parser"
	"github.com/go-logr/logr"
	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Host string
	Port int

	// Workers is the number of goroutines evaluating queued expressions.
	Workers int
	// Key signs and verifies login tokens.
	Key []byte
	// Strict rejects expressions that parse with anomalies.
	Strict     bool
	BcryptCost int
}

func DefaultConfig() Config {
	return Config{
		Host:       "http://localhost",
		Port:       8080,
		Workers:    4,
		BcryptCost: bcrypt.DefaultCost,
	}
}

type Storage struct {
	router *mux.Router
	db     *sql.DB
	log    logr.Logger

	key        []byte
	strict     bool
	bcryptCost int

	exprQueue *queue.CQueue[expr]
	workers   sync.WaitGroup
}

type expr struct {
	id      int64
	postfix *parser.Expression
}

func newStorage(cfg Config, db *sql.DB, log logr.Logger) *Storage {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	s := &Storage{
		db:         db,
		log:        log,
		key:        cfg.Key,
		strict:     cfg.Strict,
		bcryptCost: cfg.BcryptCost,
		exprQueue:  queue.NewCQueue[expr](),
	}

	// background processes
	for i := 0; i < cfg.Workers; i++ {
		s.workers.Add(1)
		go s.calcExpressions(log.WithValues("worker", i))
	}

	r := mux.NewRouter()
	// user handle
	r.HandleFunc("/register", s.handleRegister).Methods("POST")
	r.HandleFunc("/login", s.handleLogin).Methods("POST")
	// expr handle
	r.HandleFunc("/add_expr", s.handleAddExpression).Methods("POST")
	r.HandleFunc("/get_result", s.handleGetResult).Methods("GET")
	r.HandleFunc("/get_expressions", s.handleGetExpressions).Methods("GET")

	s.router = r

	return s
}

func (s *Storage) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close stops the workers after they finish the expressions already queued.
func (s *Storage) Close() {
	s.exprQueue.Close()
	s.workers.Wait()
}

// GetServer builds the HTTP server of the storage service. Call Close on the
// returned Storage after the server is shut down and before db is closed.
func GetServer(cfg Config, db *sql.DB, log logr.Logger) (*http.Server, *Storage) {
	var _addr string
	if strings.Contains(cfg.Host, "localhost") || strings.Contains(cfg.Host, "127.0.0.1") {
		_addr = fmt.Sprintf(":%d", cfg.Port)
	} else {
		_addr = fmt.Sprintf("%s:%d", strings.TrimPrefix(cfg.Host, "http://"), cfg.Port)
	}
	s := newStorage(cfg, db, log)
	srv := &http.Server{
		Addr:    _addr,
		Handler: s,
	}
	return srv, s
}

type state string
type exprHash int64

func getHash(line string) exprHash {
	h := sha1.New()
	h.Write([]byte(line))
	return exprHash(binary.BigEndian.Uint32(h.Sum(nil)))
}

const (
	hasError   state = "error"
	inProgress state = "in progress"
	succeeded  state = "ok"
)

type expressionState struct {
	ID      int64  `json:"id"`
	State   state  `json:"state"`
	Result  string `json:"result"`
	Postfix string `json:"postfix"`
}
