package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/XJIeI5/rpncalc/internal/parser"
	"github.com/pkg/errors"
)

var errShuttingDown = errors.New("storage is shutting down")

func (s *Storage) handleAddExpression(w http.ResponseWriter, r *http.Request) {
	if t := r.Header.Get("Content-Type"); t != "application/json" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	userId, err := s.getUserId(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	_expr := struct {
		Value string `json:"expr"`
	}{}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	err = decoder.Decode(&_expr)

	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	parsedExpr := parser.Parse(_expr.Value)
	if s.strict && !parsedExpr.Clean() {
		http.Error(w, parsedExpr.Anomalies()[0].Err().Error(), http.StatusBadRequest)
		return
	}
	postfix := parsedExpr.String()

	if id, err := checkExpressionExists(r.Context(), s.db, postfix, userId); err == nil {
		s.log.V(1).Info("expression already stored", "id", id, "postfix", postfix)
		w.Write([]byte(strconv.FormatInt(id, 10)))
		return
	} else if err != sql.ErrNoRows {
		s.log.Error(err, "add expression failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	id, err := storeExpressionState(r.Context(), s.db, inProgress, "", userId, postfix)
	if err != nil {
		s.log.Error(err, "add expression failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !s.exprQueue.Enqueue(expr{id: id, postfix: parsedExpr}) {
		if err := updateExpressionState(r.Context(), s.db, id, hasError, errShuttingDown.Error()); err != nil {
			s.log.Error(err, "add expression failed", "id", id)
		}
		http.Error(w, errShuttingDown.Error(), http.StatusServiceUnavailable)
		return
	}
	s.log.Info("expression queued", "id", id, "postfix", postfix, "pending", s.exprQueue.Len())
	w.Write([]byte(strconv.FormatInt(id, 10)))
}

func (s *Storage) handleGetResult(w http.ResponseWriter, r *http.Request) {
	userId, err := s.getUserId(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}
	strId := r.URL.Query().Get("id")
	id, err := strconv.ParseInt(strId, 10, 64)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	st, err := getExpressionState(r.Context(), s.db, id, userId)
	if err == sql.ErrNoRows {
		http.Error(w, fmt.Sprintf("no expr with id %d", id), http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, st)
}

func (s *Storage) handleGetExpressions(w http.ResponseWriter, r *http.Request) {
	userId, err := s.getUserId(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}
	states, err := getExpressions(r.Context(), s.db, userId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, states)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}
