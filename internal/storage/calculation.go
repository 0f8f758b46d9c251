package storage

import (
	"context"
	"strconv"

	"github.com/go-logr/logr"
)

// calcExpressions evaluates queued expressions until the queue is closed.
func (s *Storage) calcExpressions(log logr.Logger) {
	defer s.workers.Done()
	for {
		_expr, ok := s.exprQueue.Dequeue()
		if !ok {
			return
		}

		status, result := succeeded, ""
		value, err := _expr.postfix.Evaluate()
		if err != nil {
			status, result = hasError, err.Error()
		} else {
			result = strconv.FormatFloat(value, 'f', -1, 64)
		}

		if err := updateExpressionState(context.Background(), s.db, _expr.id, status, result); err != nil {
			log.Error(err, "store result failed", "id", _expr.id)
			continue
		}
		log.V(1).Info("expression calculated", "id", _expr.id, "state", status, "result", result)
	}
}
