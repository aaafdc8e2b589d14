// Package txmanager менеджер сериализуемых транзакций поверх
// инструментированного соединения (pkg/dbmetrics).
//
// Сериализуемый уровень изоляции гарантирует, что конкурентные
// въезд/выезд не нарушат инварианты занятости мест. Конфликты
// сериализации (SQLSTATE 40001) повторяются ограниченное число раз
// с экспоненциальной задержкой, после чего отдаются вызывающему.
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
)

const (
	maxRetries     = 3
	initialBackoff = 25 * time.Millisecond
)

// ErrSerializationConflict возвращается, когда конфликт сериализации
// не удалось разрешить за maxRetries попыток. Вызывающий может
// повторить операцию целиком.
var ErrSerializationConflict = errors.New("txmanager: serialization conflict")

// TxBeginner то, что умеет открывать транзакции (обычно *dbmetrics.DB)
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager выполняет функции в сериализуемых транзакциях
type TransactionManager struct {
	db TxBeginner
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db TxBeginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable выполняет fn в транзакции уровня SERIALIZABLE.
// Транзакция кладется в контекст через dbmetrics.WithExecutor, чтобы
// репозитории выполняли запросы внутри нее. При конфликте сериализации
// fn повторяется с нуля (fn обязана быть чистой относительно БД).
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := initialBackoff

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		err := m.runOnce(ctx, fn)
		if err == nil {
			return nil
		}
		if !isSerializationFailure(err) {
			return err
		}
		lastErr = err
	}

	return fmt.Errorf("%w: giving up after %d retries: %v", ErrSerializationConflict, maxRetries, lastErr)
}

func (m *TransactionManager) runOnce(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("txmanager: begin transaction: %w", err)
	}

	if err := fn(dbmetrics.WithExecutor(ctx, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("txmanager: commit: %w", err)
	}
	return nil
}

// isSerializationFailure распознает конфликт сериализации PostgreSQL
// (40001 serialization_failure, 40P01 deadlock_detected)
func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "40001" || pqErr.Code == "40P01"
	}
	return false
}
