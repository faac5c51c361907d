package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type ctxKeyTx struct{}

// Executor is satisfied by both *sqlx.DB and *sqlx.Tx
type Executor interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// TxManager runs functions inside a single database transaction. Repositories
// pick the transaction up from the context through Conn.
type TxManager struct {
	db *sqlx.DB
}

// NewTxManager creates a transaction manager over db
func NewTxManager(db *sqlx.DB) *TxManager {
	return &TxManager{db: db}
}

// Do executes fn in a transaction. Nested calls join the outer transaction.
func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(ctxKeyTx{}).(*sqlx.Tx); ok {
		return fn(ctx)
	}

	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(context.WithValue(ctx, ctxKeyTx{}, tx)); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Conn returns the transaction stored in ctx, or db when there is none
func Conn(ctx context.Context, db *sqlx.DB) Executor {
	if tx, ok := ctx.Value(ctxKeyTx{}).(*sqlx.Tx); ok {
		return tx
	}
	return db
}

// InTx reports whether ctx carries a transaction
func InTx(ctx context.Context) bool {
	_, ok := ctx.Value(ctxKeyTx{}).(*sqlx.Tx)
	return ok
}
