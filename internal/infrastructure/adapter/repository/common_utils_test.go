package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestErrorClassifierClassify(t *testing.T) {
	classifier := NewErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{name: "nil", err: nil, want: ""},
		{name: "postgres unique violation", err: &pgconn.PgError{Code: "23505"}, want: DuplicateKeyError},
		{name: "wrapped postgres unique violation", err: fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), want: DuplicateKeyError},
		{name: "postgres check violation", err: &pgconn.PgError{Code: "23514"}, want: CheckError},
		{name: "postgres foreign key violation", err: &pgconn.PgError{Code: "23503"}, want: ForeignKeyError},
		{name: "postgres deadlock", err: &pgconn.PgError{Code: "40P01"}, want: LockError},
		{name: "postgres serialization failure", err: &pgconn.PgError{Code: "40001"}, want: LockError},
		{name: "mysql duplicate entry", err: &mysql.MySQLError{Number: 1062}, want: DuplicateKeyError},
		{name: "mysql check violation", err: &mysql.MySQLError{Number: 3819}, want: CheckError},
		{name: "mysql missing parent row", err: &mysql.MySQLError{Number: 1452}, want: ForeignKeyError},
		{name: "mysql deadlock", err: &mysql.MySQLError{Number: 1213}, want: LockError},
		{name: "mysql lock wait timeout", err: &mysql.MySQLError{Number: 1205}, want: LockError},
		{name: "gorm translated duplicate", err: gorm.ErrDuplicatedKey, want: DuplicateKeyError},
		{name: "message only duplicate", err: errors.New("UNIQUE constraint failed: transactions.id"), want: DuplicateKeyError},
		{name: "connection reset", err: errors.New("read tcp: connection reset by peer"), want: TransientError},
		{name: "dial failure", err: errors.New("dial tcp 127.0.0.1:5432"), want: ConnectionError},
		{name: "unknown", err: errors.New("syntax error at or near"), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.err))
		})
	}
}

func TestErrorClassifierConstraint(t *testing.T) {
	classifier := NewErrorClassifier()

	assert.True(t, classifier.IsConstraintError(&pgconn.PgError{Code: "23514"}))
	assert.True(t, classifier.IsConstraintError(errors.New("null value violates not-null constraint")))
	assert.False(t, classifier.IsConstraintError(errors.New("deadlock detected")))
}

func TestIsContextError(t *testing.T) {
	assert.True(t, isContextError(fmt.Errorf("query: %w", errors.New("context deadline exceeded"))))
	assert.False(t, isContextError(errors.New("deadlock detected")))
	assert.False(t, isContextError(nil))
}
