package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/vendalog/erp/internal/core/serviceerrors"
)

// Postgres error codes for constraint violations.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// parseError classifies store failures into stable service errors. Raw
// driver text is kept as the wrapped cause for logging, never as the only
// signal. Context errors pass through so timeouts stay recognizable.
func parseError(err error) error {
	var svcErr *serviceerrors.ServiceError
	if errors.As(err, &svcErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return serviceerrors.NewDuplicateEntry()
		case pgForeignKeyViolation:
			return serviceerrors.NewForeignKeyViolation()
		case pgCheckViolation:
			return serviceerrors.NewIntegrityViolation()
		}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return err
	}

	return serviceerrors.NewDatabaseError(err)
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == constraint
	}
	return false
}

// NUMERIC columns round-trip through pgtype.Numeric, which carries the same
// coefficient/exponent pair as a shopspring decimal. No float conversion
// ever happens.

func toNumeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

func fromNumeric(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}
