package repo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrorStorage    = errors.New("storage error")
	ErrorConstraint = errors.New("constraint violation")
)

// mapError заворачивает любую ошибку драйвера в ErrorStorage, исходная ошибка остается в цепочке
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if isConstraint(err) {
		return fmt.Errorf("%w: %w: %s: %w", ErrorStorage, ErrorConstraint, op, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrorStorage, op, err)
}

func isConstraint(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// класс 23 - integrity constraint violation
		return strings.HasPrefix(pgErr.Code, "23")
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case 1048, 1062, 1451, 1452:
			return true
		}
	}
	return false
}
