package postgresql

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sitebook/sitebook-backend/internal/pkg/validator"
)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// validIDs reports whether every id parses as a UUID. Malformed ids can never
// match a row, so callers treat them as not found instead of sending them to Postgres.
func validIDs(ids ...string) bool {
	for _, id := range ids {
		if !validator.IsValidUUID(id) {
			return false
		}
	}
	return true
}

func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}
