package remuneration

import (
	"errors"
	"strings"

	remunerationerrors "go-hcm/internal/remuneration/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_remuneration_employee" {
			return remunerationerrors.ErrRemunerationAlreadyExists
		}
	}

	// Some drivers flatten the pg error into plain text.
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_remuneration_employee") {
		return remunerationerrors.ErrRemunerationAlreadyExists
	}

	return err
}
