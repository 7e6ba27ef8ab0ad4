package commands

import (
	"retrack/internal/infra"
	"retrack/internal/pkg/errs"
)

// invalid tags a domain rule violation so the HTTP layer answers 400 with its message.
func invalid(err error) error {
	if err == nil {
		return nil
	}
	return errs.Mark(err, errs.ErrDomainValidation)
}

func isNotFound(err error) bool {
	return infra.IsKind(err, infra.KindNotFound)
}
