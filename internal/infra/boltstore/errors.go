package boltstore

import (
	"errors"

	"lease-market/internal/infra"
)

// kindError carries a repository kind out of a bolt transaction closure.
type kindError struct {
	kind infra.RepositoryErrorKind
	msg  string
	err  error
}

func (e *kindError) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func errNotFound(msg string) error {
	return &kindError{kind: infra.KindNotFound, msg: msg}
}

func errDecode(err error) error {
	return &kindError{kind: infra.KindDecodeFailure, msg: "stored record is invalid", err: err}
}

func (s *Store) wrap(err error, msg string) error {
	var ke *kindError
	if errors.As(err, &ke) {
		return infra.WrapRepoErr(s.logger, ke.kind, ke.msg, ke.err)
	}
	return infra.WrapRepoErr(s.logger, infra.KindDBFailure, msg, err)
}
