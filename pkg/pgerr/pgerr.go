// Package pgerr распознаёт коды ошибок PostgreSQL, возвращаемые lib/pq
package pgerr

import (
	"errors"

	"github.com/lib/pq"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// UniqueViolation возвращает имя нарушенного ограничения, если err - 23505
func UniqueViolation(err error) (constraint string, ok bool) {
	return match(err, codeUniqueViolation)
}

// ForeignKeyViolation возвращает имя нарушенного ограничения, если err - 23503
func ForeignKeyViolation(err error) (constraint string, ok bool) {
	return match(err, codeForeignKeyViolation)
}

func match(err error, code pq.ErrorCode) (string, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == code {
		return pqErr.Constraint, true
	}
	return "", false
}
