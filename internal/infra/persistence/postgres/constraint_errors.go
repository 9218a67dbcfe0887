package postgres

import "strings"

// isNotNullConstraintViolation matches the NOT NULL driver messages of
// PostgreSQL and SQLite, which GORM leaves untranslated.
func isNotNullConstraintViolation(err error) bool {
	if err == nil {
		return false
	}

	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "null value") ||
		strings.Contains(msg, "not null") ||
		strings.Contains(msg, "23502")
}
