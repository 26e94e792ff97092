package services

import (
	"database/sql"
	"log"

	"student-management/app/database"
)

// PurgeExpiredSessions deletes login sessions past their expiry.
func PurgeExpiredSessions(db *sql.DB) error {
	n, err := database.DeleteExpiredSessions(db)
	if err != nil {
		return err
	}
	if n > 0 {
		log.Printf("Purged %d expired sessions", n)
	}
	return nil
}
