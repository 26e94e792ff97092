package services

import (
	"database/sql"
	"log"
	"time"
)

// StartScheduler starts the background task scheduler.
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 00:10
			if now.Hour() == 0 && now.Minute() == 10 {
				log.Println("Triggering scheduled tasks [00:10]...")

				if err := PurgeExpiredSessions(db); err != nil {
					log.Printf("Error purging expired sessions: %v", err)
				}
			}
		}
	}()
}
