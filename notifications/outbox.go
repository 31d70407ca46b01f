package notifications

import "log"

// Email is one queued outbound message.
type Email struct {
	ToName  string
	ToEmail string
	Subject string
	HTML    string
}

// Mail sends are never allowed to delay or fail a request: handlers enqueue
// and move on, a single dispatcher goroutine drains the queue. A full queue
// drops the email with a log line; there is no retry or dead-letter handling.
var outbox = make(chan Email, 256)

func StartOutbox() {
	go func() {
		for e := range outbox {
			SendEmail(e.ToName, e.ToEmail, e.Subject, e.HTML)
		}
	}()
	log.Println("✅ Notification outbox dispatcher started")
}

func Enqueue(e Email) {
	select {
	case outbox <- e:
	default:
		log.Printf("⚠️ Outbox full, dropping email to %s (%s)", e.ToEmail, e.Subject)
	}
}
