// internal/domain/repository/mailer.go
package repository

import "context"

// Mailer sends formatted HTML notifications. The concrete transport is built
// once at startup, verified, and reused for the life of the process.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
	Verify(ctx context.Context) error
}
