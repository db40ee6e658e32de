package repository

import (
	"context"
	"fmt"
	"log/slog"
)

// WithSession opens a session on store, runs fn with it and closes it again
// on every exit path, including a panic inside fn.
//
// A failure to close after fn succeeded is logged and not returned: the work
// is already committed and the caller's result is still valid.
func WithSession(ctx context.Context, store Store, fn func(Session) error) (err error) {
	sess, err := store.Open(ctx)
	if err != nil {
		return fmt.Errorf("open session: %w", err)
	}

	defer func() {
		// context.WithoutCancel so a cancelled request still releases its handle.
		if cerr := sess.Close(context.WithoutCancel(ctx)); cerr != nil {
			slog.Default().WarnContext(ctx, "failed to close store session",
				slog.Any("error", cerr))
		}
	}()

	return fn(sess)
}
