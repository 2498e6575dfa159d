package reconcile

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"
)

// Reconciler recomputes the denormalized counters from the underlying
// relationship tables. The request path applies counter deltas
// best-effort, so counts can drift after partial failures; a periodic
// run of this job converges them back to the true values.
//
// View counts have no backing event table and are left untouched.
type Reconciler struct {
	db      *gorm.DB
	workers int
	logger  *slog.Logger
}

func NewReconciler(db *gorm.DB, workers int, logger *slog.Logger) *Reconciler {
	if workers < 1 {
		workers = 1
	}
	return &Reconciler{db: db, workers: workers, logger: logger}
}

// Run executes all reconciliation passes concurrently and reports how
// many rows each pass corrected.
func (r *Reconciler) Run(ctx context.Context) error {
	pool := NewWorkerPool(ctx, r.workers, r.logger)
	pool.Start()

	pool.Submit(r.pass("answer like counts", answerLikeCountsSQL))
	pool.Submit(r.pass("answer comment counts", answerCommentCountsSQL))
	pool.Submit(r.pass("challenge answer counts", challengeAnswerCountsSQL))
	pool.Submit(r.pass("user total likes", userTotalLikesSQL))

	if errs := pool.Wait(); len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

func (r *Reconciler) pass(name, query string) Task {
	return func(ctx context.Context) error {
		result := r.db.WithContext(ctx).Exec(query)
		if result.Error != nil {
			return result.Error
		}
		r.logger.Info("reconciled counters", "pass", name, "corrected", result.RowsAffected)
		return nil
	}
}

// Each pass touches only rows whose stored counter disagrees with the
// recount, so a clean run writes nothing.
const (
	answerLikeCountsSQL = `
		UPDATE answers SET like_count = sub.cnt
		FROM (
			SELECT a.id, COUNT(l.id) AS cnt
			FROM answers a
			LEFT JOIN likes l ON l.answer_id = a.id
			GROUP BY a.id
		) sub
		WHERE answers.id = sub.id AND answers.like_count <> sub.cnt`

	answerCommentCountsSQL = `
		UPDATE answers SET comment_count = sub.cnt
		FROM (
			SELECT a.id, COUNT(c.id) AS cnt
			FROM answers a
			LEFT JOIN comments c ON c.answer_id = a.id AND c.status = 'active'
			GROUP BY a.id
		) sub
		WHERE answers.id = sub.id AND answers.comment_count <> sub.cnt`

	challengeAnswerCountsSQL = `
		UPDATE challenges SET answer_count = sub.cnt
		FROM (
			SELECT ch.id, COUNT(a.id) AS cnt
			FROM challenges ch
			LEFT JOIN answers a ON a.challenge_id = ch.id AND a.status = 'active'
			GROUP BY ch.id
		) sub
		WHERE challenges.id = sub.id AND challenges.answer_count <> sub.cnt`

	userTotalLikesSQL = `
		UPDATE users SET total_likes = sub.cnt
		FROM (
			SELECT u.id, COUNT(l.id) AS cnt
			FROM users u
			LEFT JOIN answers a ON a.user_id = u.id AND a.status = 'active'
			LEFT JOIN likes l ON l.answer_id = a.id
			GROUP BY u.id
		) sub
		WHERE users.id = sub.id AND users.total_likes <> sub.cnt`
)
