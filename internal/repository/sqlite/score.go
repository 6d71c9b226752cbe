package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/teamtrack/tracker/internal/domain"
)

// ScoreRepository implements domain.ScoreRepository using SQLite. Every
// call aggregates from the live tables, so point totals always reflect the
// current category weights rather than a snapshot taken at completion time.
type ScoreRepository struct {
	db *sql.DB
}

// NewScoreRepository creates a new SQLite-backed ScoreRepository.
func NewScoreRepository(db *DB) *ScoreRepository {
	return &ScoreRepository{db: db.SqlDB}
}

func (r *ScoreRepository) UserPoints(ctx context.Context, userID int64) (int64, error) {
	var points int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(c.points), 0)
		 FROM problems p
		 JOIN problem_categories pc ON pc.problem_id = p.id
		 JOIN categories c ON c.id = pc.category_id
		 WHERE p.claimed_by_user_id = ? AND p.status = ?`,
		userID, domain.StatusCompleted,
	).Scan(&points)
	if err != nil {
		return 0, fmt.Errorf("sum user points: %w", err)
	}
	return points, nil
}

func (r *ScoreRepository) Totals(ctx context.Context) ([]domain.UserTotal, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT u.id, u.username, COALESCE(SUM(c.points), 0) AS total_points
		 FROM users u
		 LEFT JOIN problems p ON p.claimed_by_user_id = u.id AND p.status = ?
		 LEFT JOIN problem_categories pc ON pc.problem_id = p.id
		 LEFT JOIN categories c ON c.id = pc.category_id
		 GROUP BY u.id, u.username
		 ORDER BY total_points DESC, u.username ASC`,
		domain.StatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("query totals: %w", err)
	}
	defer rows.Close()

	var totals []domain.UserTotal
	for rows.Next() {
		var t domain.UserTotal
		if err := rows.Scan(&t.UserID, &t.Username, &t.Points); err != nil {
			return nil, fmt.Errorf("scan total: %w", err)
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

func (r *ScoreRepository) Stats(ctx context.Context) (*domain.Stats, error) {
	stats := &domain.Stats{}

	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM projects WHERE status = ?", domain.StatusCompleted,
	).Scan(&stats.CompletedProjects)
	if err != nil {
		return nil, fmt.Errorf("count completed projects: %w", err)
	}

	err = r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM problems WHERE status = ?", domain.StatusCompleted,
	).Scan(&stats.CompletedProblems)
	if err != nil {
		return nil, fmt.Errorf("count completed problems: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT c.name, COUNT(p.id), COUNT(p.id) * c.points
		 FROM categories c
		 LEFT JOIN problem_categories pc ON pc.category_id = c.id
		 LEFT JOIN problems p ON p.id = pc.problem_id AND p.status = ?
		 GROUP BY c.id, c.name
		 ORDER BY c.name`,
		domain.StatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("query category completions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var cc domain.CategoryCompletion
		if err := rows.Scan(&cc.Category, &cc.Completed, &cc.Points); err != nil {
			return nil, fmt.Errorf("scan category completion: %w", err)
		}
		stats.CategoryCompletions = append(stats.CategoryCompletions, cc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	breakdown, err := (&ProjectRepository{db: r.db}).StatusBreakdown(ctx)
	if err != nil {
		return nil, err
	}
	stats.ProjectStatuses = breakdown

	return stats, nil
}
