package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/teamtrack/tracker/internal/domain"
)

// ProblemRepository implements domain.ProblemRepository using SQLite.
type ProblemRepository struct {
	db *sql.DB
}

// NewProblemRepository creates a new SQLite-backed ProblemRepository.
func NewProblemRepository(db *DB) *ProblemRepository {
	return &ProblemRepository{db: db.SqlDB}
}

func (r *ProblemRepository) Create(ctx context.Context, problem *domain.Problem, categoryIDs []int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	result, err := tx.ExecContext(ctx,
		`INSERT INTO problems (name, description, status, project_id, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		problem.Name, problem.Description, domain.StatusOpen, problem.ProjectID, now,
	)
	if err != nil {
		return fmt.Errorf("insert problem: %w", err)
	}

	problemID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get problem id: %w", err)
	}

	for _, categoryID := range categoryIDs {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO problem_categories (problem_id, category_id) VALUES (?, ?)",
			problemID, categoryID,
		); err != nil {
			return fmt.Errorf("link category %d: %w", categoryID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	problem.ID = problemID
	problem.Status = domain.StatusOpen
	problem.CreatedAt = now
	return nil
}

func (r *ProblemRepository) GetByID(ctx context.Context, id int64) (*domain.Problem, error) {
	p := &domain.Problem{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, description, status, project_id, claimed_by_user_id, created_at, completed_at
		 FROM problems WHERE id = ?`, id,
	).Scan(&p.ID, &p.Name, &p.Description, &p.Status, &p.ProjectID, &p.ClaimedBy, &p.CreatedAt, &p.CompletedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query problem by id: %w", err)
	}

	categories, err := r.loadCategories(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Categories = categories
	return p, nil
}

const problemViewQuery = `
	SELECT p.id, p.name, p.description, p.status, p.project_id, p.claimed_by_user_id,
	       p.created_at, p.completed_at,
	       pr.name, u.username,
	       COALESCE((SELECT SUM(c.points)
	                 FROM problem_categories pc
	                 JOIN categories c ON c.id = pc.category_id
	                 WHERE pc.problem_id = p.id), 0)
	FROM problems p
	LEFT JOIN projects pr ON pr.id = p.project_id
	LEFT JOIN users u ON u.id = p.claimed_by_user_id`

func (r *ProblemRepository) List(ctx context.Context) ([]domain.ProblemView, error) {
	rows, err := r.db.QueryContext(ctx,
		problemViewQuery+" ORDER BY p.created_at DESC, p.id DESC")
	if err != nil {
		return nil, fmt.Errorf("list problems: %w", err)
	}
	defer rows.Close()
	return r.scanViews(ctx, rows)
}

func (r *ProblemRepository) ListStaleClaims(ctx context.Context, before time.Time) ([]domain.ProblemView, error) {
	// No per-row updated_at is tracked, so age is measured from creation.
	rows, err := r.db.QueryContext(ctx,
		problemViewQuery+`
		 WHERE p.status = ? AND p.claimed_by_user_id IS NOT NULL AND p.created_at < ?
		 ORDER BY p.created_at`,
		domain.StatusInProgress, before)
	if err != nil {
		return nil, fmt.Errorf("list stale claims: %w", err)
	}
	defer rows.Close()
	return r.scanViews(ctx, rows)
}

func (r *ProblemRepository) scanViews(ctx context.Context, rows *sql.Rows) ([]domain.ProblemView, error) {
	var views []domain.ProblemView
	for rows.Next() {
		var v domain.ProblemView
		if err := rows.Scan(&v.ID, &v.Name, &v.Description, &v.Status, &v.ProjectID, &v.ClaimedBy,
			&v.CreatedAt, &v.CompletedAt, &v.ProjectName, &v.ClaimantName, &v.TotalPoints); err != nil {
			return nil, fmt.Errorf("scan problem view: %w", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range views {
		categories, err := r.loadCategories(ctx, views[i].ID)
		if err != nil {
			return nil, err
		}
		views[i].Categories = categories
	}
	return views, nil
}

func (r *ProblemRepository) UpdateStatus(ctx context.Context, id int64, status string, completedAt *time.Time) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE problems SET status = ?, completed_at = ? WHERE id = ?",
		status, completedAt, id)
	if err != nil {
		return fmt.Errorf("update problem status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Claim performs the atomic compare-and-set on the claimant column. The
// guard accepts an absent claimant, a legacy zero sentinel written by older
// tooling, or the caller re-claiming their own problem. Claiming forces the
// status to In Progress, so the completion timestamp is cleared in the same
// statement to keep status and timestamp consistent.
func (r *ProblemRepository) Claim(ctx context.Context, problemID, userID int64) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE problems
		 SET claimed_by_user_id = ?, status = ?, completed_at = NULL
		 WHERE id = ?
		   AND (claimed_by_user_id IS NULL OR claimed_by_user_id = 0 OR claimed_by_user_id = ?)`,
		userID, domain.StatusInProgress, problemID, userID)
	if err != nil {
		return fmt.Errorf("claim problem: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 1 {
		return nil
	}

	// The guard did not match: either the problem is gone or a concurrent
	// claimer got there first.
	var one int
	err = r.db.QueryRowContext(ctx, "SELECT 1 FROM problems WHERE id = ?", problemID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("check problem exists: %w", err)
	}
	return domain.ErrClaimConflict
}

// Unclaim unconditionally releases the claim and resets the problem to Open.
func (r *ProblemRepository) Unclaim(ctx context.Context, problemID int64) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE problems
		 SET claimed_by_user_id = NULL, status = ?, completed_at = NULL
		 WHERE id = ?`,
		domain.StatusOpen, problemID)
	if err != nil {
		return fmt.Errorf("unclaim problem: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProblemRepository) loadCategories(ctx context.Context, problemID int64) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT c.id, c.name, c.points
		 FROM categories c
		 JOIN problem_categories pc ON pc.category_id = c.id
		 WHERE pc.problem_id = ?
		 ORDER BY c.name`, problemID)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Points); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
