package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/teamtrack/tracker/internal/domain"
)

// ProjectRepository implements domain.ProjectRepository using SQLite.
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new SQLite-backed ProjectRepository.
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db.SqlDB}
}

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project, workerIDs []int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	result, err := tx.ExecContext(ctx,
		`INSERT INTO projects (name, description, type, status, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		project.Name, project.Description, project.Type, domain.StatusOpen, now,
	)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}

	projectID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get project id: %w", err)
	}

	for _, workerID := range workerIDs {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO project_workers (project_id, user_id) VALUES (?, ?)",
			projectID, workerID,
		); err != nil {
			return fmt.Errorf("assign worker %d: %w", workerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	project.ID = projectID
	project.Status = domain.StatusOpen
	project.CreatedAt = now
	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	p := &domain.Project{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, description, type, status, created_at, completed_at
		 FROM projects WHERE id = ?`, id,
	).Scan(&p.ID, &p.Name, &p.Description, &p.Type, &p.Status, &p.CreatedAt, &p.CompletedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query project by id: %w", err)
	}

	workers, err := r.loadWorkers(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Workers = workers
	return p, nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, description, type, status, created_at, completed_at
		 FROM projects ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Type, &p.Status, &p.CreatedAt, &p.CompletedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range projects {
		workers, err := r.loadWorkers(ctx, projects[i].ID)
		if err != nil {
			return nil, err
		}
		projects[i].Workers = workers
	}
	return projects, nil
}

func (r *ProjectRepository) UpdateStatus(ctx context.Context, id int64, status string, completedAt *time.Time) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE projects SET status = ?, completed_at = ? WHERE id = ?",
		status, completedAt, id)
	if err != nil {
		return fmt.Errorf("update project status: %w", err)
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

func (r *ProjectRepository) StatusBreakdown(ctx context.Context) ([]domain.StatusCount, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT status, COUNT(*) FROM projects GROUP BY status ORDER BY status")
	if err != nil {
		return nil, fmt.Errorf("project status breakdown: %w", err)
	}
	defer rows.Close()

	var counts []domain.StatusCount
	for rows.Next() {
		var sc domain.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		counts = append(counts, sc)
	}
	return counts, rows.Err()
}

func (r *ProjectRepository) loadWorkers(ctx context.Context, projectID int64) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT u.id, u.username, u.password_hash, u.last_login, u.created_at
		 FROM users u
		 JOIN project_workers pw ON pw.user_id = u.id
		 WHERE pw.project_id = ?
		 ORDER BY u.username`, projectID)
	if err != nil {
		return nil, fmt.Errorf("load workers: %w", err)
	}
	defer rows.Close()

	var workers []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.LastLogin, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan worker: %w", err)
		}
		workers = append(workers, u)
	}
	return workers, rows.Err()
}
