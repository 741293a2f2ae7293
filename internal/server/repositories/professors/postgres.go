package professors

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/unirate/unirate/internal/common"
	"github.com/unirate/unirate/internal/dbx"
	"github.com/unirate/unirate/internal/server/models"
	"github.com/unirate/unirate/internal/server/repositories/pgerr"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const professorColumns = `p.id, p.name, p.department, p.created_at, p.updated_at,
	u.id, u.name, u.location, u.created_at, u.updated_at`

const professorJoin = `FROM professors p JOIN universities u ON u.id = p.university_id`

func scanProfessor(row interface{ Scan(...any) error }) (*models.Professor, error) {
	p := &models.Professor{University: &models.University{}}
	err := row.Scan(
		&p.ID, &p.Name, &p.Department, &p.CreatedAt, &p.UpdatedAt,
		&p.University.ID, &p.University.Name, &p.University.Location,
		&p.University.CreatedAt, &p.University.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.Professor) (*models.Professor, error) {
	query := `INSERT INTO professors (name, department, university_id)
	          VALUES ($1, $2, $3)
	          RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query, p.Name, p.Department, p.University.ID).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		// The university may be deleted between the service-level check
		// and the insert.
		if pgerr.IsForeignKeyViolation(err) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Professor, error) {
	query := `SELECT ` + professorColumns + ` ` + professorJoin + ` WHERE p.id = $1`

	p, err := scanProfessor(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

func (r *PostgresRepository) List(ctx context.Context, filter Filter) ([]*models.Professor, error) {
	query := `SELECT ` + professorColumns + ` ` + professorJoin + ` WHERE 1=1`
	args := []any{}

	if filter.UniversityID != "" {
		args = append(args, filter.UniversityID)
		query += fmt.Sprintf(" AND p.university_id = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND (p.name ILIKE $%d OR p.department ILIKE $%d)", len(args), len(args))
	}
	query += " ORDER BY p.name"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Professor
	for rows.Next() {
		p, err := scanProfessor(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, p *models.Professor) (*models.Professor, error) {
	query := `UPDATE professors
	          SET name = $2, department = $3, university_id = $4, updated_at = now()
	          WHERE id = $1
	          RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query, p.ID, p.Name, p.Department, p.University.ID).
		Scan(&p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || pgerr.IsForeignKeyViolation(err) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM professors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM professors`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM professors`)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return affected, nil
}
