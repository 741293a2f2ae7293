package comments

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

// The student leg deliberately omits password_hash and roles: a comment only
// ever carries a public view of its author.
const commentColumns = `c.id, c.content, c.rating, c.created_at, c.updated_at,
	p.id, p.name, p.department, p.created_at, p.updated_at,
	un.id, un.name, un.location, un.created_at, un.updated_at,
	s.id, s.email, s.full_name, s.is_active, s.created_at, s.updated_at`

const commentJoin = `FROM comments c
	JOIN professors p ON p.id = c.professor_id
	JOIN universities un ON un.id = p.university_id
	JOIN users s ON s.id = c.user_id`

func scanComment(row interface{ Scan(...any) error }) (*models.Comment, error) {
	c := &models.Comment{
		Professor: &models.Professor{University: &models.University{}},
		Student:   &models.User{},
	}
	err := row.Scan(
		&c.ID, &c.Content, &c.Rating, &c.CreatedAt, &c.UpdatedAt,
		&c.Professor.ID, &c.Professor.Name, &c.Professor.Department,
		&c.Professor.CreatedAt, &c.Professor.UpdatedAt,
		&c.Professor.University.ID, &c.Professor.University.Name, &c.Professor.University.Location,
		&c.Professor.University.CreatedAt, &c.Professor.University.UpdatedAt,
		&c.Student.ID, &c.Student.Email, &c.Student.FullName, &c.Student.IsActive,
		&c.Student.CreatedAt, &c.Student.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, c *models.Comment) (*models.Comment, error) {
	query := `INSERT INTO comments (content, rating, professor_id, user_id)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query, c.Content, c.Rating, c.Professor.ID, c.Student.ID).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if pgerr.IsUniqueViolation(err) {
			return nil, common.ErrDuplicateComment
		}
		// The professor (or the author) may be deleted between the
		// service-level check and the insert.
		if pgerr.IsForeignKeyViolation(err) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return c, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	query := `SELECT ` + commentColumns + ` ` + commentJoin + ` WHERE c.id = $1`

	c, err := scanComment(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return c, nil
}

func (r *PostgresRepository) List(ctx context.Context, filter Filter) ([]*models.Comment, int64, error) {
	where := ` WHERE 1=1`
	args := []any{}

	if filter.ProfessorID != "" {
		args = append(args, filter.ProfessorID)
		where += fmt.Sprintf(" AND c.professor_id = $%d", len(args))
	}
	if filter.UserID != "" {
		args = append(args, filter.UserID)
		where += fmt.Sprintf(" AND c.user_id = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		where += fmt.Sprintf(" AND c.content ILIKE $%d", len(args))
	}

	var total int64
	countQuery := `SELECT count(*) ` + commentJoin + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	dataQuery := `SELECT ` + commentColumns + ` ` + commentJoin + where +
		fmt.Sprintf(" ORDER BY c.created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}

	return result, total, nil
}

func (r *PostgresRepository) Update(ctx context.Context, c *models.Comment) (*models.Comment, error) {
	query := `UPDATE comments
	          SET content = $2, rating = $3, updated_at = now()
	          WHERE id = $1
	          RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query, c.ID, c.Content, c.Rating).Scan(&c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return c, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
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

func (r *PostgresRepository) ProfessorRating(ctx context.Context, professorID string) (*Rating, error) {
	query := `SELECT COALESCE(AVG(rating), 0), count(id) FROM comments WHERE professor_id = $1`

	rating := &Rating{}
	err := r.db.QueryRowContext(ctx, query, professorID).
		Scan(&rating.AverageRating, &rating.TotalComments)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if rating.TotalComments == 0 {
		return nil, common.ErrNotFound
	}

	return rating, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM comments`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM comments`)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return affected, nil
}
