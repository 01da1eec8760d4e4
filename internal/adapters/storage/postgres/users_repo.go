package postgres

import (
	"context"
	"database/sql"

	"ruff-service/internal/domain/users"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, email, first_name, last_name, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`,
		u.ID, u.Email, u.FirstName, u.LastName, u.CreatedAt, u.UpdatedAt,
	)
	return translateConstraint(err)
}

func (r *UsersRepo) FindByID(ctx context.Context, id string) (*users.User, error) {
	return r.findOne(ctx, `WHERE id = $1`, id)
}

func (r *UsersRepo) FindByEmail(ctx context.Context, email string) (*users.User, error) {
	return r.findOne(ctx, `WHERE email = $1`, email)
}

func (r *UsersRepo) findOne(ctx context.Context, where string, arg any) (*users.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, email, first_name, last_name, created_at, updated_at
		FROM users
	`+where, arg)

	var u users.User
	if err := row.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if err == sql.ErrNoRows || isInvalidID(err) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UsersRepo) List(ctx context.Context) ([]users.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, email, first_name, last_name, created_at, updated_at
		FROM users
		ORDER BY lower(first_name) ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]users.User, 0)
	for rows.Next() {
		var u users.User
		if err := rows.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *UsersRepo) Update(ctx context.Context, u users.User) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET email = $2, first_name = $3, last_name = $4, updated_at = $5
		WHERE id = $1
	`,
		u.ID, u.Email, u.FirstName, u.LastName, u.UpdatedAt,
	)
	if err != nil {
		return translateConstraint(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UsersRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
