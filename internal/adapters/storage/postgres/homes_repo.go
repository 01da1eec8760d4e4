package postgres

import (
	"context"
	"database/sql"

	"ruff-service/internal/domain/homes"
	"ruff-service/internal/domain/pets"
)

type HomesRepo struct {
	db *sql.DB
}

func NewHomesRepo(db *sql.DB) *HomesRepo {
	return &HomesRepo{db: db}
}

// Create escribe home + membresía del owner en una transacción:
// si la membresía falla, el home no queda.
func (r *HomesRepo) Create(ctx context.Context, h homes.Home, owner homes.Membership) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO homes (id, name, owner_id, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5)
	`,
		h.ID, h.Name, h.OwnerID, h.CreatedAt, h.UpdatedAt,
	); err != nil {
		return translateConstraint(err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO user_homes (user_id, home_id, created_at)
		VALUES ($1,$2,$3)
	`,
		owner.UserID, owner.HomeID, owner.CreatedAt,
	); err != nil {
		return translateConstraint(err)
	}

	return tx.Commit()
}

func (r *HomesRepo) FindByID(ctx context.Context, id string) (*homes.Home, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, owner_id, created_at, updated_at
		FROM homes
		WHERE id = $1
	`, id)

	var h homes.Home
	if err := row.Scan(&h.ID, &h.Name, &h.OwnerID, &h.CreatedAt, &h.UpdatedAt); err != nil {
		if err == sql.ErrNoRows || isInvalidID(err) {
			return nil, nil
		}
		return nil, err
	}

	hp, err := r.petsOfHome(ctx, id)
	if err != nil {
		return nil, err
	}
	h.Pets = hp
	return &h, nil
}

func (r *HomesRepo) List(ctx context.Context, memberUserID string) ([]homes.Home, error) {
	query := `
		SELECT id, name, owner_id, created_at, updated_at
		FROM homes
	`
	var args []any
	if memberUserID != "" {
		// Unión: owner o fila de membresía.
		query += `
		WHERE owner_id = $1
		   OR id IN (SELECT home_id FROM user_homes WHERE user_id = $1)
		`
		args = append(args, memberUserID)
	}
	query += ` ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]homes.Home, 0)
	for rows.Next() {
		var h homes.Home
		if err := rows.Scan(&h.ID, &h.Name, &h.OwnerID, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		hp, err := r.petsOfHome(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Pets = hp
	}
	return out, nil
}

func (r *HomesRepo) Update(ctx context.Context, h homes.Home) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE homes
		SET name = $2, owner_id = $3, updated_at = $4
		WHERE id = $1
	`,
		h.ID, h.Name, h.OwnerID, h.UpdatedAt,
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

func (r *HomesRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM homes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *HomesRepo) AddMember(ctx context.Context, m homes.Membership) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO user_homes (user_id, home_id, created_at)
		VALUES ($1,$2,$3)
	`,
		m.UserID, m.HomeID, m.CreatedAt,
	)
	return translateConstraint(err)
}

func (r *HomesRepo) ListMembers(ctx context.Context, homeID string) ([]homes.Membership, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT user_id, home_id, created_at
		FROM user_homes
		WHERE home_id = $1
		ORDER BY created_at ASC
	`, homeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]homes.Membership, 0)
	for rows.Next() {
		var m homes.Membership
		if err := rows.Scan(&m.UserID, &m.HomeID, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *HomesRepo) petsOfHome(ctx context.Context, homeID string) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, type, gender, dob, breed, home_id, created_at, updated_at
		FROM pets
		WHERE home_id = $1
		ORDER BY created_at ASC
	`, homeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		var p pets.Pet
		if err := rows.Scan(&p.ID, &p.Name, &p.Type, &p.Gender, &p.DOB, &p.Breed, &p.HomeID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
