package postgres

import (
	"context"
	"database/sql"

	"ruff-service/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

const petColumns = `id, name, type, gender, dob, breed, home_id, created_at, updated_at`

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (`+petColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		p.ID, p.Name, p.Type, p.Gender, p.DOB, p.Breed, p.HomeID, p.CreatedAt, p.UpdatedAt,
	)
	return translateConstraint(err)
}

func (r *PetsRepo) FindByID(ctx context.Context, id string) (*pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE id = $1
	`, id)

	var p pets.Pet
	if err := scanPet(row.Scan, &p); err != nil {
		if err == sql.ErrNoRows || isInvalidID(err) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PetsRepo) List(ctx context.Context, memberUserID string) ([]pets.Pet, error) {
	query := `
		SELECT ` + petColumns + `
		FROM pets
	`
	var args []any
	if memberUserID != "" {
		// Mascotas de los homes donde el usuario es owner o miembro.
		query += `
		WHERE home_id IN (
			SELECT id FROM homes WHERE owner_id = $1
			UNION
			SELECT home_id FROM user_homes WHERE user_id = $1
		)
		`
		args = append(args, memberUserID)
	}
	query += ` ORDER BY created_at ASC`

	return r.queryPets(ctx, query, args...)
}

func (r *PetsRepo) ListByHome(ctx context.Context, homeID string) ([]pets.Pet, error) {
	return r.queryPets(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE home_id = $1
		ORDER BY created_at ASC
	`, homeID)
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET name = $2, type = $3, gender = $4, dob = $5, breed = $6, home_id = $7, updated_at = $8
		WHERE id = $1
	`,
		p.ID, p.Name, p.Type, p.Gender, p.DOB, p.Breed, p.HomeID, p.UpdatedAt,
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

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PetsRepo) CreateLog(ctx context.Context, l pets.PetLog) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pet_logs (id, pet_id, type, title, description, occurred_at, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		l.ID, l.PetID, l.Type, l.Title, nullIfEmpty(l.Description), l.OccurredAt, l.CreatedAt,
	)
	return translateConstraint(err)
}

func (r *PetsRepo) ListLogsByPet(ctx context.Context, petID string) ([]pets.PetLog, error) {
	return r.queryLogs(ctx, `
		SELECT id, pet_id, type, title, description, occurred_at, created_at
		FROM pet_logs
		WHERE pet_id = $1
		ORDER BY occurred_at DESC
	`, petID)
}

func (r *PetsRepo) ListLogsByUser(ctx context.Context, userID string) ([]pets.PetLog, error) {
	query := `
		SELECT id, pet_id, type, title, description, occurred_at, created_at
		FROM pet_logs
	`
	var args []any
	if userID != "" {
		query += `
		WHERE pet_id IN (
			SELECT id FROM pets WHERE home_id IN (
				SELECT id FROM homes WHERE owner_id = $1
				UNION
				SELECT home_id FROM user_homes WHERE user_id = $1
			)
		)
		`
		args = append(args, userID)
	}
	return r.queryLogs(ctx, query, args...)
}

func (r *PetsRepo) queryPets(ctx context.Context, query string, args ...any) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		if isInvalidID(err) {
			return make([]pets.Pet, 0), nil
		}
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		var p pets.Pet
		if err := scanPet(rows.Scan, &p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PetsRepo) queryLogs(ctx context.Context, query string, args ...any) ([]pets.PetLog, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		if isInvalidID(err) {
			return make([]pets.PetLog, 0), nil
		}
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.PetLog, 0)
	for rows.Next() {
		var l pets.PetLog
		var desc sql.NullString
		if err := rows.Scan(&l.ID, &l.PetID, &l.Type, &l.Title, &desc, &l.OccurredAt, &l.CreatedAt); err != nil {
			return nil, err
		}
		l.Description = desc.String
		out = append(out, l)
	}
	return out, rows.Err()
}

func scanPet(scan func(...any) error, p *pets.Pet) error {
	return scan(&p.ID, &p.Name, &p.Type, &p.Gender, &p.DOB, &p.Breed, &p.HomeID, &p.CreatedAt, &p.UpdatedAt)
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
