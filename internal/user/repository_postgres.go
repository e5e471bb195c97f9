package user

import (
	"database/sql"
	"strings"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listUsersQuery = `
		SELECT id, name, email, password, email_verified_at, created_at, updated_at
		FROM users
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	countUsersQuery  = `SELECT COUNT(*) FROM users`
	getUserByIDQuery = `
		SELECT id, name, email, password, email_verified_at, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	getUserByEmailQuery = `
		SELECT id, name, email, password, email_verified_at, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	insertUserQuery = `
		INSERT INTO users (name, email, password, created_at, updated_at)
		VALUES ($1,$2,$3,now(),now())
		RETURNING id, created_at, updated_at
	`
	updateUserQuery = `
		UPDATE users
		SET name = $1,
			email = $2,
			password = $3,
			updated_at = now()
		WHERE id = $4
	`
	deleteUserQuery = `DELETE FROM users WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(scanner rowScanner) (User, error) {
	var u User
	var verifiedAt sql.NullTime
	if err := scanner.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &verifiedAt, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return User{}, err
	}
	if verifiedAt.Valid {
		u.EmailVerifiedAt = &verifiedAt.Time
	}
	return u, nil
}

func (r *PostgresRepository) List(page, perPage int) ([]User, int, error) {
	var total int
	if err := r.db.QueryRow(countUsersQuery).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(listUsersQuery, perPage, (page-1)*perPage)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, u)
	}
	return out, total, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (User, error) {
	u, err := scanUser(r.db.QueryRow(getUserByIDQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepository) GetByEmail(email string) (User, error) {
	u, err := scanUser(r.db.QueryRow(getUserByEmailQuery, email))
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepository) Create(u User) (User, error) {
	err := r.db.QueryRow(insertUserQuery, u.Name, u.Email, u.Password).
		Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return User{}, ErrEmailExists
		}
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepository) Update(id int, u User) (User, error) {
	result, err := r.db.Exec(updateUserQuery, u.Name, u.Email, u.Password, id)
	if err != nil {
		if isUniqueViolation(err) {
			return User{}, ErrEmailExists
		}
		return User{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return User{}, err
	}
	if affected == 0 {
		return User{}, ErrNotFound
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) Delete(id int) error {
	result, err := r.db.Exec(deleteUserQuery, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// isUniqueViolation matches the Postgres unique-constraint error on the
// users email index without binding to a specific driver error type.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}
