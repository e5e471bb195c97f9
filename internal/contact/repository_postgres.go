package contact

import "database/sql"

const (
	listMessagesQuery = `SELECT id, name, email, phone, subject, message, created_at
FROM contact_messages ORDER BY id DESC LIMIT $1 OFFSET $2`
	countMessagesQuery = `SELECT COUNT(*) FROM contact_messages`
	getMessageQuery    = `SELECT id, name, email, phone, subject, message, created_at
FROM contact_messages WHERE id = $1`
	insertMessageQuery = `INSERT INTO contact_messages (name, email, phone, subject, message, created_at)
VALUES ($1, $2, $3, $4, $5, now()) RETURNING id, created_at`
	deleteMessageQuery = `DELETE FROM contact_messages WHERE id = $1`
	recentMessagesQuery = `SELECT id, name, email, phone, subject, message, created_at
FROM contact_messages ORDER BY id DESC LIMIT $1`
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMessage(row rowScanner) (Message, error) {
	var m Message
	var name, email, phone, subject sql.NullString
	if err := row.Scan(&m.ID, &name, &email, &phone, &subject, &m.Message, &m.CreatedAt); err != nil {
		return Message{}, err
	}
	if name.Valid {
		m.Name = &name.String
	}
	if email.Valid {
		m.Email = &email.String
	}
	if phone.Valid {
		m.Phone = &phone.String
	}
	if subject.Valid {
		m.Subject = &subject.String
	}
	return m, nil
}

func (r *PostgresRepository) List(page, perPage int) ([]Message, int, error) {
	var total int
	if err := r.db.QueryRow(countMessagesQuery).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(listMessagesQuery, perPage, (page-1)*perPage)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	messages := []Message{}
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, 0, err
		}
		messages = append(messages, m)
	}
	return messages, total, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Message, error) {
	m, err := scanMessage(r.db.QueryRow(getMessageQuery, id))
	if err == sql.ErrNoRows {
		return Message{}, ErrNotFound
	}
	return m, err
}

func (r *PostgresRepository) Create(m Message) (Message, error) {
	err := r.db.QueryRow(insertMessageQuery, m.Name, m.Email, m.Phone, m.Subject, m.Message).
		Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return Message{}, err
	}
	return m, nil
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(deleteMessageQuery, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Count() (int, error) {
	var total int
	err := r.db.QueryRow(countMessagesQuery).Scan(&total)
	return total, err
}

func (r *PostgresRepository) Recent(limit int) ([]Message, error) {
	rows, err := r.db.Query(recentMessagesQuery, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []Message{}
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
