package repository

import (
	"github.com/gocql/gocql"

	"karthika_back_end/internal/models"
)

// Users persists accounts in the users keyspace. Email lookups go through the
// users_by_email table since email is not part of the primary key.
type Users struct {
	session *gocql.Session
}

func NewUsers(session *gocql.Session) *Users {
	return &Users{session: session}
}

func (r *Users) Get(id gocql.UUID) (*models.User, error) {
	var u models.User
	u.ID = id
	err := r.session.Query(
		`SELECT full_name, email, phone, password, role, provider, created_at
		 FROM users WHERE user_id = ?`, id,
	).Scan(&u.FullName, &u.Email, &u.Phone, &u.Password, &u.Role, &u.Provider, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Users) GetByEmail(email string) (*models.User, error) {
	var id gocql.UUID
	if err := r.session.Query(
		`SELECT user_id FROM users_by_email WHERE email = ?`, email,
	).Scan(&id); err != nil {
		return nil, err
	}
	return r.Get(id)
}

// Insert writes the user row and the email lookup row. No batch: the two
// tables live in the same keyspace and a stale lookup row is harmless.
func (r *Users) Insert(u *models.User) error {
	if err := r.session.Query(
		`INSERT INTO users (user_id, full_name, email, phone, password, role, provider, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.FullName, u.Email, u.Phone, u.Password, u.Role, u.Provider, u.CreatedAt,
	).Exec(); err != nil {
		return err
	}
	return r.session.Query(
		`INSERT INTO users_by_email (email, user_id) VALUES (?, ?)`, u.Email, u.ID,
	).Exec()
}
