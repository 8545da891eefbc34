package models

import (
	"time"

	"github.com/gocql/gocql"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID        gocql.UUID `json:"id"`
	FullName  string     `json:"fullName"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone,omitempty"`
	Password  string     `json:"-"`
	Role      string     `json:"role"`
	Provider  string     `json:"provider,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}
