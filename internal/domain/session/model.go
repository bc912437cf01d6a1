package session

import "time"

type Role string

const (
	RoleStudent   Role = "student"
	RoleAdmin     Role = "admin"
	RoleAnonymous Role = "anonymous"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleAdmin, RoleAnonymous:
		return true
	}
	return false
}

// Session es lo que queda persistido por visitante.
// Token es un bearer opaco para el cliente (JWT sin expiración).
type Session struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

type Credentials struct {
	Email    string
	Password string
}

type SignupInput struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
}

// Account es una entrada de la allow-list de demo.
type Account struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     Role
}

// DemoAccounts son las credenciales fijas de los portales.
func DemoAccounts() []Account {
	return []Account{
		{ID: "1", Name: "Alex Student", Email: "student@test.com", Password: "password", Role: RoleStudent},
		{ID: "admin-1", Name: "Admin User", Email: "admin@test.com", Password: "admin123", Role: RoleAdmin},
	}
}
