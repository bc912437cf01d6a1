package auth

// Claims representa la información extraída del token.
// Role viaja como string para que ports no dependa de domain.
type Claims struct {
	UserID string
	Name   string
	Email  string
	Role   string
}
