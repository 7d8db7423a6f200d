package model

// User is an admin account. Passwords are stored as given; hardening is a
// known gap of this model, not a feature.
type User struct {
	ID       int    `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Password string `json:"-" db:"password"`
}

// InsertUser is the payload for creating a user.
type InsertUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks the payload shape and returns every violated field at once.
func (u *InsertUser) Validate() error {
	var fields []FieldError
	if u.Username == "" {
		fields = append(fields, FieldError{Field: "username", Message: "username is required"})
	}
	if u.Password == "" {
		fields = append(fields, FieldError{Field: "password", Message: "password is required"})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
