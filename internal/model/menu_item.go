package model

import "regexp"

// decimalPattern matches money values encoded as strings with two decimal
// places, e.g. "12.90".
var decimalPattern = regexp.MustCompile(`^[0-9]+\.[0-9]{2}$`)

// MenuItem represents a dish on the shared menu.
type MenuItem struct {
	ID          int     `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description string  `json:"description" db:"description"`
	Price       string  `json:"price" db:"price"`
	Category    string  `json:"category" db:"category"`
	ImageURL    *string `json:"imageUrl" db:"image_url"`
	IsAvailable bool    `json:"isAvailable" db:"is_available"`
}

// InsertMenuItem is the payload for creating a menu item. The identifier is
// server-assigned and therefore absent.
type InsertMenuItem struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       string  `json:"price"`
	Category    string  `json:"category"`
	ImageURL    *string `json:"imageUrl"`
	IsAvailable *bool   `json:"isAvailable"`
}

// Validate checks the payload shape and returns every violated field at once.
func (m *InsertMenuItem) Validate() error {
	var fields []FieldError
	if m.Name == "" {
		fields = append(fields, FieldError{Field: "name", Message: "name is required"})
	}
	if m.Description == "" {
		fields = append(fields, FieldError{Field: "description", Message: "description is required"})
	}
	if m.Price == "" {
		fields = append(fields, FieldError{Field: "price", Message: "price is required"})
	} else if !decimalPattern.MatchString(m.Price) {
		fields = append(fields, FieldError{Field: "price", Message: "price must be a decimal string with two decimal places"})
	}
	if m.Category == "" {
		fields = append(fields, FieldError{Field: "category", Message: "category is required"})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// UpdateMenuItem is a partial update payload. Nil fields are left untouched.
type UpdateMenuItem struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *string `json:"price"`
	Category    *string `json:"category"`
	ImageURL    *string `json:"imageUrl"`
	IsAvailable *bool   `json:"isAvailable"`
}

// Validate rejects provided-but-malformed fields; absent fields are fine.
func (m *UpdateMenuItem) Validate() error {
	var fields []FieldError
	if m.Name != nil && *m.Name == "" {
		fields = append(fields, FieldError{Field: "name", Message: "name cannot be empty"})
	}
	if m.Description != nil && *m.Description == "" {
		fields = append(fields, FieldError{Field: "description", Message: "description cannot be empty"})
	}
	if m.Price != nil && !decimalPattern.MatchString(*m.Price) {
		fields = append(fields, FieldError{Field: "price", Message: "price must be a decimal string with two decimal places"})
	}
	if m.Category != nil && *m.Category == "" {
		fields = append(fields, FieldError{Field: "category", Message: "category cannot be empty"})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
