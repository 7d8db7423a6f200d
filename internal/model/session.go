package model

import "time"

// OrderSession represents a bounded group-ordering event tied to one
// restaurant and one shareable link. FinalizedAt is non-nil exactly when
// IsActive is false.
type OrderSession struct {
	ID          int        `json:"id" db:"id"`
	Name        string     `json:"name" db:"name"`
	Restaurant  string     `json:"restaurant" db:"restaurant"`
	SessionLink string     `json:"sessionLink" db:"session_link"`
	IsActive    bool       `json:"isActive" db:"is_active"`
	TimeLimit   *time.Time `json:"timeLimit" db:"time_limit"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	FinalizedAt *time.Time `json:"finalizedAt" db:"finalized_at"`
}

// InsertOrderSession is the payload for creating a session. The link token,
// active flag and timestamps are server-assigned.
type InsertOrderSession struct {
	Name       string     `json:"name"`
	Restaurant string     `json:"restaurant"`
	TimeLimit  *time.Time `json:"timeLimit"`
}

// Validate checks the payload shape and returns every violated field at once.
func (s *InsertOrderSession) Validate() error {
	var fields []FieldError
	if s.Name == "" {
		fields = append(fields, FieldError{Field: "name", Message: "name is required"})
	}
	if s.Restaurant == "" {
		fields = append(fields, FieldError{Field: "restaurant", Message: "restaurant is required"})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// SessionStats are the on-demand aggregates for one session.
type SessionStats struct {
	TotalOrders      int    `json:"totalOrders"`
	TotalAmount      string `json:"totalAmount"`
	ParticipantCount int    `json:"participantCount"`
}

// CustomerSummary is the per-participant rollup of a session's orders:
// a concatenated description of everything one customer ordered and the
// summed total. Paid is true only when every order in the group is paid.
type CustomerSummary struct {
	CustomerName string `json:"customerName"`
	Items        string `json:"items"`
	TotalAmount  string `json:"totalAmount"`
	Paid         bool   `json:"paid"`
}
