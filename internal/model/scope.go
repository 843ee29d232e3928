package model

// Scope carries the caller identity through the request pipeline.
type Scope struct {
	UserID   string
	Username string
}
