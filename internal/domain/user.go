package domain

// User is the domain model for helpdesk end-users. Ids are assigned
// sequentially by the store and never reused within a process lifetime.
type User struct {
	ID    int
	Name  string
	Email string
}
