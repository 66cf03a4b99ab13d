package domain

type User struct {
	ID    int64
	Email string
}

// UserWithPassword is the credentials view used only by the login path.
type UserWithPassword struct {
	User
	PasswordHash string
}
