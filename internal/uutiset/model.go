package uutiset

import (
	"github.com/daniilsolovey/uutiset/internal/db"
)

type Category struct {
	db.Category
}

// User deliberately carries no password hash; the hash never leaves the
// storage layer.
type User struct {
	ID    int
	Name  string
	Email string
}

type News struct {
	db.News
	Category Category
}
