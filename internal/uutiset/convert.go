package uutiset

import (
	"github.com/daniilsolovey/uutiset/internal/db"
)

func NewCategory(c *db.Category) Category {
	return Category{
		Category: *c,
	}
}

func NewCategories(list []db.Category) []Category {
	result := make([]Category, len(list))
	for i := range list {
		result[i] = NewCategory(&list[i])
	}
	return result
}

func NewUser(u *db.User) User {
	return User{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

func NewNews(n *db.News) News {
	news := News{
		News: *n,
	}

	if n.Category != nil {
		news.Category = NewCategory(n.Category)
	}

	return news
}

func NewNewsList(list []db.News) []News {
	result := make([]News, len(list))
	for i := range list {
		result[i] = NewNews(&list[i])
	}
	return result
}
