package rest

import "github.com/daniilsolovey/uutiset/internal/uutiset"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewCategory(c uutiset.Category) Category {
	return Category{
		CategoryID:   c.ID,
		CategoryName: c.Name,
	}
}

func NewCategories(list []uutiset.Category) []Category {
	return Map(list, NewCategory)
}

func NewNews(n uutiset.News) News {
	return News{
		NewsID:     n.ID,
		NewsLink:   n.Link,
		NewsHead:   n.Headline,
		NewsDiscr:  n.Description,
		NewsText:   n.Body,
		CategoryID: n.CategoryID,
	}
}

func NewNewsList(list []uutiset.News) []News {
	return Map(list, NewNews)
}
