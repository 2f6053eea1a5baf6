package db

var Columns = struct {
	Category struct {
		ID, Name string
	}
	User struct {
		ID, Name, Email, PasswordHash string
	}
	News struct {
		ID, Link, Headline, Description, Body, CategoryID string

		Category string
	}
}{
	Category: struct {
		ID, Name string
	}{
		ID:   "category_id",
		Name: "category_name",
	},
	User: struct {
		ID, Name, Email, PasswordHash string
	}{
		ID:           "user_id",
		Name:         "user_name",
		Email:        "user_email",
		PasswordHash: "user_password",
	},
	News: struct {
		ID, Link, Headline, Description, Body, CategoryID string

		Category string
	}{
		ID:          "news_id",
		Link:        "news_link",
		Headline:    "news_head",
		Description: "news_discr",
		Body:        "news_text",
		CategoryID:  "category_id",

		Category: "Category",
	},
}

var Tables = struct {
	Category struct {
		Name, Alias string
	}
	User struct {
		Name, Alias string
	}
	News struct {
		Name, Alias string
	}
}{
	Category: struct {
		Name, Alias string
	}{
		Name:  "categories",
		Alias: "t",
	},
	User: struct {
		Name, Alias string
	}{
		Name:  "users",
		Alias: "t",
	},
	News: struct {
		Name, Alias string
	}{
		Name:  "news",
		Alias: "t",
	},
}

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID   int    `pg:"category_id,pk"`
	Name string `pg:"category_name,use_zero"`
}

type User struct {
	tableName struct{} `pg:"users,alias:t,discard_unknown_columns"`

	ID           int    `pg:"user_id,pk"`
	Name         string `pg:"user_name,use_zero"`
	Email        string `pg:"user_email,use_zero"`
	PasswordHash string `pg:"user_password,use_zero"`
}

type News struct {
	tableName struct{} `pg:"news,alias:t,discard_unknown_columns"`

	ID          int    `pg:"news_id,pk"`
	Link        string `pg:"news_link,use_zero"`
	Headline    string `pg:"news_head,use_zero"`
	Description string `pg:"news_discr,use_zero"`
	Body        string `pg:"news_text,use_zero"`
	CategoryID  int    `pg:"category_id,use_zero"`

	Category *Category `pg:"fk:category_id,rel:has-one"`
}
