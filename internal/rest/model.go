package rest

// Wire shapes match the frontend exactly: list endpoints return bare arrays,
// write endpoints return a {success, ...} envelope.

type Category struct {
	CategoryID   int    `json:"category_id"`
	CategoryName string `json:"category_name"`
}

type News struct {
	NewsID     int    `json:"news_id"`
	NewsLink   string `json:"news_link"`
	NewsHead   string `json:"news_head"`
	NewsDiscr  string `json:"news_discr"`
	NewsText   string `json:"news_text"`
	CategoryID int    `json:"category_id"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success  bool   `json:"success"`
	UserName string `json:"userName"`
}

type AddNewsRequest struct {
	Category  string `json:"category"`
	NewsLink  string `json:"news_link"`
	NewsHead  string `json:"news_head"`
	NewsDiscr string `json:"news_discr"`
	NewsText  string `json:"news_text"`
}

type AddNewsResponse struct {
	Success    bool `json:"success"`
	CategoryID int  `json:"categoryId"`
	NewsID     int  `json:"newsId"`
}
