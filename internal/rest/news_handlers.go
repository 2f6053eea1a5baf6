package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/uutiset/internal/uutiset"
)

// NewsBoard is the service surface the handlers need.
type NewsBoard interface {
	Authenticate(ctx context.Context, email, password string) (*uutiset.User, error)
	Categories(ctx context.Context) ([]uutiset.Category, error)
	AddNews(ctx context.Context, categoryName, link, headline, description, body string) (*uutiset.News, error)
	NewsByCategory(ctx context.Context, categoryName string) ([]uutiset.News, error)
}

type NewsHandler struct {
	uc  NewsBoard
	log *slog.Logger
}

func NewNewsHandler(uc NewsBoard, log *slog.Logger) *NewsHandler {
	return &NewsHandler{
		uc:  uc,
		log: log,
	}
}

func (h *NewsHandler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

// Categories handles GET /categories
// @Summary List categories
// @Description Returns all categories sorted by name ascending
// @Tags categories
// @Produce json
// @Success 200 {array} rest.Category
// @Failure 500 {string} string "Database error"
// @Router /categories [get]
func (h *NewsHandler) Categories(c echo.Context) error {
	categories, err := h.uc.Categories(c.Request().Context())
	if err != nil {
		h.log.Error("failed to get categories", "error", err)
		return c.String(http.StatusInternalServerError, "Database error")
	}

	return c.JSON(http.StatusOK, NewCategories(categories))
}

// Login handles POST /login
// @Summary Verify credentials
// @Description Checks email and password against the stored hash. No token or
// session is issued; the client keeps the signed-in state itself.
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} rest.LoginResponse
// @Failure 400,500 {object} map[string]string
// @Router /login [post]
func (h *NewsHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "Email and password required.")
	}

	user, err := h.uc.Authenticate(c.Request().Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, uutiset.ErrMissingCredentials):
		return h.handleError(c, err, http.StatusBadRequest, "Email and password required.")
	case errors.Is(err, uutiset.ErrInvalidCredentials):
		return h.handleError(c, err, http.StatusBadRequest, "Invalid email or password.")
	case err != nil:
		return h.handleError(c, err, http.StatusInternalServerError, "Server error.")
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Success:  true,
		UserName: user.Name,
	})
}

// AddNews handles POST /add-news-full
// @Summary Add a news item
// @Description Resolves the category by name and inserts the news row in one
// transaction. All five fields are required.
// @Tags news
// @Accept json
// @Produce json
// @Success 200 {object} rest.AddNewsResponse
// @Failure 400,500 {object} map[string]string
// @Router /add-news-full [post]
func (h *NewsHandler) AddNews(c echo.Context) error {
	var req AddNewsRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "Invalid data")
	}

	news, err := h.uc.AddNews(
		c.Request().Context(),
		req.Category, req.NewsLink, req.NewsHead, req.NewsDiscr, req.NewsText,
	)
	switch {
	case errors.Is(err, uutiset.ErrInvalidInput):
		return h.handleError(c, err, http.StatusBadRequest, "Invalid data")
	case err != nil:
		// Category-not-found surfaces as the same generic failure as a
		// storage error, matching the existing client contract.
		return h.handleError(c, err, http.StatusInternalServerError, "Database error")
	}

	return c.JSON(http.StatusOK, AddNewsResponse{
		Success:    true,
		CategoryID: news.CategoryID,
		NewsID:     news.ID,
	})
}

// NewsByCategory handles GET /news?category=NAME
// @Summary List news for a category
// @Description Returns the category's news newest first; an unknown category
// yields an empty array
// @Tags news
// @Produce json
// @Param category query string true "Category name"
// @Success 200 {array} rest.News
// @Failure 400,500 {object} map[string]string
// @Router /news [get]
func (h *NewsHandler) NewsByCategory(c echo.Context) error {
	categoryName := c.QueryParam("category")
	if categoryName == "" {
		return h.handleError(c, nil, http.StatusBadRequest, "Category required")
	}

	news, err := h.uc.NewsByCategory(c.Request().Context(), categoryName)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "Database error")
	}

	return c.JSON(http.StatusOK, NewNewsList(news))
}
