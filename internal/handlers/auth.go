package handlers

import (
	"errors"
	"net/http"

	"github.com/rezsam09/remuncandygramdatabase/internal/dto"
	"github.com/rezsam09/remuncandygramdatabase/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles the combined check/login/register endpoint.
type AuthHandler struct {
	accounts *service.AccountService
}

// NewAuthHandler returns a new AuthHandler.
func NewAuthHandler(accounts *service.AccountService) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

// Auth godoc
// @Summary      Check a username, log in, or register
// @Description  action=check reports whether the username is taken; action=submit logs in when the account exists and registers it otherwise.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AuthRequest  true  "Credentials and action"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /auth [post]
func (h *AuthHandler) Auth(c *gin.Context) {
	var req dto.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Username is required.")
		return
	}

	switch req.Action {
	case "check":
		taken, err := h.accounts.Check(c.Request.Context(), req.Username)
		if err != nil {
			if errors.Is(err, service.ErrUsernameRequired) {
				fail(c, http.StatusBadRequest, "Username is required.")
				return
			}
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.CheckResponse{Success: true, Taken: taken})

	case "submit":
		created, err := h.accounts.Submit(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrUsernameRequired):
				fail(c, http.StatusBadRequest, "Username is required.")
			case errors.Is(err, service.ErrPasswordRequired):
				fail(c, http.StatusBadRequest, "Password is required.")
			case errors.Is(err, service.ErrWrongPassword):
				fail(c, http.StatusUnauthorized, "Incorrect password.")
			case errors.Is(err, service.ErrUsernameTaken):
				fail(c, http.StatusConflict, "Username already taken.")
			default:
				serverError(c, err)
			}
			return
		}
		msg := "Logged in."
		if created {
			msg = "Account created."
		}
		c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: msg})

	default:
		fail(c, http.StatusBadRequest, "Unknown action.")
	}
}

func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, dto.ErrorResponse{Error: msg})
}

// serverError logs the storage failure on the gin context and reports an
// opaque generic failure; internal detail never reaches the caller.
func serverError(c *gin.Context, err error) {
	_ = c.Error(err)
	fail(c, http.StatusInternalServerError, "Server error.")
}
