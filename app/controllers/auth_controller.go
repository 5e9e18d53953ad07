package controllers

import (
	"net/http"
	"strings"

	"github.com/shopkit/admin/app/services"
	"github.com/shopkit/admin/pkg/middleware"
	"github.com/shopkit/admin/pkg/response"
)

type AuthController struct {
	auth  *services.AuthService
	users *services.UserService
}

func NewAuthController(auth *services.AuthService, users *services.UserService) *AuthController {
	return &AuthController{auth: auth, users: users}
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decode(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, "Malformed JSON body")
		return
	}

	token, user, err := c.auth.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}

	response.Success(w, map[string]any{
		"token": token,
		"user":  user,
	})
}

func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if err := c.auth.Logout(token); err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, map[string]string{"message": "Logged out"})
}

// Me returns the authenticated account, used by the panel on reload to
// restore the session.
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	user, err := c.users.Get(r.Context(), middleware.UserIDFromCtx(r.Context()))
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, user)
}
