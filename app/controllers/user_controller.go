package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shopkit/admin/app/services"
	"github.com/shopkit/admin/pkg/response"
	"github.com/shopkit/admin/pkg/validate"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

func (c *UserController) Index(w http.ResponseWriter, r *http.Request) {
	users, err := c.users.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, users)
}

func (c *UserController) Show(w http.ResponseWriter, r *http.Request) {
	user, err := c.users.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, user)
}

func (c *UserController) Store(w http.ResponseWriter, r *http.Request) {
	var in services.UserInput
	if err := decode(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Malformed JSON body")
		return
	}
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	user, err := c.users.Create(r.Context(), in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Created(w, user)
}

func (c *UserController) Update(w http.ResponseWriter, r *http.Request) {
	var in services.UserInput
	if err := decode(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Malformed JSON body")
		return
	}
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	user, err := c.users.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, user)
}

func (c *UserController) Destroy(w http.ResponseWriter, r *http.Request) {
	if err := c.users.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}
	response.NoContent(w)
}
