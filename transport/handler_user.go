package transport

import (
	"encoding/json"
	"net/http"

	"github.com/muhammadheryan/contact-book/constant"
	"github.com/muhammadheryan/contact-book/model"
	"github.com/muhammadheryan/contact-book/utils/errors"
	validatorx "github.com/muhammadheryan/contact-book/utils/validator"
)

// Register handler
// @Summary Register user
// @Description Register a new user account
// @Tags Users
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 201 {object} model.WebResponse
// @Failure 400 {object} model.WebResponse
// @Router /users [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, err.Error()))
		return
	}

	res, err := s.UserApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with username and password and receive a session token
// @Tags Users
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.WebResponse
// @Failure 401 {object} model.WebResponse
// @Router /users/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, err.Error()))
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetCurrentUser handler
// @Summary Get current user
// @Description Get the authenticated user's profile
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.WebResponse
// @Failure 401 {object} model.WebResponse
// @Router /users/current [get]
func (s *RestHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := s.authUser(w, r)
	if !ok {
		return
	}

	writeSuccess(w, s.UserApp.Get(ctx, user))
}

// UpdateCurrentUser handler
// @Summary Update current user
// @Description Partially update the authenticated user's name and/or password
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.UpdateUserRequest true "Update Request"
// @Success 200 {object} model.WebResponse
// @Failure 400 {object} model.WebResponse
// @Failure 401 {object} model.WebResponse
// @Router /users/current [patch]
func (s *RestHandler) UpdateCurrentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := s.authUser(w, r)
	if !ok {
		return
	}

	var req model.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, err.Error()))
		return
	}

	res, err := s.UserApp.Update(ctx, user, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Logout handler
// @Summary Logout
// @Description Clear the authenticated user's session token
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.WebResponse
// @Failure 401 {object} model.WebResponse
// @Router /users/current [delete]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := s.authUser(w, r)
	if !ok {
		return
	}

	if err := s.UserApp.Logout(ctx, user); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, true)
}
