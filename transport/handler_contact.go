package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/muhammadheryan/contact-book/constant"
	"github.com/muhammadheryan/contact-book/model"
	"github.com/muhammadheryan/contact-book/utils/errors"
	validatorx "github.com/muhammadheryan/contact-book/utils/validator"
)

// CreateContact handler
// @Summary Create contact
// @Description Create a contact owned by the authenticated user
// @Tags Contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateContactRequest true "Create Contact Request"
// @Success 201 {object} model.WebResponse
// @Failure 400 {object} model.WebResponse
// @Failure 401 {object} model.WebResponse
// @Router /contacts [post]
func (s *RestHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := s.authUser(w, r)
	if !ok {
		return
	}

	var req model.CreateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, err.Error()))
		return
	}

	res, err := s.ContactApp.Create(ctx, user.Username, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// GetContact handler
// @Summary Get contact
// @Description Get one of the authenticated user's contacts by id
// @Tags Contacts
// @Produce json
// @Security BearerAuth
// @Param contactId path int true "Contact ID"
// @Success 200 {object} model.WebResponse
// @Failure 401 {object} model.WebResponse
// @Failure 404 {object} model.WebResponse
// @Router /contacts/{contactId} [get]
func (s *RestHandler) GetContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := s.authUser(w, r)
	if !ok {
		return
	}

	contactID, ok := pathID(w, r, "contactId")
	if !ok {
		return
	}

	res, err := s.ContactApp.Get(ctx, user.Username, contactID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateContact handler
// @Summary Update contact
// @Description Replace all fields of one of the authenticated user's contacts
// @Tags Contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param contactId path int true "Contact ID"
// @Param request body model.UpdateContactRequest true "Update Contact Request"
// @Success 200 {object} model.WebResponse
// @Failure 400 {object} model.WebResponse
// @Failure 401 {object} model.WebResponse
// @Failure 404 {object} model.WebResponse
// @Router /contacts/{contactId} [put]
func (s *RestHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := s.authUser(w, r)
	if !ok {
		return
	}

	contactID, ok := pathID(w, r, "contactId")
	if !ok {
		return
	}

	var req model.UpdateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, err.Error()))
		return
	}

	res, err := s.ContactApp.Update(ctx, user.Username, contactID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteContact handler
// @Summary Delete contact
// @Description Delete one of the authenticated user's contacts
// @Tags Contacts
// @Produce json
// @Security BearerAuth
// @Param contactId path int true "Contact ID"
// @Success 200 {object} model.WebResponse
// @Failure 401 {object} model.WebResponse
// @Failure 404 {object} model.WebResponse
// @Router /contacts/{contactId} [delete]
func (s *RestHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := s.authUser(w, r)
	if !ok {
		return
	}

	contactID, ok := pathID(w, r, "contactId")
	if !ok {
		return
	}

	res, err := s.ContactApp.Delete(ctx, user.Username, contactID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SearchContacts handler
// @Summary Search contacts
// @Description Search the authenticated user's contacts with optional filters and pagination
// @Tags Contacts
// @Produce json
// @Security BearerAuth
// @Param name query string false "Substring match on first or last name"
// @Param email query string false "Substring match on email"
// @Param phone query string false "Substring match on phone"
// @Param page query int false "Page number (default 1)"
// @Param size query int false "Page size (default 10, max 100)"
// @Success 200 {object} model.WebResponse
// @Failure 400 {object} model.WebResponse
// @Failure 401 {object} model.WebResponse
// @Router /contacts [get]
func (s *RestHandler) SearchContacts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := s.authUser(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	req := model.SearchContactRequest{
		Name:  query.Get("name"),
		Email: query.Get("email"),
		Phone: query.Get("phone"),
		Page:  1,
		Size:  10,
	}

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
		req.Page = page
	}
	if raw := query.Get("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
		req.Size = size
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, err.Error()))
		return
	}

	res, err := s.ContactApp.Search(ctx, user.Username, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writePaged(w, res.Items, res.Paging)
}
