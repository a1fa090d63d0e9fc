package transport

import (
	"encoding/json"
	"net/http"

	"github.com/muhammadheryan/contact-book/constant"
	"github.com/muhammadheryan/contact-book/model"
	"github.com/muhammadheryan/contact-book/utils/errors"
	validatorx "github.com/muhammadheryan/contact-book/utils/validator"
)

// CreateAddress handler
// @Summary Create address
// @Description Create an address under one of the authenticated user's contacts
// @Tags Addresses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param contactId path int true "Contact ID"
// @Param request body model.CreateAddressRequest true "Create Address Request"
// @Success 201 {object} model.WebResponse
// @Failure 400 {object} model.WebResponse
// @Failure 401 {object} model.WebResponse
// @Failure 404 {object} model.WebResponse
// @Router /contacts/{contactId}/addresses [post]
func (s *RestHandler) CreateAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := s.authUser(w, r)
	if !ok {
		return
	}

	contactID, ok := pathID(w, r, "contactId")
	if !ok {
		return
	}

	var req model.CreateAddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, err.Error()))
		return
	}

	res, err := s.AddressApp.Create(ctx, user.Username, contactID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// ListAddresses handler
// @Summary List addresses
// @Description List every address under one of the authenticated user's contacts
// @Tags Addresses
// @Produce json
// @Security BearerAuth
// @Param contactId path int true "Contact ID"
// @Success 200 {object} model.WebResponse
// @Failure 401 {object} model.WebResponse
// @Failure 404 {object} model.WebResponse
// @Router /contacts/{contactId}/addresses [get]
func (s *RestHandler) ListAddresses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := s.authUser(w, r)
	if !ok {
		return
	}

	contactID, ok := pathID(w, r, "contactId")
	if !ok {
		return
	}

	res, err := s.AddressApp.List(ctx, user.Username, contactID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetAddress handler
// @Summary Get address
// @Description Get an address under one of the authenticated user's contacts
// @Tags Addresses
// @Produce json
// @Security BearerAuth
// @Param contactId path int true "Contact ID"
// @Param addressId path int true "Address ID"
// @Success 200 {object} model.WebResponse
// @Failure 401 {object} model.WebResponse
// @Failure 404 {object} model.WebResponse
// @Router /contacts/{contactId}/addresses/{addressId} [get]
func (s *RestHandler) GetAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := s.authUser(w, r)
	if !ok {
		return
	}

	contactID, ok := pathID(w, r, "contactId")
	if !ok {
		return
	}
	addressID, ok := pathID(w, r, "addressId")
	if !ok {
		return
	}

	res, err := s.AddressApp.Get(ctx, user.Username, contactID, addressID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateAddress handler
// @Summary Update address
// @Description Replace all fields of an address under one of the authenticated user's contacts
// @Tags Addresses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param contactId path int true "Contact ID"
// @Param addressId path int true "Address ID"
// @Param request body model.UpdateAddressRequest true "Update Address Request"
// @Success 200 {object} model.WebResponse
// @Failure 400 {object} model.WebResponse
// @Failure 401 {object} model.WebResponse
// @Failure 404 {object} model.WebResponse
// @Router /contacts/{contactId}/addresses/{addressId} [put]
func (s *RestHandler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := s.authUser(w, r)
	if !ok {
		return
	}

	contactID, ok := pathID(w, r, "contactId")
	if !ok {
		return
	}
	addressID, ok := pathID(w, r, "addressId")
	if !ok {
		return
	}

	var req model.UpdateAddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, err.Error()))
		return
	}

	res, err := s.AddressApp.Update(ctx, user.Username, contactID, addressID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteAddress handler
// @Summary Delete address
// @Description Delete an address under one of the authenticated user's contacts
// @Tags Addresses
// @Produce json
// @Security BearerAuth
// @Param contactId path int true "Contact ID"
// @Param addressId path int true "Address ID"
// @Success 200 {object} model.WebResponse
// @Failure 401 {object} model.WebResponse
// @Failure 404 {object} model.WebResponse
// @Router /contacts/{contactId}/addresses/{addressId} [delete]
func (s *RestHandler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := s.authUser(w, r)
	if !ok {
		return
	}

	contactID, ok := pathID(w, r, "contactId")
	if !ok {
		return
	}
	addressID, ok := pathID(w, r, "addressId")
	if !ok {
		return
	}

	res, err := s.AddressApp.Delete(ctx, user.Username, contactID, addressID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
