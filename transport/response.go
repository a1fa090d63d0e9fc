package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/contact-book/constant"
	"github.com/muhammadheryan/contact-book/model"
	utilsContext "github.com/muhammadheryan/contact-book/utils/context"
	"github.com/muhammadheryan/contact-book/utils/errors"
)

func writeJSON(w http.ResponseWriter, status int, resp model.WebResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, model.WebResponse{Data: data})
}

func writeCreated(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusCreated, model.WebResponse{Data: data})
}

func writePaged(w http.ResponseWriter, data interface{}, paging model.Paging) {
	writeJSON(w, http.StatusOK, model.WebResponse{Data: data, Paging: &paging})
}

func writeError(w http.ResponseWriter, err error) {
	if ce, ok := err.(errors.CustomError); ok {
		writeJSON(w, ce.ErrorHTTPCode(), model.WebResponse{Errors: ce.Error()})
		return
	}
	writeJSON(w, http.StatusInternalServerError, model.WebResponse{
		Errors: constant.ErrorTypeMessage[constant.ErrInternal],
	})
}

// authUser is the access guard: it pulls the identity attached by
// AuthMiddleware and writes a 401 when the request is anonymous. Every
// protected handler calls it before touching any business logic.
func (s *RestHandler) authUser(w http.ResponseWriter, r *http.Request) (*model.UserEntity, bool) {
	user, ok := utilsContext.GetAuthUser(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return nil, false
	}
	return user, true
}

// pathID parses a numeric path variable, answering 400 on junk input.
func pathID(w http.ResponseWriter, r *http.Request, key string) (uint64, bool) {
	raw := mux.Vars(r)[key]
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return 0, false
	}
	return id, true
}
