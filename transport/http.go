package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	addressapp "github.com/muhammadheryan/contact-book/application/address"
	contactapp "github.com/muhammadheryan/contact-book/application/contact"
	userapp "github.com/muhammadheryan/contact-book/application/user"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp    userapp.UserApp
	ContactApp contactapp.ContactApp
	AddressApp addressapp.AddressApp
}

func NewTransport(UserApp userapp.UserApp, ContactApp contactapp.ContactApp, AddressApp addressapp.AddressApp) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		UserApp:    UserApp,
		ContactApp: ContactApp,
		AddressApp: AddressApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/users", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/users/login", rh.Login).Methods(http.MethodPost)

	// Protected routes; handlers gate on the identity attached by the
	// auth middleware
	mux.HandleFunc("/users/current", rh.GetCurrentUser).Methods(http.MethodGet)
	mux.HandleFunc("/users/current", rh.UpdateCurrentUser).Methods(http.MethodPatch)
	mux.HandleFunc("/users/current", rh.Logout).Methods(http.MethodDelete)

	mux.HandleFunc("/contacts", rh.CreateContact).Methods(http.MethodPost)
	mux.HandleFunc("/contacts", rh.SearchContacts).Methods(http.MethodGet)
	mux.HandleFunc("/contacts/{contactId}", rh.GetContact).Methods(http.MethodGet)
	mux.HandleFunc("/contacts/{contactId}", rh.UpdateContact).Methods(http.MethodPut)
	mux.HandleFunc("/contacts/{contactId}", rh.DeleteContact).Methods(http.MethodDelete)

	mux.HandleFunc("/contacts/{contactId}/addresses", rh.CreateAddress).Methods(http.MethodPost)
	mux.HandleFunc("/contacts/{contactId}/addresses", rh.ListAddresses).Methods(http.MethodGet)
	mux.HandleFunc("/contacts/{contactId}/addresses/{addressId}", rh.GetAddress).Methods(http.MethodGet)
	mux.HandleFunc("/contacts/{contactId}/addresses/{addressId}", rh.UpdateAddress).Methods(http.MethodPut)
	mux.HandleFunc("/contacts/{contactId}/addresses/{addressId}", rh.DeleteAddress).Methods(http.MethodDelete)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(UserApp))

	return mux
}
