package devserver

import (
	"eventbook-client/response"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Router returns the router for all the API handlers.
func Router(store *Store, secret string, sessionTTL time.Duration) *mux.Router {
	r := mux.NewRouter()
	r.Use(SetCorrelationIDHeader)
	r.Use(PanicHandler)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.ResourceNotFound(fmt.Sprintf("The requested resource was not found: path: %s, method: %s", req.URL.Path, req.Method), "The requested resource was not found!").Send(req.Context(), w)
	})

	r.Use(ResponseTimeLogging)
	r.Use(RequestLogging)
	r.Use(SetContentTypeHeader)

	r.HandleFunc("/healthcheck", func(w http.ResponseWriter, req *http.Request) {
		response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	authRouter := r.PathPrefix("/auth").Subrouter()
	authRouter.HandleFunc("/register", Register(store)).Methods(http.MethodPost)
	authRouter.HandleFunc("/login", Login(store, secret, sessionTTL)).Methods(http.MethodPost)
	authRouter.HandleFunc("/me", Me(store, secret)).Methods(http.MethodGet)
	authRouter.HandleFunc("/logout", Logout()).Methods(http.MethodPost)

	r.HandleFunc("/events", ListEvents(store)).Methods(http.MethodGet)
	r.HandleFunc("/events/create", CreateEvent(store, secret)).Methods(http.MethodPost)
	r.HandleFunc("/events/{eventId}", GetEvent(store)).Methods(http.MethodGet)
	r.HandleFunc("/events/{eventId}", DeleteEvent(store, secret)).Methods(http.MethodDelete)

	r.HandleFunc("/bookings", CreateBooking(store, secret)).Methods(http.MethodPost)
	r.HandleFunc("/bookings/user/{userId}", UserBookings(store, secret)).Methods(http.MethodGet)

	return r
}
