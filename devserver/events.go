package devserver

import (
	"encoding/json"
	"errors"
	"eventbook-client/logger"
	"eventbook-client/model"
	"eventbook-client/response"
	"net/http"

	"github.com/gorilla/mux"
)

func ListEvents(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusOK, store.Events())
	}
}

func GetEvent(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID := mux.Vars(r)["eventId"]
		event, err := store.Event(eventID)
		if err != nil {
			response.ResourceNotFound("event not found", "getEvent: "+eventID).Send(r.Context(), w)
			return
		}
		response.JSON(w, http.StatusOK, event)
	}
}

// CreateEvent handles POST /events/create. Admin only.
func CreateEvent(store *Store, secret string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		user, err := sessionUser(r, store, secret)
		if err != nil {
			response.Unauthorized().Send(ctx, w)
			return
		}
		if !user.IsAdmin() {
			response.Forbidden("admin role required").Send(ctx, w)
			return
		}

		var req model.CreateEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest("invalid request body", err.Error()).Send(ctx, w)
			return
		}

		event, err := store.CreateEvent(req)
		if err != nil {
			response.InvalidData("createEvent: " + err.Error()).Send(ctx, w)
			return
		}
		logger.Infof(ctx, "event created: %s (%d seats)", event.EventID, event.TotalSeats)
		response.JSON(w, http.StatusCreated, event)
	}
}

// DeleteEvent handles DELETE /events/{eventId}. Admin only.
func DeleteEvent(store *Store, secret string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		user, err := sessionUser(r, store, secret)
		if err != nil {
			response.Unauthorized().Send(ctx, w)
			return
		}
		if !user.IsAdmin() {
			response.Forbidden("admin role required").Send(ctx, w)
			return
		}

		eventID := mux.Vars(r)["eventId"]
		if err := store.DeleteEvent(eventID); err != nil {
			if errors.Is(err, ErrEventNotFound) {
				response.ResourceNotFound("event not found", "deleteEvent: "+eventID).Send(ctx, w)
				return
			}
			logger.Errorf(ctx, "deleteEvent: %v", err)
			response.SomethingWrong().Send(ctx, w)
			return
		}
		response.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}
