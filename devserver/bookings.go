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

// CreateBooking handles POST /bookings. The session user is the booking
// owner regardless of what the payload claims.
func CreateBooking(store *Store, secret string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		user, err := sessionUser(r, store, secret)
		if err != nil {
			response.Unauthorized().Send(ctx, w)
			return
		}

		var req model.BookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest("invalid request body", err.Error()).Send(ctx, w)
			return
		}
		req.UserID = user.UserID

		record, err := store.CreateBooking(req)
		if err != nil {
			switch {
			case errors.Is(err, ErrBadSeatCount):
				response.InvalidData("createBooking: seats must be between 1 and 5").Send(ctx, w)
			case errors.Is(err, ErrEventNotFound):
				response.ResourceNotFound("event not found", "createBooking: "+req.EventID).Send(ctx, w)
			case errors.Is(err, ErrNotEnoughSeats):
				response.NotEnoughSeats().Send(ctx, w)
			default:
				logger.Errorf(ctx, "createBooking: %v", err)
				response.SomethingWrong().Send(ctx, w)
			}
			return
		}

		logger.Infof(ctx, "booking created: %s seats=%d event=%s", record.ID, record.Seats, record.EventID)
		response.JSON(w, http.StatusCreated, record)
	}
}

// UserBookings handles GET /bookings/user/{userId}. Users can only list
// their own bookings.
func UserBookings(store *Store, secret string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		user, err := sessionUser(r, store, secret)
		if err != nil {
			response.Unauthorized().Send(ctx, w)
			return
		}

		userID := mux.Vars(r)["userId"]
		if userID != user.UserID && !user.IsAdmin() {
			response.Forbidden("cannot list another user's bookings").Send(ctx, w)
			return
		}

		response.JSON(w, http.StatusOK, store.UserBookings(userID))
	}
}
