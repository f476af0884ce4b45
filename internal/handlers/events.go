package handlers

import (
	"net/http"

	"github.com/giftflow-app/backend/internal/models"
)

type createEventRequest struct {
	Name             string   `json:"name" validate:"required"`
	Date             string   `json:"date" validate:"required"`
	Budget           *float64 `json:"budget"`
	Participants     []string `json:"participants"`
	EventType        *string  `json:"event_type"`
	AllowWishlists   *bool    `json:"allow_wishlists"`
	CollectAddresses *bool    `json:"collect_addresses"`
	CustomMessage    *string  `json:"custom_message"`
}

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	user, ok := userFrom(r.Context())
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "Invalid token")
		return
	}
	writeJSON(w, http.StatusOK, s.store.EventsByOwner(user.ID))
}

// handleCreateEvent appends a new draft event owned by the caller. Owner and
// status are fixed server-side; any id/ownerId/status in the body is ignored
// because the request struct simply has no fields for them. Date and budget
// are taken as-is, unvalidated.
func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	user, ok := userFrom(r.Context())
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	var in createEventRequest
	if err := s.decodeValid(r, &in); err != nil {
		errorJSON(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	event := models.Event{
		Name:             in.Name,
		Date:             in.Date,
		Budget:           in.Budget,
		Participants:     in.Participants,
		OwnerID:          user.ID,
		Status:           models.StatusDraft,
		EventType:        models.DefaultEventType,
		AllowWishlists:   true,
		CollectAddresses: false,
		CustomMessage:    in.CustomMessage,
	}
	if event.Participants == nil {
		event.Participants = []string{}
	}
	if in.EventType != nil && *in.EventType != "" {
		event.EventType = *in.EventType
	}
	if in.AllowWishlists != nil {
		event.AllowWishlists = *in.AllowWishlists
	}
	if in.CollectAddresses != nil {
		event.CollectAddresses = *in.CollectAddresses
	}

	event = s.store.AddEvent(event)

	s.logger.Info().Str("eventId", event.ID).Str("ownerId", event.OwnerID).Msg("event created")
	writeJSON(w, http.StatusOK, event)
}
