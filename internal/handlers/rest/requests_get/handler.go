package requests_get

import (
	"encoding/json"
	"net/http"

	"safiridocs/internal/entities"
	"safiridocs/internal/pkg/middlewares/auth"
	"safiridocs/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP отдает либо собственные заявки отправителя, либо витрину
// для перевозчика. Кто не возит документы или явно попросил view=sender,
// видит свои заявки; остальные - маркетплейс с фильтром по статусу.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.UserFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	params := r.URL.Query()
	if params.Get("view") == "sender" || !actor.CanCarry() {
		h.serveSenderView(w, r, actor.ID)
		return
	}

	status := entities.RequestStatusType(params.Get("status"))
	if status == "" {
		status = entities.RequestOpen
	}

	filter := entities.RequestFilter{
		Status:          status,
		DepartureCity:   params.Get("from"),
		DestinationCity: params.Get("to"),
		Urgency:         entities.UrgencyType(params.Get("urgency")),
	}

	candidates, err := h.service.GetOpenRequests(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := make([]MarketRequestResponse, 0, len(candidates))
	for i := range candidates {
		candidate := &candidates[i]
		response = append(response, MarketRequestResponse{
			ID:                  candidate.Request.ID,
			DepartureCity:       candidate.Request.DepartureCity,
			DestinationCity:     candidate.Request.DestinationCity,
			DocumentDescription: candidate.Request.DocumentDescription,
			DocumentType:        candidate.Request.DocumentType,
			OfferedAmount:       candidate.Request.OfferedAmount.StringFixed(2),
			Urgency:             candidate.Request.Urgency.String(),
			Status:              candidate.Request.Status.String(),
			SenderName:          candidate.SenderName,
			SenderTrustScore:    candidate.TrustScore,
			CreatedAt:           candidate.Request.CreatedAt,
		})
	}

	h.writeJSON(w, response)
}

func (h *Handler) serveSenderView(w http.ResponseWriter, r *http.Request, senderID string) {
	requests, err := h.service.GetSenderRequests(r.Context(), senderID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := make([]RequestResponse, 0, len(requests))
	for i := range requests {
		response = append(response, toRequestResponse(&requests[i]))
	}

	h.writeJSON(w, response)
}

func (h *Handler) writeJSON(w http.ResponseWriter, response interface{}) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toRequestResponse(requestEntity *entities.DeliveryRequest) RequestResponse {
	return RequestResponse{
		ID:                  requestEntity.ID,
		DepartureCity:       requestEntity.DepartureCity,
		DestinationCity:     requestEntity.DestinationCity,
		PickupAddress:       requestEntity.PickupAddress,
		DeliveryAddress:     requestEntity.DeliveryAddress,
		DocumentDescription: requestEntity.DocumentDescription,
		DocumentType:        requestEntity.DocumentType,
		OfferedAmount:       requestEntity.OfferedAmount.StringFixed(2),
		Urgency:             requestEntity.Urgency.String(),
		Status:              requestEntity.Status.String(),
		TrackingCode:        requestEntity.TrackingCode,
		MatchedTripID:       requestEntity.MatchedTripID,
		MatchedTravelerID:   requestEntity.MatchedTravelerID,
		MatchedAt:           requestEntity.MatchedAt,
		PickedUpAt:          requestEntity.PickedUpAt,
		DeliveredAt:         requestEntity.DeliveredAt,
		CancellationReason:  requestEntity.CancellationReason,
		CreatedAt:           requestEntity.CreatedAt,
	}
}
