package reviews_user_get

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	reviews, err := h.service.ListForUser(r.Context(), userID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		item := &reviews[i]
		response = append(response, ReviewResponse{
			ID:           item.Review.ID,
			ReviewerName: item.ReviewerName,
			Rating:       item.Review.Rating,
			ReviewText:   item.Review.ReviewText,
			ReviewType:   item.Review.ReviewType.String(),
			CreatedAt:    item.Review.CreatedAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
