//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=request_post_test
package request_post

import (
	"context"

	"safiridocs/internal/entities"
	"safiridocs/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CreateRequest(ctx context.Context, actor *entities.User, requestModify entities.RequestModify) (string, error)
}

type RequestCreate struct {
	DepartureCity       string  `json:"departure_city"`
	DestinationCity     string  `json:"destination_city"`
	PickupAddress       string  `json:"pickup_address"`
	DeliveryAddress     string  `json:"delivery_address"`
	DocumentDescription string  `json:"document_description"`
	DocumentType        string  `json:"document_type"`
	OfferedAmount       float64 `json:"offered_amount"`
	Urgency             string  `json:"urgency,omitempty"`
}

type RequestCreateResponse struct {
	ID string `json:"id"`
}
