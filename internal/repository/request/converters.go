package request

import (
	"github.com/shopspring/decimal"
	"safiridocs/internal/entities"
)

func ToDomain(d *RequestDB) *entities.DeliveryRequest {
	if d == nil {
		return nil
	}

	amount, err := decimal.NewFromString(d.OfferedAmount)
	if err != nil {
		amount = decimal.Zero
	}

	requestEntity := &entities.DeliveryRequest{
		ID:                  d.ID,
		SenderID:            d.SenderID,
		DepartureCity:       d.DepartureCity,
		DestinationCity:     d.DestinationCity,
		PickupAddress:       d.PickupAddress,
		DeliveryAddress:     d.DeliveryAddress,
		DocumentDescription: d.DocumentDescription,
		DocumentType:        d.DocumentType,
		OfferedAmount:       amount,
		Urgency:             entities.UrgencyType(d.Urgency),
		Status:              entities.RequestStatusType(d.Status),
		MatchedTripID:       d.MatchedTripID,
		MatchedTravelerID:   d.MatchedTravelerID,
		MatchedAt:           d.MatchedAt,
		PickedUpAt:          d.PickedUpAt,
		DeliveredAt:         d.DeliveredAt,
		CancellationReason:  d.CancellationReason,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}
	if d.TrackingCode != nil {
		requestEntity.TrackingCode = *d.TrackingCode
	}

	return requestEntity
}

func FromDomainModify(requestModify *entities.RequestModify) *RequestModifyDB {
	if requestModify == nil {
		return nil
	}
	requestDB := &RequestModifyDB{}

	if requestModify.ID != nil {
		requestDB.ID = requestModify.ID
	}
	if requestModify.SenderID != nil {
		requestDB.SenderID = requestModify.SenderID
	}
	if requestModify.DepartureCity != nil {
		requestDB.DepartureCity = requestModify.DepartureCity
	}
	if requestModify.DestinationCity != nil {
		requestDB.DestinationCity = requestModify.DestinationCity
	}
	if requestModify.PickupAddress != nil {
		requestDB.PickupAddress = requestModify.PickupAddress
	}
	if requestModify.DeliveryAddress != nil {
		requestDB.DeliveryAddress = requestModify.DeliveryAddress
	}
	if requestModify.DocumentDescription != nil {
		requestDB.DocumentDescription = requestModify.DocumentDescription
	}
	if requestModify.DocumentType != nil {
		requestDB.DocumentType = requestModify.DocumentType
	}
	if requestModify.OfferedAmount != nil {
		amount := requestModify.OfferedAmount.String()
		requestDB.OfferedAmount = &amount
	}
	if requestModify.Urgency != nil {
		urgency := requestModify.Urgency.String()
		requestDB.Urgency = &urgency
	}
	if requestModify.Status != nil {
		status := requestModify.Status.String()
		requestDB.Status = &status
	}

	return requestDB
}

func ToDomainList(requestsDB []RequestDB) []entities.DeliveryRequest {
	if len(requestsDB) == 0 {
		return []entities.DeliveryRequest{}
	}

	result := make([]entities.DeliveryRequest, len(requestsDB))
	for i, requestDB := range requestsDB {
		result[i] = *ToDomain(&requestDB)
	}
	return result
}

func ToCandidateDomain(c *RequestCandidateDB) *entities.RequestCandidate {
	if c == nil {
		return nil
	}

	return &entities.RequestCandidate{
		Request:    *ToDomain(&c.Request),
		SenderName: c.SenderName,
		TrustScore: c.TrustScore,
	}
}
