package handlers

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"delivery-dispatch/internal/apperr"
	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/service/delivery"
)

const dateLayout = "2006-01-02"

func (p *pointDTO) toModel() *domain.Point {
	if p == nil {
		return nil
	}
	return &domain.Point{Lat: p.Lat, Lng: p.Lng}
}

func (r createDeliveryRequest) toInput(storeID uuid.UUID) (delivery.CreateInput, error) {
	in := delivery.CreateInput{
		StoreID:            storeID,
		OrderID:            r.OrderID,
		DriverID:           r.DriverID,
		Type:               domain.DeliveryType(r.DeliveryType),
		ProviderTrackingID: r.ProviderTrackingID,
		PickupAddress:      r.PickupAddress,
		DeliveryAddress:    r.DeliveryAddress,
		DeliveryLocation:   r.DeliveryLocation.toModel(),
		CustomerName:       r.CustomerName,
		CustomerPhone:      r.CustomerPhone,
		Fee:                r.Fee,
		ScheduledTimeSlot:  r.ScheduledTimeSlot,
		Notes:              r.Notes,
		EstimatedDelivery:  r.EstimatedDeliveryTime,
	}
	if r.RequiredVehicleType != nil {
		vt := domain.VehicleType(*r.RequiredVehicleType)
		in.RequiredVehicleType = &vt
	}
	if r.ScheduledDate != nil {
		d, err := time.Parse(dateLayout, *r.ScheduledDate)
		if err != nil {
			return delivery.CreateInput{}, fmt.Errorf("%w: scheduled_date", apperr.ErrInvalid)
		}
		in.ScheduledDate = &d
	}
	return in, nil
}

func (r statusRequest) toFields() delivery.Fields {
	return delivery.Fields{
		DriverID:      r.DriverID,
		FailureReason: r.FailureReason,
		ProofPhotoURL: r.ProofPhotoURL,
		Notes:         r.Notes,
		Location:      r.Location.toModel(),
	}
}

func (r providerWebhookRequest) toFields() delivery.Fields {
	return delivery.Fields{
		FailureReason: r.FailureReason,
		ProofPhotoURL: r.ProofPhotoURL,
		Notes:         r.Notes,
		Location:      r.Location.toModel(),
	}
}

func toDeliveryDTO(d domain.Delivery) deliveryDTO {
	out := deliveryDTO{
		ID:                    d.ID,
		StoreID:               d.StoreID,
		OrderID:               d.OrderID,
		OrderNumber:           d.OrderNumber,
		DriverID:              d.DriverID,
		DeliveryNumber:        d.DeliveryNumber,
		Status:                d.Status,
		DeliveryType:          d.Type,
		ProviderTrackingID:    d.ProviderTrackingID,
		PickupAddress:         d.PickupAddress,
		DeliveryAddress:       d.DeliveryAddress,
		DeliveryLocation:      d.DeliveryLocation,
		CustomerName:          d.CustomerName,
		CustomerPhone:         d.CustomerPhone,
		Fee:                   d.Fee,
		RequiredVehicleType:   d.RequiredVehicleType,
		ScheduledTimeSlot:     d.ScheduledTimeSlot,
		Notes:                 d.Notes,
		FailureReason:         d.FailureReason,
		ProofPhotoURL:         d.ProofPhotoURL,
		EstimatedDeliveryTime: d.EstimatedDeliveryTime,
		ActualDeliveryTime:    d.ActualDeliveryTime,
		AIAssignment:          d.AIAssignment,
		CreatedAt:             d.CreatedAt,
		UpdatedAt:             d.UpdatedAt,
	}
	if d.ScheduledDate != nil {
		s := d.ScheduledDate.Format(dateLayout)
		out.ScheduledDate = &s
	}
	return out
}

func toStatusLogDTO(l domain.StatusLog) statusLogDTO {
	return statusLogDTO{
		Status:    l.Status,
		Actor:     l.Actor,
		Notes:     l.Notes,
		Location:  l.Location,
		CreatedAt: l.CreatedAt,
	}
}

func toStatusLogDTOs(list []domain.StatusLog) []statusLogDTO {
	out := make([]statusLogDTO, 0, len(list))
	for _, l := range list {
		out = append(out, toStatusLogDTO(l))
	}
	return out
}

func toTransitionResponse(res domain.TransitionResult) transitionResponse {
	return transitionResponse{
		Delivery: toDeliveryDTO(res.Delivery),
		From:     res.From,
		Log:      toStatusLogDTO(res.Log),
	}
}
