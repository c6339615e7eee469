package http

import (
	"time"

	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/address"
	"shipping/internal/core/domain/model/cargo"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/transportation"
)

// resource is the {id, type, attributes} shape of every entity payload.
type resource struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Attributes map[string]any `json:"attributes"`
}

func transportationResource(aggregate *transportation.Transportation) resource {
	return resource{
		ID:   aggregate.ID().String(),
		Type: "transportation",
		Attributes: map[string]any{
			"name":              aggregate.Name(),
			"status":            aggregate.Status().String(),
			"statusLabel":       aggregate.Status().Label(),
			"pickupFrom":        aggregate.Pickup().From().Format(time.RFC3339),
			"pickupTo":          aggregate.Pickup().To().Format(time.RFC3339),
			"pickupAddressId":   optionalID(aggregate.PickupAddressID()),
			"deliveryAddressId": optionalID(aggregate.DeliveryAddressID()),
		},
	}
}

func transportationReadResource(response queries.TransportationResponse) resource {
	return resource{
		ID:   response.ID.String(),
		Type: "transportation",
		Attributes: map[string]any{
			"name":        response.Name,
			"status":      response.Status.String(),
			"statusLabel": response.StatusLabel,
			"pickupFrom":  response.PickupFrom.Format(time.RFC3339),
			"pickupTo":    response.PickupTo.Format(time.RFC3339),
			"createdAt":   response.CreatedAt.Format(time.RFC3339),
		},
	}
}

func addressResource(aggregate *address.Address) resource {
	return resource{
		ID:   aggregate.ID().String(),
		Type: "transportationAddress",
		Attributes: map[string]any{
			"transportationId": aggregate.TransportationID().String(),
			"type":             aggregate.Type().String(),
			"alias":            aggregate.Alias(),
			"contact":          aggregate.Contact(),
			"phoneNumber":      aggregate.Phone().String(),
			"cityId":           aggregate.CityID(),
			"countryId":        aggregate.CountryID(),
			"addressLine1":     aggregate.AddressLine1(),
			"addressLine2":     aggregate.AddressLine2(),
			"addressLine3":     aggregate.AddressLine3(),
			"comment":          aggregate.Comment(),
			"latitude":         aggregate.Coordinates().Latitude(),
			"longitude":        aggregate.Coordinates().Longitude(),
		},
	}
}

func cargoResource(aggregate *cargo.Cargo) resource {
	characteristics := aggregate.Characteristics()

	return resource{
		ID:   aggregate.ID().String(),
		Type: "cargo",
		Attributes: map[string]any{
			"transportationId": aggregate.TransportationID().String(),
			"name":             characteristics.Name(),
			"length":           characteristics.Length(),
			"width":            characteristics.Width(),
			"height":           characteristics.Height(),
			"weight":           characteristics.Weight(),
			"price":            aggregate.Price().Amount(),
			"currency":         aggregate.Price().Currency().Code(),
		},
	}
}

// paginatedResource mirrors the shape of the original paginator.
type paginatedResource struct {
	Items        []resource `json:"items"`
	CurrentPage  int        `json:"currentPage"`
	LastPage     int        `json:"lastPage"`
	PerPage      int        `json:"perPage"`
	TotalRecords int64      `json:"totalRecords"`
}

func paginatedTransportations(page queries.PaginatedTransportations) paginatedResource {
	items := make([]resource, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, transportationReadResource(item))
	}

	lastPage := int((page.Total + int64(page.PerPage) - 1) / int64(page.PerPage))
	if lastPage < 1 {
		lastPage = 1
	}

	return paginatedResource{
		Items:        items,
		CurrentPage:  page.Page,
		LastPage:     lastPage,
		PerPage:      page.PerPage,
		TotalRecords: page.Total,
	}
}

func optionalID(id *kernel.UUID) any {
	if id == nil {
		return nil
	}
	return id.String()
}
