package handler

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/99minutos/fedex-carrier/internal/core/domain"
	"github.com/99minutos/fedex-carrier/internal/core/ports"
)

const (
	defaultCarrier      = "fedex"
	defaultShipmentType = "EXPRESS"
)

func carrierOrDefault(name string) string {
	if strings.TrimSpace(name) == "" {
		return defaultCarrier
	}
	return name
}

// --- Request → Service input ---

func toRateInput(req rateRequest) ports.RateInput {
	return ports.RateInput{
		Carrier:     carrierOrDefault(req.Carrier),
		Origin:      toLocation(req.Origin),
		Destination: toLocation(req.Destination),
		Packages:    toPackages(req.Packages),
		Options:     toOptions(req.Options),
	}
}

func toCreateInput(req createShipmentRequest, clientID string) ports.CreateShipmentInput {
	return ports.CreateShipmentInput{
		Carrier:     carrierOrDefault(req.Carrier),
		ClientID:    clientID,
		Origin:      toLocation(req.Origin),
		Destination: toLocation(req.Destination),
		Packages:    toPackages(req.Packages),
		Options:     toOptions(req.Options),
	}
}

// errInvalidShipTimestamp is returned by toDeleteInput when ship_timestamp is
// not RFC 3339.
var errInvalidShipTimestamp = errors.New("ship_timestamp must be an RFC 3339 timestamp")

func toDeleteInput(trackingNumber string, q deleteShipmentQuery, role, clientID string) (ports.DeleteShipmentInput, error) {
	opts := domain.Options{
		DeletionType: q.DeletionType,
		Test:         optionalBool(q.Test),
		LogXML:       optionalBool(q.LogXML),
	}
	if q.ShipTimestamp != "" {
		ts, err := time.Parse(time.RFC3339, q.ShipTimestamp)
		if err != nil {
			return ports.DeleteShipmentInput{}, errInvalidShipTimestamp
		}
		opts.ShipTimestamp = ts
	}
	shipmentType := q.ShipmentType
	if shipmentType == "" {
		shipmentType = defaultShipmentType
	}
	return ports.DeleteShipmentInput{
		Carrier:        carrierOrDefault(q.Carrier),
		TrackingNumber: trackingNumber,
		ShipmentType:   shipmentType,
		Role:           role,
		ClientID:       clientID,
		Options:        opts,
	}, nil
}

func toTrackInput(trackingNumber string, q trackingQuery) ports.TrackInput {
	return ports.TrackInput{
		Carrier:        carrierOrDefault(q.Carrier),
		TrackingNumber: trackingNumber,
		Options: domain.Options{
			PackageIdentifierType: q.PackageIdentifierType,
			Test:                  optionalBool(q.Test),
			LogXML:                optionalBool(q.LogXML),
		},
	}
}

// optionalBool returns nil for an absent or unreadable flag so the carrier
// default applies.
func optionalBool(s string) *bool {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return nil
	}
	return domain.Bool(v)
}

func toLocation(l locationRequest) domain.Location {
	return domain.Location{
		Name:        l.Name,
		Company:     l.Company,
		Phone:       l.Phone,
		Address1:    l.Address1,
		Address2:    l.Address2,
		City:        l.City,
		State:       l.State,
		PostalCode:  l.PostalCode,
		CountryCode: strings.ToUpper(l.CountryCode),
		Commercial:  l.Commercial,
	}
}

func toPackages(reqs []packageRequest) []domain.Package {
	out := make([]domain.Package, len(reqs))
	for i, p := range reqs {
		out[i] = domain.Package{Weight: p.Weight}
		if p.Dimensions != nil {
			out[i].Dimensions = &domain.Dimensions{
				Length: p.Dimensions.Length,
				Width:  p.Dimensions.Width,
				Height: p.Dimensions.Height,
			}
		}
	}
	return out
}

func toOptions(o optionsRequest) domain.Options {
	opts := domain.Options{
		ServiceType:                 o.ServiceType,
		DropoffType:                 o.DropoffType,
		PackageType:                 o.PackageType,
		ShipDate:                    o.ShipDate,
		WithoutSignature:            o.WithoutSignature,
		DangerousGoods:              o.DangerousGoods,
		SaturdayDelivery:            o.SaturdayDelivery,
		ReturnShipment:              o.ReturnShipment,
		ReturnTransitAndCommit:      o.ReturnTransitAndCommit,
		NotificationAggregationType: o.NotificationAggregationType,
		Test:                        o.Test,
		LogXML:                      o.LogXML,
	}
	if o.Shipper != nil {
		shipper := toLocation(*o.Shipper)
		opts.Shipper = &shipper
	}
	if o.Customs != nil {
		opts.Customs = &domain.Customs{Currency: strings.ToUpper(o.Customs.Currency), Amount: o.Customs.Amount}
	}
	if len(o.Notifications) > 0 {
		opts.Notifications = make([]domain.NotificationRecipient, len(o.Notifications))
		for i, n := range o.Notifications {
			opts.Notifications[i] = domain.NotificationRecipient{
				Address:     n.Address,
				OnDelivery:  n.OnDelivery,
				OnException: n.OnException,
				OnShipment:  n.OnShipment,
				OnTender:    n.OnTender,
				Format:      n.Format,
				Language:    n.Language,
				LocaleCode:  n.LocaleCode,
			}
		}
	}
	return opts
}

// --- Service result → HTTP response ---

func toRateResponse(r *domain.RateResponse) rateResponse {
	out := rateResponse{
		Success: r.Success,
		Message: r.Message,
		Rates:   make([]rateEstimateResponse, len(r.Rates)),
	}
	for i, est := range r.Rates {
		out.Rates[i] = rateEstimateResponse{
			Carrier:      est.Carrier,
			ServiceCode:  est.ServiceCode,
			ServiceName:  est.ServiceName,
			TotalPrice:   est.TotalPrice,
			Currency:     est.Currency,
			DeliveryDate: est.DeliveryDate,
		}
	}
	return out
}

func toCreateResponse(r *domain.ShipResponse) createShipmentResponse {
	out := createShipmentResponse{
		Success:        r.Success,
		Message:        r.Message,
		TrackingNumber: r.TrackingNumber,
		LabelEncoded:   r.LabelEncoded,
	}
	if r.TrackingNumber != "" {
		out.Links = &shipmentLinks{
			Self:     "/v1/shipments/" + r.TrackingNumber,
			Tracking: "/v1/tracking/" + r.TrackingNumber,
		}
	}
	return out
}

func toTrackingResponse(trackingNumber string, r *domain.TrackingResponse) trackingResponse {
	out := trackingResponse{
		Success:        r.Success,
		Message:        r.Message,
		TrackingNumber: trackingNumber,
		Events:         make([]shipmentEventResponse, len(r.ShipmentEvents)),
	}
	if r.TrackingNumber != "" {
		out.TrackingNumber = r.TrackingNumber
	}
	if r.Destination != (domain.Location{}) {
		dest := toLocationResponse(r.Destination)
		out.Destination = &dest
	}
	for i, ev := range r.ShipmentEvents {
		out.Events[i] = shipmentEventResponse{
			Name:     ev.Name,
			Time:     ev.Time.UTC(),
			Location: toLocationResponse(ev.Location),
		}
	}
	return out
}

func toLocationResponse(l domain.Location) locationResponse {
	return locationResponse{
		Name:        l.Name,
		Company:     l.Company,
		Address1:    l.Address1,
		City:        l.City,
		State:       l.State,
		PostalCode:  l.PostalCode,
		CountryCode: l.CountryCode,
	}
}
