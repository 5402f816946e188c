package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type locationRequest struct {
	Name        string `json:"name"`
	Company     string `json:"company"`
	Phone       string `json:"phone"`
	Address1    string `json:"address1"     validate:"required"`
	Address2    string `json:"address2"`
	City        string `json:"city"         validate:"required"`
	State       string `json:"state"`
	PostalCode  string `json:"postal_code"  validate:"required"`
	CountryCode string `json:"country_code" validate:"required,len=2"`
	Commercial  bool   `json:"commercial"`
}

type dimensionsRequest struct {
	Length float64 `json:"length" validate:"gt=0"`
	Width  float64 `json:"width"  validate:"gt=0"`
	Height float64 `json:"height" validate:"gt=0"`
}

type packageRequest struct {
	// Weight is expressed in pounds.
	Weight     float64            `json:"weight"     validate:"required,gt=0"`
	Dimensions *dimensionsRequest `json:"dimensions" validate:"omitempty"`
}

type customsRequest struct {
	Currency string  `json:"currency" validate:"required,len=3"`
	Amount   float64 `json:"amount"   validate:"gte=0"`
}

type notificationRequest struct {
	Address     string `json:"address"      validate:"required,email"`
	OnDelivery  bool   `json:"on_delivery"`
	OnException bool   `json:"on_exception"`
	OnShipment  bool   `json:"on_shipment"`
	OnTender    bool   `json:"on_tender"`
	Format      string `json:"format"       validate:"omitempty,oneof=HTML TEXT WIRELESS"`
	Language    string `json:"language"`
	LocaleCode  string `json:"locale_code"`
}

type optionsRequest struct {
	ServiceType                 string                `json:"service_type"`
	DropoffType                 string                `json:"dropoff_type"`
	PackageType                 string                `json:"packaging_type"`
	ShipDate                    time.Time             `json:"ship_date"`
	Shipper                     *locationRequest      `json:"shipper"       validate:"omitempty"`
	Customs                     *customsRequest       `json:"customs"       validate:"omitempty"`
	WithoutSignature            *bool                 `json:"without_signature"`
	DangerousGoods              *bool                 `json:"dangerous_goods"`
	SaturdayDelivery            *bool                 `json:"saturday_delivery"`
	ReturnShipment              *bool                 `json:"return_shipment"`
	ReturnTransitAndCommit      *bool                 `json:"return_transit_and_commit"`
	Notifications               []notificationRequest `json:"notifications" validate:"omitempty,dive"`
	NotificationAggregationType string                `json:"notification_aggregation_type"`
	Test                        *bool                 `json:"test"`
	LogXML                      *bool                 `json:"log_xml"`
}

type rateRequest struct {
	Carrier     string           `json:"carrier"`
	Origin      locationRequest  `json:"origin"      validate:"required"`
	Destination locationRequest  `json:"destination" validate:"required"`
	Packages    []packageRequest `json:"packages"    validate:"required,min=1,dive"`
	Options     optionsRequest   `json:"options"`
}

// createShipmentRequest.ClientID is only honoured for admins; clients always
// ship as themselves.
type createShipmentRequest struct {
	Carrier     string           `json:"carrier"`
	ClientID    string           `json:"client_id"`
	Origin      locationRequest  `json:"origin"      validate:"required"`
	Destination locationRequest  `json:"destination" validate:"required"`
	Packages    []packageRequest `json:"packages"    validate:"required,min=1,dive"`
	Options     optionsRequest   `json:"options"`
}

type deleteShipmentQuery struct {
	Carrier       string `query:"carrier"`
	ShipmentType  string `query:"shipment_type"  validate:"omitempty,oneof=EXPRESS GROUND"`
	DeletionType  string `query:"deletion_type"  validate:"omitempty,oneof=DELETE_ALL_PACKAGES DELETE_ONE_PACKAGE LEGACY"`
	ShipTimestamp string `query:"ship_timestamp"`
	Test          string `query:"test"           validate:"omitempty,boolean"`
	LogXML        string `query:"log_xml"        validate:"omitempty,boolean"`
}

type trackingQuery struct {
	Carrier               string `query:"carrier"`
	PackageIdentifierType string `query:"package_identifier_type"`
	Test                  string `query:"test"    validate:"omitempty,boolean"`
	LogXML                string `query:"log_xml" validate:"omitempty,boolean"`
}

// --- Response types ---

type locationResponse struct {
	Name        string `json:"name,omitempty"`
	Company     string `json:"company,omitempty"`
	Address1    string `json:"address1,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	PostalCode  string `json:"postal_code,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
}

type rateEstimateResponse struct {
	Carrier      string  `json:"carrier"`
	ServiceCode  string  `json:"service_code"`
	ServiceName  string  `json:"service_name"`
	TotalPrice   float64 `json:"total_price"`
	Currency     string  `json:"currency"`
	DeliveryDate string  `json:"delivery_date,omitempty"`
}

type rateResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Rates   []rateEstimateResponse `json:"rates"`
}

type shipmentLinks struct {
	Self     string `json:"self"`
	Tracking string `json:"tracking"`
}

type createShipmentResponse struct {
	Success        bool           `json:"success"`
	Message        string         `json:"message"`
	TrackingNumber string         `json:"tracking_number,omitempty"`
	LabelEncoded   string         `json:"label_encoded,omitempty"`
	Links          *shipmentLinks `json:"_links,omitempty"`
}

type deleteShipmentResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type shipmentEventResponse struct {
	Name     string           `json:"name"`
	Time     time.Time        `json:"time"`
	Location locationResponse `json:"location"`
}

type trackingResponse struct {
	Success        bool                    `json:"success"`
	Message        string                  `json:"message"`
	TrackingNumber string                  `json:"tracking_number"`
	Destination    *locationResponse       `json:"destination,omitempty"`
	Events         []shipmentEventResponse `json:"events"`
}

type acceptedResponse struct {
	Message        string `json:"message"`
	TrackingNumber string `json:"tracking_number"`
}
