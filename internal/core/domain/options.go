package domain

import "time"

// Customs carries the declared value of a cross-border shipment.
type Customs struct {
	Currency string  `json:"currency"`
	Amount   float64 `json:"amount"`
}

// NotificationRecipient is an e-mail address subscribed to shipment events.
type NotificationRecipient struct {
	Address     string `json:"address"`
	OnDelivery  bool   `json:"on_delivery"`
	OnException bool   `json:"on_exception"`
	OnShipment  bool   `json:"on_shipment"`
	OnTender    bool   `json:"on_tender"`
	Format      string `json:"format,omitempty"`      // HTML, TEXT or WIRELESS
	Language    string `json:"language,omitempty"`    // defaults to EN
	LocaleCode  string `json:"locale_code,omitempty"` // optional
}

// Options holds the recognised per-call settings of a shipping operation.
// Zero values mean "not set" so that a call can be merged over the adapter's
// defaults with Merge.
type Options struct {
	ServiceType string
	DropoffType string
	PackageType string
	ShipDate    time.Time

	// Shipper, when set and different from the origin, is emitted as the
	// shipper and the origin becomes a separate pickup location.
	Shipper *Location
	Customs *Customs

	// Switches. nil inherits the default; a call may set either value.
	WithoutSignature       *bool
	DangerousGoods         *bool
	SaturdayDelivery       *bool
	ReturnShipment         *bool
	ReturnTransitAndCommit *bool

	Notifications               []NotificationRecipient
	NotificationAggregationType string

	// Cancellation.
	ShipTimestamp time.Time
	DeletionType  string

	// Tracking.
	PackageIdentifierType string
	ShipDateRangeBegin    time.Time
	ShipDateRangeEnd      time.Time

	// Test selects the carrier's test endpoint. nil leaves the choice to the
	// operation's own default.
	Test   *bool
	LogXML *bool
}

// Bool returns a pointer to v, for the switches and Options.Test.
func Bool(v bool) *bool {
	return &v
}

// Enabled reports whether a switch is set and true.
func Enabled(b *bool) bool {
	return b != nil && *b
}

// TestMode resolves the Test flag, falling back to def when unset.
func (o Options) TestMode(def bool) bool {
	if o.Test == nil {
		return def
	}
	return *o.Test
}

// Merge returns a copy of o with every field set in over replacing the
// corresponding field of o. Neither receiver nor argument is modified.
func (o Options) Merge(over Options) Options {
	out := o

	mergeString(&out.ServiceType, over.ServiceType)
	mergeString(&out.DropoffType, over.DropoffType)
	mergeString(&out.PackageType, over.PackageType)
	mergeString(&out.NotificationAggregationType, over.NotificationAggregationType)
	mergeString(&out.DeletionType, over.DeletionType)
	mergeString(&out.PackageIdentifierType, over.PackageIdentifierType)

	mergeTime(&out.ShipDate, over.ShipDate)
	mergeTime(&out.ShipTimestamp, over.ShipTimestamp)
	mergeTime(&out.ShipDateRangeBegin, over.ShipDateRangeBegin)
	mergeTime(&out.ShipDateRangeEnd, over.ShipDateRangeEnd)

	if over.Shipper != nil {
		shipper := *over.Shipper
		out.Shipper = &shipper
	}
	if over.Customs != nil {
		customs := *over.Customs
		out.Customs = &customs
	}
	mergeBool(&out.Test, over.Test)
	mergeBool(&out.WithoutSignature, over.WithoutSignature)
	mergeBool(&out.DangerousGoods, over.DangerousGoods)
	mergeBool(&out.SaturdayDelivery, over.SaturdayDelivery)
	mergeBool(&out.ReturnShipment, over.ReturnShipment)
	mergeBool(&out.ReturnTransitAndCommit, over.ReturnTransitAndCommit)
	mergeBool(&out.LogXML, over.LogXML)
	if over.Notifications != nil {
		out.Notifications = append([]NotificationRecipient(nil), over.Notifications...)
	} else if o.Notifications != nil {
		out.Notifications = append([]NotificationRecipient(nil), o.Notifications...)
	}

	return out
}

func mergeString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// mergeBool copies v into a fresh pointer so the result never aliases a
// caller's switch.
func mergeBool(dst **bool, v *bool) {
	if v != nil {
		*dst = Bool(*v)
	} else if *dst != nil {
		*dst = Bool(**dst)
	}
}

func mergeTime(dst *time.Time, v time.Time) {
	if !v.IsZero() {
		*dst = v
	}
}
