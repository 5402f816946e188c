package fedex

import (
	"encoding/xml"

	"github.com/99minutos/fedex-carrier/internal/core/domain"
)

type processShipmentRequest struct {
	XMLName xml.Name `xml:"http://fedex.com/ws/ship/v12 ProcessShipmentRequest"`
	credentials
	Version           version      `xml:"Version"`
	RequestedShipment shipShipment `xml:"RequestedShipment"`
}

type shipShipment struct {
	ShipTimestamp             string                    `xml:"ShipTimestamp"`
	DropoffType               string                    `xml:"DropoffType"`
	ServiceType               string                    `xml:"ServiceType"`
	PackagingType             string                    `xml:"PackagingType"`
	Shipper                   party                     `xml:"Shipper"`
	Recipient                 party                     `xml:"Recipient"`
	Origin                    *party                    `xml:"Origin"`
	ShippingChargesPayment    payment                   `xml:"ShippingChargesPayment"`
	CustomsClearanceDetail    *customsClearanceDetail   `xml:"CustomsClearanceDetail"`
	LabelSpecification        labelSpecification        `xml:"LabelSpecification"`
	RateRequestTypes          string                    `xml:"RateRequestTypes"`
	PackageCount              int                       `xml:"PackageCount"`
	RequestedPackageLineItems []shipPackageLineItem     `xml:"RequestedPackageLineItems"`
	SpecialServicesRequested  []shipmentSpecialServices `xml:"SpecialServicesRequested"`
}

type payment struct {
	PaymentType string `xml:"PaymentType"`
	Payor       payor  `xml:"Payor"`
}

type payor struct {
	ResponsibleParty responsibleParty `xml:"ResponsibleParty"`
}

type responsibleParty struct {
	AccountNumber string `xml:"AccountNumber"`
	Contact       string `xml:"Contact"`
}

func senderPays(account string) payment {
	return payment{
		PaymentType: PaymentTypes["sender"],
		Payor:       payor{ResponsibleParty: responsibleParty{AccountNumber: account}},
	}
}

type money struct {
	Currency string `xml:"Currency"`
	Amount   string `xml:"Amount"`
}

type customsClearanceDetail struct {
	ImporterOfRecord  party     `xml:"ImporterOfRecord"`
	DutiesPayment     payment   `xml:"DutiesPayment"`
	DocumentContent   string    `xml:"DocumentContent"`
	CustomsValue      money     `xml:"CustomsValue"`
	CommercialInvoice string    `xml:"CommercialInvoice"`
	Commodities       commodity `xml:"Commodities"`
}

type commodity struct {
	Name                 string `xml:"Name"`
	NumberOfPieces       string `xml:"NumberOfPieces"`
	Description          string `xml:"Description"`
	CountryOfManufacture string `xml:"CountryOfManufacture"`
	Weight               Weight `xml:"Weight"`
	Quantity             string `xml:"Quantity"`
	QuantityUnits        string `xml:"QuantityUnits"`
	UnitPrice            money  `xml:"UnitPrice"`
	CustomsValue         money  `xml:"CustomsValue"`
}

type labelSpecification struct {
	LabelFormatType string `xml:"LabelFormatType"`
	ImageType       string `xml:"ImageType"`
	LabelStockType  string `xml:"LabelStockType"`
}

var defaultLabel = labelSpecification{
	LabelFormatType: "COMMON2D",
	ImageType:       "PDF",
	LabelStockType:  "PAPER_7X4.75",
}

type shipPackageLineItem struct {
	SequenceNumber           int                    `xml:"SequenceNumber"`
	Weight                   Weight                 `xml:"Weight"`
	SpecialServicesRequested packageSpecialServices `xml:"SpecialServicesRequested"`
}

type shipmentSpecialServices struct {
	SpecialServiceTypes     []string                 `xml:"SpecialServiceTypes"`
	ReturnShipmentDetail    *returnShipmentDetail    `xml:"ReturnShipmentDetail"`
	EmailNotificationDetail *emailNotificationDetail `xml:"EmailNotificationDetail"`
}

type returnShipmentDetail struct {
	ReturnType string `xml:"ReturnType"`
}

type emailNotificationDetail struct {
	PersonalMessage string           `xml:"PersonalMessage"`
	Recipients      []emailRecipient `xml:"Recipients"`
	AggregationType string           `xml:"EMailNotificationAggregationType,omitempty"`
}

type emailRecipient struct {
	EmailAddress                string             `xml:"EmailAddress"`
	NotificationEventsRequested notificationEvents `xml:"NotificationEventsRequested"`
	Format                      string             `xml:"Format"`
	Localization                localization       `xml:"Localization"`
}

type notificationEvents struct {
	EmailNotificationEventType emailEventTypes `xml:"EmailNotificationEventType"`
}

type flag struct{}

type emailEventTypes struct {
	OnDelivery  *flag `xml:"ON_DELIVERY"`
	OnException *flag `xml:"ON_EXCEPTION"`
	OnShipment  *flag `xml:"ON_SHIPMENT"`
	OnTender    *flag `xml:"ON_TENDER"`
}

type localization struct {
	Language   string `xml:"Language"`
	LocaleCode string `xml:"LocaleCode,omitempty"`
}

const defaultShipServiceType = "GROUND_HOME_DELIVERY"

// shipServiceType is the service a ProcessShipmentRequest is sent for.
func shipServiceType(opts domain.Options) string {
	return firstNonEmpty(opts.ServiceType, defaultShipServiceType)
}

// Ship renders a ProcessShipmentRequest. Dangerous goods and dimensions are
// deliberately not part of the shipment line items.
func (b requestBuilder) Ship(origin, destination domain.Location, packages []domain.Package, opts domain.Options) (string, error) {
	shipper, recipient, pickup := parties(origin, destination, opts)

	var totalWeight float64
	items := make([]shipPackageLineItem, 0, len(packages))
	for _, pkg := range packages {
		w := ConvertWeight(pkg.Weight, origin.CountryCode)
		totalWeight += float64(w.Value)

		item := shipPackageLineItem{SequenceNumber: 1, Weight: w}
		if domain.Enabled(opts.WithoutSignature) {
			withoutSignature(&item.SpecialServicesRequested)
		}
		items = append(items, item)
	}

	shipment := shipShipment{
		ShipTimestamp:             b.shipTimestamp(opts),
		DropoffType:               firstNonEmpty(opts.DropoffType, "REGULAR_PICKUP"),
		ServiceType:               shipServiceType(opts),
		PackagingType:             firstNonEmpty(opts.PackageType, "YOUR_PACKAGING"),
		Shipper:                   shipper,
		Recipient:                 recipient,
		Origin:                    pickup,
		ShippingChargesPayment:    senderPays(b.creds.AccountNumber),
		LabelSpecification:        defaultLabel,
		RateRequestTypes:          "ACCOUNT",
		PackageCount:              len(packages),
		RequestedPackageLineItems: items,
	}

	if opts.Customs != nil {
		shipment.CustomsClearanceDetail = b.customs(destination, opts.Customs, weightUnits(origin.CountryCode), totalWeight)
	}
	if domain.Enabled(opts.SaturdayDelivery) || domain.Enabled(opts.ReturnShipment) {
		var services shipmentSpecialServices
		if domain.Enabled(opts.SaturdayDelivery) {
			services.SpecialServiceTypes = append(services.SpecialServiceTypes, "SATURDAY_DELIVERY")
		}
		if domain.Enabled(opts.ReturnShipment) {
			services.SpecialServiceTypes = append(services.SpecialServiceTypes, "RETURN_SHIPMENT")
			services.ReturnShipmentDetail = &returnShipmentDetail{ReturnType: "PRINT_RETURN_LABEL"}
		}
		shipment.SpecialServicesRequested = append(shipment.SpecialServicesRequested, services)
	}
	if len(opts.Notifications) > 0 {
		shipment.SpecialServicesRequested = append(shipment.SpecialServicesRequested, shipmentSpecialServices{
			SpecialServiceTypes:     []string{"EMAIL_NOTIFICATION"},
			EmailNotificationDetail: emailNotifications(opts.Notifications, opts.NotificationAggregationType),
		})
	}

	return render(processShipmentRequest{
		credentials:       b.creds.block(),
		Version:           shipVersion,
		RequestedShipment: shipment,
	})
}

func (b requestBuilder) customs(destination domain.Location, c *domain.Customs, units string, totalWeight float64) *customsClearanceDetail {
	value := money{Currency: c.Currency, Amount: formatDecimal(c.Amount)}
	return &customsClearanceDetail{
		ImporterOfRecord: newParty(destination),
		DutiesPayment:    senderPays(b.creds.AccountNumber),
		DocumentContent:  "DOCUMENTS_ONLY",
		CustomsValue:     value,
		Commodities: commodity{
			Name:                 "Electronics",
			NumberOfPieces:       "1",
			Description:          "Bike Wheel",
			CountryOfManufacture: "US",
			Weight:               Weight{Units: units, Value: decimal(totalWeight)},
			Quantity:             "1",
			QuantityUnits:        "EA",
			UnitPrice:            money{Currency: "USD", Amount: "10.00"},
			CustomsValue:         value,
		},
	}
}

func emailNotifications(recipients []domain.NotificationRecipient, aggregation string) *emailNotificationDetail {
	detail := &emailNotificationDetail{AggregationType: aggregation}
	for _, r := range recipients {
		var events emailEventTypes
		if r.OnDelivery {
			events.OnDelivery = &flag{}
		}
		if r.OnException {
			events.OnException = &flag{}
		}
		if r.OnShipment {
			events.OnShipment = &flag{}
		}
		if r.OnTender {
			events.OnTender = &flag{}
		}
		detail.Recipients = append(detail.Recipients, emailRecipient{
			EmailAddress:                r.Address,
			NotificationEventsRequested: notificationEvents{EmailNotificationEventType: events},
			Format:                      firstNonEmpty(r.Format, "HTML"),
			Localization: localization{
				Language:   firstNonEmpty(r.Language, "EN"),
				LocaleCode: r.LocaleCode,
			},
		})
	}
	return detail
}
