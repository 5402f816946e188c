package fedex

import (
	"strings"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/99minutos/fedex-carrier/internal/core/domain"
)

var fixedNow = time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)

func testBuilder() requestBuilder {
	return requestBuilder{
		creds: Credentials{Key: "devkey", Password: "secret", AccountNumber: "510087000", MeterNumber: "118000000"},
		now:   func() time.Time { return fixedNow },
	}
}

var (
	beverlyHills = domain.Location{
		Name:        "Alice Shipper",
		Phone:       "3105551234",
		Address1:    "455 N Rexford Dr",
		Address2:    "3rd Floor",
		City:        "Beverly Hills",
		State:       "CA",
		PostalCode:  "90210",
		CountryCode: "US",
		Commercial:  true,
	}
	newYork = domain.Location{
		Name:        "Bob Recipient",
		Company:     "Acme",
		Phone:       "2125550000",
		Address1:    "780 3rd Avenue",
		City:        "New York",
		State:       "NY",
		PostalCode:  "10017",
		CountryCode: "US",
	}
	ottawa = domain.Location{
		Name:        "Carol Sender",
		Phone:       "6135550000",
		Address1:    "110 Laurier Ave W",
		City:        "Ottawa",
		State:       "ON",
		PostalCode:  "K1P1J1",
		CountryCode: "CA",
	}
)

func parseRequest(t *testing.T, doc string) *etree.Element {
	t.Helper()
	d := etree.NewDocument()
	require.NoError(t, d.ReadFromString(doc))
	require.NotNil(t, d.Root())
	return d.Root()
}

func TestRate_DefaultDomesticPackage(t *testing.T) {
	req, err := testBuilder().Rate(beverlyHills, newYork, []domain.Package{{Weight: 5}}, domain.Options{})
	require.NoError(t, err)

	assert.Contains(t, req, `<RateRequest xmlns="`+rateNamespace+`">`)
	assert.Contains(t, req, `<Weight><Units>LB</Units><Value>5.0</Value></Weight>`)
	assert.Contains(t, req, `<DropoffType>REGULAR_PICKUP</DropoffType>`)
	assert.Contains(t, req, `<PackagingType>YOUR_PACKAGING</PackagingType>`)
	assert.Contains(t, req, `<ShipTimestamp>2024-05-01T10:30:00+00:00</ShipTimestamp>`)
	assert.Contains(t, req, `<ReturnTransitAndCommit>false</ReturnTransitAndCommit>`)
	assert.Contains(t, req, `<VariableOptions>SATURDAY_DELIVERY</VariableOptions>`)
	assert.Contains(t, req, `<RateRequestTypes>ACCOUNT</RateRequestTypes><PackageCount>1</PackageCount>`)
	assert.Contains(t, req, `<Version><ServiceId>crs</ServiceId><Major>12</Major><Intermediate>0</Intermediate><Minor>0</Minor></Version>`)
	assert.Contains(t, req, `<SequenceNumber>1</SequenceNumber><GroupPackageCount>1</GroupPackageCount>`)
	assert.Contains(t, req, `<SpecialServicesRequested></SpecialServicesRequested>`)
	assert.NotContains(t, req, "DangerousGoodsDetail")
	assert.NotContains(t, req, "DANGEROUS_GOODS")
	assert.NotContains(t, req, "<Origin>")
	assert.NotContains(t, req, "\n")

	root := parseRequest(t, req)
	assert.Equal(t, "RateRequest", root.Tag)
	assert.Equal(t, "devkey", text(root, "WebAuthenticationDetail/UserCredential/Key"))
	assert.Equal(t, "secret", text(root, "WebAuthenticationDetail/UserCredential/Password"))
	assert.Equal(t, "510087000", text(root, "ClientDetail/AccountNumber"))
	assert.Equal(t, "118000000", text(root, "ClientDetail/MeterNumber"))
	assert.Equal(t, CustomerTransactionID, text(root, "TransactionDetail/CustomerTransactionId"))
}

func TestRate_CredentialBlockLeadsDocument(t *testing.T) {
	req, err := testBuilder().Rate(beverlyHills, newYork, nil, domain.Options{})
	require.NoError(t, err)

	children := parseRequest(t, req).ChildElements()
	require.GreaterOrEqual(t, len(children), 4)
	assert.Equal(t, "WebAuthenticationDetail", children[0].Tag)
	assert.Equal(t, "ClientDetail", children[1].Tag)
	assert.Equal(t, "TransactionDetail", children[2].Tag)
	assert.Equal(t, "Version", children[3].Tag)
}

func TestRate_EmptyPackagesStillWellFormed(t *testing.T) {
	req, err := testBuilder().Rate(beverlyHills, newYork, nil, domain.Options{})
	require.NoError(t, err)

	root := parseRequest(t, req)
	assert.Equal(t, "0", text(root, "RequestedShipment/PackageCount"))
	assert.Nil(t, root.FindElement("RequestedShipment/RequestedPackageLineItems"))
}

func TestRate_MetricOriginUsesKilograms(t *testing.T) {
	req, err := testBuilder().Rate(ottawa, newYork, []domain.Package{{Weight: 5}, {Weight: 5}}, domain.Options{})
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(req, `<Weight><Units>KG</Units><Value>2.2727272727272725</Value></Weight>`))
	assert.Contains(t, req, `<PackageCount>2</PackageCount>`)
	assert.NotContains(t, req, "<Units>LB</Units>")
}

func TestRate_SpecialServices(t *testing.T) {
	req, err := testBuilder().Rate(beverlyHills, newYork, []domain.Package{{Weight: 2}}, domain.Options{
		WithoutSignature: domain.Bool(true),
		DangerousGoods:   domain.Bool(true),
	})
	require.NoError(t, err)

	root := parseRequest(t, req)
	item := root.FindElement("RequestedShipment/RequestedPackageLineItems")
	require.NotNil(t, item)

	var types []string
	for _, e := range item.FindElements("SpecialServicesRequested/SpecialServiceTypes") {
		types = append(types, e.Text())
	}
	assert.Equal(t, []string{"SIGNATURE_OPTION", "DANGEROUS_GOODS"}, types)
	assert.Equal(t, "NO_SIGNATURE_REQUIRED", text(item, "SpecialServicesRequested/SignatureOptionDetail/OptionType"))
	assert.Equal(t, "IATA", text(item, "DangerousGoodsDetail/Regulation"))
	assert.Equal(t, "ACCESSIBLE", text(item, "DangerousGoodsDetail/Accessibility"))
	assert.Equal(t, "HAZARDOUS_MATERIALS", text(item, "DangerousGoodsDetail/Options"))
	assert.Equal(t, "1", text(item, "DangerousGoodsDetail/Containers"))
	assert.Equal(t, "ALL_PACKED_IN_ONE", text(item, "Containers/PackingType"))
	assert.Equal(t, "fiberboard box", text(item, "Containers/ContainerType"))
}

func TestRate_OnlySignatureOption(t *testing.T) {
	req, err := testBuilder().Rate(beverlyHills, newYork, []domain.Package{{Weight: 2}}, domain.Options{WithoutSignature: domain.Bool(true)})
	require.NoError(t, err)

	assert.Contains(t, req, `<SpecialServicesRequested><SpecialServiceTypes>SIGNATURE_OPTION</SpecialServiceTypes><SignatureOptionDetail><OptionType>NO_SIGNATURE_REQUIRED</OptionType></SignatureOptionDetail></SpecialServicesRequested>`)
	assert.NotContains(t, req, "DangerousGoodsDetail")
}

func TestRate_Locations(t *testing.T) {
	shipper := ottawa
	req, err := testBuilder().Rate(beverlyHills, newYork, []domain.Package{{Weight: 1}}, domain.Options{
		Shipper:     &shipper,
		DropoffType: "DROP_BOX",
		PackageType: "FEDEX_BOX",
	})
	require.NoError(t, err)

	root := parseRequest(t, req)
	assert.Equal(t, "Ottawa", text(root, "RequestedShipment/Shipper/Address/City"))
	assert.Equal(t, "New York", text(root, "RequestedShipment/Recipient/Address/City"))
	assert.Equal(t, "Beverly Hills", text(root, "RequestedShipment/Origin/Address/City"))
	assert.Equal(t, "DROP_BOX", text(root, "RequestedShipment/DropoffType"))
	assert.Equal(t, "FEDEX_BOX", text(root, "RequestedShipment/PackagingType"))

	// origin is commercial and has two street lines
	origin := root.FindElement("RequestedShipment/Origin")
	assert.Len(t, origin.FindElements("Address/StreetLines"), 2)
	assert.Nil(t, origin.FindElement("Address/Residential"))
	assert.Nil(t, origin.FindElement("Contact/CompanyName"))

	recipient := root.FindElement("RequestedShipment/Recipient")
	assert.Equal(t, "true", text(recipient, "Address/Residential"))
	assert.Equal(t, "Acme", text(recipient, "Contact/CompanyName"))
	assert.Len(t, recipient.FindElements("Address/StreetLines"), 1)
}

func TestRate_SameShipperAsOriginHasNoOriginBlock(t *testing.T) {
	shipper := beverlyHills
	req, err := testBuilder().Rate(beverlyHills, newYork, []domain.Package{{Weight: 1}}, domain.Options{Shipper: &shipper})
	require.NoError(t, err)
	assert.NotContains(t, req, "<Origin>")
}

func TestShip_Defaults(t *testing.T) {
	req, err := testBuilder().Ship(beverlyHills, newYork, []domain.Package{{Weight: 5}}, domain.Options{
		DangerousGoods: domain.Bool(true),
	})
	require.NoError(t, err)

	assert.Contains(t, req, `<ProcessShipmentRequest xmlns="`+shipNamespace+`">`)
	assert.Contains(t, req, `<Version><ServiceId>ship</ServiceId><Major>12</Major><Intermediate>0</Intermediate><Minor>0</Minor></Version>`)
	assert.Contains(t, req, `<ServiceType>GROUND_HOME_DELIVERY</ServiceType>`)
	assert.Contains(t, req, `<PackagingType>YOUR_PACKAGING</PackagingType>`)
	assert.Contains(t, req, `<ShippingChargesPayment><PaymentType>SENDER</PaymentType><Payor><ResponsibleParty><AccountNumber>510087000</AccountNumber><Contact></Contact></ResponsibleParty></Payor></ShippingChargesPayment>`)
	assert.Contains(t, req, `<LabelSpecification><LabelFormatType>COMMON2D</LabelFormatType><ImageType>PDF</ImageType><LabelStockType>PAPER_7X4.75</LabelStockType></LabelSpecification>`)
	assert.Contains(t, req, `<RequestedPackageLineItems><SequenceNumber>1</SequenceNumber><Weight><Units>LB</Units><Value>5.0</Value></Weight><SpecialServicesRequested></SpecialServicesRequested></RequestedPackageLineItems>`)
	assert.NotContains(t, req, "DANGEROUS_GOODS")
	assert.NotContains(t, req, "GroupPackageCount")
	assert.NotContains(t, req, "CustomsClearanceDetail")
	assert.NotContains(t, req, "EMAIL_NOTIFICATION")
	assert.NotContains(t, req, "SATURDAY_DELIVERY")
}

func TestShip_Customs(t *testing.T) {
	req, err := testBuilder().Ship(beverlyHills, ottawa, []domain.Package{{Weight: 11}, {Weight: 22}}, domain.Options{
		ServiceType: "INTERNATIONAL_PRIORITY",
		Customs:     &domain.Customs{Currency: "CAD", Amount: 100},
	})
	require.NoError(t, err)

	root := parseRequest(t, req)
	customs := root.FindElement("RequestedShipment/CustomsClearanceDetail")
	require.NotNil(t, customs)

	assert.Equal(t, "INTERNATIONAL_PRIORITY", text(root, "RequestedShipment/ServiceType"))
	assert.Equal(t, "Ottawa", text(customs, "ImporterOfRecord/Address/City"))
	assert.Equal(t, "SENDER", text(customs, "DutiesPayment/PaymentType"))
	assert.Equal(t, "510087000", text(customs, "DutiesPayment/Payor/ResponsibleParty/AccountNumber"))
	assert.Equal(t, "DOCUMENTS_ONLY", text(customs, "DocumentContent"))
	assert.Equal(t, "CAD", text(customs, "CustomsValue/Currency"))
	assert.Equal(t, "100.0", text(customs, "CustomsValue/Amount"))
	assert.Equal(t, "Electronics", text(customs, "Commodities/Name"))
	assert.Equal(t, "Bike Wheel", text(customs, "Commodities/Description"))
	assert.Equal(t, "US", text(customs, "Commodities/CountryOfManufacture"))
	assert.Equal(t, "LB", text(customs, "Commodities/Weight/Units"))
	assert.Equal(t, "33.0", text(customs, "Commodities/Weight/Value"))
	assert.Equal(t, "USD", text(customs, "Commodities/UnitPrice/Currency"))
	assert.Equal(t, "10.00", text(customs, "Commodities/UnitPrice/Amount"))
	assert.Equal(t, "100.0", text(customs, "Commodities/CustomsValue/Amount"))

	// customs precedes the label specification
	assert.Less(t, strings.Index(req, "<CustomsClearanceDetail>"), strings.Index(req, "<LabelSpecification>"))
}

func TestShip_SaturdayAndReturn(t *testing.T) {
	req, err := testBuilder().Ship(beverlyHills, newYork, []domain.Package{{Weight: 1}}, domain.Options{
		SaturdayDelivery: domain.Bool(true),
		ReturnShipment:   domain.Bool(true),
		WithoutSignature: domain.Bool(true),
	})
	require.NoError(t, err)

	assert.Contains(t, req, `<SpecialServicesRequested><SpecialServiceTypes>SATURDAY_DELIVERY</SpecialServiceTypes><SpecialServiceTypes>RETURN_SHIPMENT</SpecialServiceTypes><ReturnShipmentDetail><ReturnType>PRINT_RETURN_LABEL</ReturnType></ReturnShipmentDetail></SpecialServicesRequested>`)
	assert.Contains(t, req, `<SpecialServiceTypes>SIGNATURE_OPTION</SpecialServiceTypes>`)
}

func TestShip_OnlySaturday(t *testing.T) {
	req, err := testBuilder().Ship(beverlyHills, newYork, []domain.Package{{Weight: 1}}, domain.Options{SaturdayDelivery: domain.Bool(true)})
	require.NoError(t, err)

	assert.Contains(t, req, `<SpecialServicesRequested><SpecialServiceTypes>SATURDAY_DELIVERY</SpecialServiceTypes></SpecialServicesRequested>`)
	assert.NotContains(t, req, "ReturnShipmentDetail")
}

func TestShip_EmailNotifications(t *testing.T) {
	req, err := testBuilder().Ship(beverlyHills, newYork, []domain.Package{{Weight: 1}}, domain.Options{
		Notifications: []domain.NotificationRecipient{
			{Address: "ops@example.com", OnDelivery: true, OnException: true},
			{Address: "fr@example.com", OnShipment: true, OnTender: true, Format: "TEXT", Language: "FR", LocaleCode: "CA"},
		},
		NotificationAggregationType: "PER_SHIPMENT",
	})
	require.NoError(t, err)

	root := parseRequest(t, req)
	var detail *etree.Element
	for _, s := range root.FindElements("RequestedShipment/SpecialServicesRequested") {
		if text(s, "SpecialServiceTypes") == "EMAIL_NOTIFICATION" {
			detail = s.FindElement("EmailNotificationDetail")
		}
	}
	require.NotNil(t, detail)

	recipients := detail.FindElements("Recipients")
	require.Len(t, recipients, 2)

	assert.Equal(t, "ops@example.com", text(recipients[0], "EmailAddress"))
	assert.NotNil(t, recipients[0].FindElement("NotificationEventsRequested/EmailNotificationEventType/ON_DELIVERY"))
	assert.NotNil(t, recipients[0].FindElement("NotificationEventsRequested/EmailNotificationEventType/ON_EXCEPTION"))
	assert.Nil(t, recipients[0].FindElement("NotificationEventsRequested/EmailNotificationEventType/ON_SHIPMENT"))
	assert.Equal(t, "HTML", text(recipients[0], "Format"))
	assert.Equal(t, "EN", text(recipients[0], "Localization/Language"))
	assert.Nil(t, recipients[0].FindElement("Localization/LocaleCode"))

	assert.NotNil(t, recipients[1].FindElement("NotificationEventsRequested/EmailNotificationEventType/ON_TENDER"))
	assert.Equal(t, "TEXT", text(recipients[1], "Format"))
	assert.Equal(t, "FR", text(recipients[1], "Localization/Language"))
	assert.Equal(t, "CA", text(recipients[1], "Localization/LocaleCode"))

	assert.Equal(t, "PER_SHIPMENT", text(detail, "EMailNotificationAggregationType"))
	assert.NotNil(t, detail.FindElement("PersonalMessage"))
}

func TestDelete(t *testing.T) {
	req, err := testBuilder().Delete("794797892", "EXPRESS", domain.Options{})
	require.NoError(t, err)

	assert.Contains(t, req, `<DeleteShipmentRequest xmlns="`+shipNamespace+`">`)
	assert.Contains(t, req, `<TrackingId><TrackingIdType>EXPRESS</TrackingIdType><TrackingNumber>794797892</TrackingNumber></TrackingId>`)
	assert.Contains(t, req, `<DeletionControl>DELETE_ALL_PACKAGES</DeletionControl>`)
	assert.NotContains(t, req, "ShipTimestamp")

	req, err = testBuilder().Delete("794797892", "GROUND", domain.Options{
		ShipTimestamp: fixedNow,
		DeletionType:  "DELETE_ONE_PACKAGE",
	})
	require.NoError(t, err)
	assert.Contains(t, req, `</Version><ShipTimestamp>2024-05-01T10:30:00+00:00</ShipTimestamp><TrackingId>`)
	assert.Contains(t, req, `<DeletionControl>DELETE_ONE_PACKAGE</DeletionControl>`)
}

func TestDelete_EmptyShipmentTypeIsExpress(t *testing.T) {
	req, err := testBuilder().Delete("794797892", "", domain.Options{})
	require.NoError(t, err)
	assert.Contains(t, req, `<TrackingIdType>EXPRESS</TrackingIdType>`)
}

func TestTrack(t *testing.T) {
	req, err := testBuilder().Track("123456789012", domain.Options{})
	require.NoError(t, err)

	assert.Contains(t, req, `<TrackRequest xmlns="`+trackNamespace+`">`)
	assert.Contains(t, req, `<Version><ServiceId>trck</ServiceId><Major>3</Major><Intermediate>0</Intermediate><Minor>0</Minor></Version>`)
	assert.Contains(t, req, `<PackageIdentifier><Value>123456789012</Value><Type>TRACKING_NUMBER_OR_DOORTAG</Type></PackageIdentifier>`)
	assert.Contains(t, req, `<IncludeDetailedScans>1</IncludeDetailedScans>`)
	assert.NotContains(t, req, "ShipDateRange")

	req, err = testBuilder().Track("RMA-1", domain.Options{
		PackageIdentifierType: "rma",
		ShipDateRangeBegin:    time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		ShipDateRangeEnd:      time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Contains(t, req, `<Type>RMA</Type>`)
	assert.Contains(t, req, `<ShipDateRangeBegin>2024-04-01</ShipDateRangeBegin><ShipDateRangeEnd>2024-04-30</ShipDateRangeEnd>`)
}
