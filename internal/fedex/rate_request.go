package fedex

import (
	"encoding/xml"

	"github.com/99minutos/fedex-carrier/internal/core/domain"
)

type rateRequest struct {
	XMLName xml.Name `xml:"http://fedex.com/ws/rate/v12 RateRequest"`
	credentials
	Version                version      `xml:"Version"`
	ReturnTransitAndCommit bool         `xml:"ReturnTransitAndCommit"`
	VariableOptions        string       `xml:"VariableOptions"`
	RequestedShipment      rateShipment `xml:"RequestedShipment"`
}

type rateShipment struct {
	ShipTimestamp             string                `xml:"ShipTimestamp"`
	DropoffType               string                `xml:"DropoffType"`
	PackagingType             string                `xml:"PackagingType"`
	Shipper                   party                 `xml:"Shipper"`
	Recipient                 party                 `xml:"Recipient"`
	Origin                    *party                `xml:"Origin"`
	RateRequestTypes          string                `xml:"RateRequestTypes"`
	PackageCount              int                   `xml:"PackageCount"`
	RequestedPackageLineItems []ratePackageLineItem `xml:"RequestedPackageLineItems"`
}

type ratePackageLineItem struct {
	SequenceNumber           int                    `xml:"SequenceNumber"`
	GroupPackageCount        int                    `xml:"GroupPackageCount"`
	Weight                   Weight                 `xml:"Weight"`
	SpecialServicesRequested packageSpecialServices `xml:"SpecialServicesRequested"`
	DangerousGoodsDetail     *dangerousGoodsDetail  `xml:"DangerousGoodsDetail"`
	Containers               *containers            `xml:"Containers"`
}

type dangerousGoodsDetail struct {
	Regulation    string `xml:"Regulation"`
	Accessibility string `xml:"Accessibility"`
	Options       string `xml:"Options"`
	Containers    int    `xml:"Containers"`
}

type containers struct {
	PackingType   string `xml:"PackingType"`
	ContainerType string `xml:"ContainerType"`
}

// Rate renders a RateRequest. Weights follow the origin country's unit system.
func (b requestBuilder) Rate(origin, destination domain.Location, packages []domain.Package, opts domain.Options) (string, error) {
	shipper, recipient, pickup := parties(origin, destination, opts)

	items := make([]ratePackageLineItem, 0, len(packages))
	for _, pkg := range packages {
		item := ratePackageLineItem{
			SequenceNumber:    1,
			GroupPackageCount: 1,
			Weight:            ConvertWeight(pkg.Weight, origin.CountryCode),
		}
		if domain.Enabled(opts.WithoutSignature) {
			withoutSignature(&item.SpecialServicesRequested)
		}
		if domain.Enabled(opts.DangerousGoods) {
			item.SpecialServicesRequested.SpecialServiceTypes = append(item.SpecialServicesRequested.SpecialServiceTypes, "DANGEROUS_GOODS")
			item.DangerousGoodsDetail = &dangerousGoodsDetail{
				Regulation:    "IATA",
				Accessibility: "ACCESSIBLE",
				Options:       "HAZARDOUS_MATERIALS",
				Containers:    1,
			}
			item.Containers = &containers{
				PackingType:   "ALL_PACKED_IN_ONE",
				ContainerType: "fiberboard box",
			}
		}
		items = append(items, item)
	}

	return render(rateRequest{
		credentials:            b.creds.block(),
		Version:                rateVersion,
		ReturnTransitAndCommit: domain.Enabled(opts.ReturnTransitAndCommit),
		VariableOptions:        "SATURDAY_DELIVERY",
		RequestedShipment: rateShipment{
			ShipTimestamp:             b.shipTimestamp(opts),
			DropoffType:               firstNonEmpty(opts.DropoffType, "REGULAR_PICKUP"),
			PackagingType:             firstNonEmpty(opts.PackageType, "YOUR_PACKAGING"),
			Shipper:                   shipper,
			Recipient:                 recipient,
			Origin:                    pickup,
			RateRequestTypes:          "ACCOUNT",
			PackageCount:              len(packages),
			RequestedPackageLineItems: items,
		},
	})
}
