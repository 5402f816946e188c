package fedex

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/99minutos/fedex-carrier/internal/core/domain"
)

const noRatesMessage = "No shipping rates could be found for the destination address"

func parseRateReply(body []byte, origin, destination domain.Location, packages []domain.Package) (*domain.RateResponse, error) {
	doc, err := readReply(body)
	if err != nil {
		return nil, err
	}
	outcome := classify(doc)

	var rates []domain.RateEstimate
	for _, detail := range doc.FindElements("//RateReplyDetails") {
		code := text(detail, "ServiceType")

		name := ServiceName(code)
		if saturdayApplied(detail.FindElements("AppliedOptions")) {
			name = SaturdayServiceName(code)
		}

		var price float64
		var currency string
		if rated := detail.FindElement("RatedShipmentDetails"); rated != nil {
			price, _ = strconv.ParseFloat(strings.TrimSpace(text(rated, "ShipmentRateDetail/TotalNetCharge/Amount")), 64)
			currency = NormalizeCurrency(text(rated, "ShipmentRateDetail/TotalNetCharge/Currency"))
		}

		delivery := text(detail, "DeliveryTimestamp")
		if code == "FEDEX_GROUND" {
			delivery = text(detail, "TransitTime")
		}

		rates = append(rates, domain.RateEstimate{
			Origin:       origin,
			Destination:  destination,
			Carrier:      Name,
			ServiceCode:  code,
			ServiceName:  name,
			TotalPrice:   price,
			Currency:     currency,
			Packages:     packages,
			DeliveryDate: delivery,
		})
	}

	if len(rates) == 0 {
		outcome.Success = false
		if outcome.Message == "" {
			outcome.Message = noRatesMessage
		}
	}

	return &domain.RateResponse{
		Response: domain.Response{Success: outcome.Success, Message: outcome.Message},
		Rates:    rates,
	}, nil
}

func saturdayApplied(options []*etree.Element) bool {
	for _, o := range options {
		if o.Text() == "SATURDAY_DELIVERY" {
			return true
		}
	}
	return false
}
