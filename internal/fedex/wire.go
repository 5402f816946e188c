package fedex

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/99minutos/fedex-carrier/internal/core/domain"
)

const (
	rateNamespace  = "http://fedex.com/ws/rate/v12"
	shipNamespace  = "http://fedex.com/ws/ship/v12"
	trackNamespace = "http://fedex.com/ws/track/v3"

	timestampLayout = "2006-01-02T15:04:05-07:00"
	dateLayout      = "2006-01-02"
)

var (
	rateVersion  = version{ServiceID: "crs", Major: 12}
	shipVersion  = version{ServiceID: "ship", Major: 12}
	trackVersion = version{ServiceID: "trck", Major: 3}
)

type version struct {
	ServiceID    string `xml:"ServiceId"`
	Major        int    `xml:"Major"`
	Intermediate int    `xml:"Intermediate"`
	Minor        int    `xml:"Minor"`
}

type party struct {
	Contact contact `xml:"Contact"`
	Address address `xml:"Address"`
}

type contact struct {
	PersonName  string `xml:"PersonName,omitempty"`
	CompanyName string `xml:"CompanyName,omitempty"`
	PhoneNumber string `xml:"PhoneNumber"`
}

type address struct {
	StreetLines         []string `xml:"StreetLines"`
	City                string   `xml:"City"`
	StateOrProvinceCode string   `xml:"StateOrProvinceCode"`
	PostalCode          string   `xml:"PostalCode"`
	CountryCode         string   `xml:"CountryCode"`
	Residential         bool     `xml:"Residential,omitempty"`
}

func newParty(l domain.Location) party {
	lines := []string{l.Address1}
	if l.Address2 != "" {
		lines = append(lines, l.Address2)
	}
	return party{
		Contact: contact{
			PersonName:  l.Name,
			CompanyName: l.Company,
			PhoneNumber: l.Phone,
		},
		Address: address{
			StreetLines:         lines,
			City:                l.City,
			StateOrProvinceCode: l.State,
			PostalCode:          l.PostalCode,
			CountryCode:         l.CountryCode,
			Residential:         l.Residential(),
		},
	}
}

// parties resolves the Shipper, Recipient and optional Origin blocks. The
// origin is only emitted when a distinct shipper was supplied.
func parties(origin, destination domain.Location, opts domain.Options) (shipper, recipient party, pickup *party) {
	shipper = newParty(origin)
	if opts.Shipper != nil {
		shipper = newParty(*opts.Shipper)
		if *opts.Shipper != origin {
			p := newParty(origin)
			pickup = &p
		}
	}
	return shipper, newParty(destination), pickup
}

type packageSpecialServices struct {
	SpecialServiceTypes   []string               `xml:"SpecialServiceTypes"`
	SignatureOptionDetail *signatureOptionDetail `xml:"SignatureOptionDetail"`
}

type signatureOptionDetail struct {
	OptionType string `xml:"OptionType"`
}

func withoutSignature(s *packageSpecialServices) {
	s.SpecialServiceTypes = append(s.SpecialServiceTypes, "SIGNATURE_OPTION")
	s.SignatureOptionDetail = &signatureOptionDetail{OptionType: "NO_SIGNATURE_REQUIRED"}
}

// requestBuilder renders request documents for one set of credentials.
type requestBuilder struct {
	creds Credentials
	now   func() time.Time
}

func (b requestBuilder) shipTimestamp(opts domain.Options) string {
	if !opts.ShipDate.IsZero() {
		return opts.ShipDate.Format(timestampLayout)
	}
	return b.now().Format(timestampLayout)
}

func render(doc any) (string, error) {
	out, err := xml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("fedex: encode request: %w", err)
	}
	return `<?xml version="1.0" encoding="UTF-8"?>` + string(out), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
