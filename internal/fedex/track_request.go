package fedex

import (
	"encoding/xml"

	"github.com/99minutos/fedex-carrier/internal/core/domain"
)

type trackRequest struct {
	XMLName xml.Name `xml:"http://fedex.com/ws/track/v3 TrackRequest"`
	credentials
	Version              version           `xml:"Version"`
	PackageIdentifier    packageIdentifier `xml:"PackageIdentifier"`
	ShipDateRangeBegin   string            `xml:"ShipDateRangeBegin,omitempty"`
	ShipDateRangeEnd     string            `xml:"ShipDateRangeEnd,omitempty"`
	IncludeDetailedScans int               `xml:"IncludeDetailedScans"`
}

type packageIdentifier struct {
	Value string `xml:"Value"`
	Type  string `xml:"Type"`
}

// Track renders a TrackRequest asking for detailed scans. Unknown identifier
// kinds fall back to a plain tracking number lookup.
func (b requestBuilder) Track(trackingNumber string, opts domain.Options) (string, error) {
	req := trackRequest{
		credentials: b.creds.block(),
		Version:     trackVersion,
		PackageIdentifier: packageIdentifier{
			Value: trackingNumber,
			Type:  packageIdentifierType(opts.PackageIdentifierType),
		},
		IncludeDetailedScans: 1,
	}
	if !opts.ShipDateRangeBegin.IsZero() {
		req.ShipDateRangeBegin = opts.ShipDateRangeBegin.Format(dateLayout)
	}
	if !opts.ShipDateRangeEnd.IsZero() {
		req.ShipDateRangeEnd = opts.ShipDateRangeEnd.Format(dateLayout)
	}
	return render(req)
}
