package fedex

import (
	"strconv"
	"strings"
)

const poundsPerKilogram = 2.2

// Countries that still weigh parcels in pounds.
var imperialCountries = map[string]struct{}{
	"US": {},
	"LR": {},
	"MM": {},
}

// IsImperial reports whether shipments from countryCode are measured in pounds.
func IsImperial(countryCode string) bool {
	_, ok := imperialCountries[strings.ToUpper(countryCode)]
	return ok
}

// Weight is the wire form of a package weight.
type Weight struct {
	Units string  `xml:"Units"`
	Value decimal `xml:"Value"`
}

// ConvertWeight expresses a weight given in pounds in the unit system of the
// origin country.
func ConvertWeight(pounds float64, originCountry string) Weight {
	if IsImperial(originCountry) {
		return Weight{Units: "LB", Value: decimal(pounds)}
	}
	return Weight{Units: "KG", Value: decimal(pounds / poundsPerKilogram)}
}

func weightUnits(originCountry string) string {
	if IsImperial(originCountry) {
		return "LB"
	}
	return "KG"
}

// decimal renders floats with at least one fractional digit (5 -> "5.0").
type decimal float64

func (d decimal) MarshalText() ([]byte, error) {
	return []byte(formatDecimal(float64(d))), nil
}

func formatDecimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
