package fedex

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CarrierCodes maps operating companies to their wire codes.
var CarrierCodes = map[string]string{
	"fedex_ground":  "FDXG",
	"fedex_express": "FDXE",
}

// ServiceTypes maps service codes to display names.
var ServiceTypes = map[string]string{
	"PRIORITY_OVERNIGHT":                       "FedEx Priority Overnight",
	"PRIORITY_OVERNIGHT_SATURDAY_DELIVERY":     "FedEx Priority Overnight Saturday Delivery",
	"FEDEX_2_DAY":                              "FedEx 2 Day",
	"FEDEX_2_DAY_SATURDAY_DELIVERY":            "FedEx 2 Day Saturday Delivery",
	"STANDARD_OVERNIGHT":                       "FedEx Standard Overnight",
	"FIRST_OVERNIGHT":                          "FedEx First Overnight",
	"FIRST_OVERNIGHT_SATURDAY_DELIVERY":        "FedEx First Overnight Saturday Delivery",
	"FEDEX_EXPRESS_SAVER":                      "FedEx Express Saver",
	"FEDEX_1_DAY_FREIGHT":                      "FedEx 1 Day Freight",
	"FEDEX_1_DAY_FREIGHT_SATURDAY_DELIVERY":    "FedEx 1 Day Freight Saturday Delivery",
	"FEDEX_2_DAY_FREIGHT":                      "FedEx 2 Day Freight",
	"FEDEX_2_DAY_FREIGHT_SATURDAY_DELIVERY":    "FedEx 2 Day Freight Saturday Delivery",
	"FEDEX_3_DAY_FREIGHT":                      "FedEx 3 Day Freight",
	"FEDEX_3_DAY_FREIGHT_SATURDAY_DELIVERY":    "FedEx 3 Day Freight Saturday Delivery",
	"INTERNATIONAL_PRIORITY":                   "FedEx International Priority",
	"INTERNATIONAL_PRIORITY_SATURDAY_DELIVERY": "FedEx International Priority Saturday Delivery",
	"INTERNATIONAL_ECONOMY":                    "FedEx International Economy",
	"INTERNATIONAL_FIRST":                      "FedEx International First",
	"INTERNATIONAL_PRIORITY_FREIGHT":           "FedEx International Priority Freight",
	"INTERNATIONAL_ECONOMY_FREIGHT":            "FedEx International Economy Freight",
	"GROUND_HOME_DELIVERY":                     "FedEx Ground Home Delivery",
	"FEDEX_GROUND":                             "FedEx Ground",
	"INTERNATIONAL_GROUND":                     "FedEx International Ground",
}

// PackageTypes maps package option values to wire codes.
var PackageTypes = map[string]string{
	"fedex_envelope":  "FEDEX_ENVELOPE",
	"fedex_pak":       "FEDEX_PAK",
	"fedex_box":       "FEDEX_BOX",
	"fedex_tube":      "FEDEX_TUBE",
	"fedex_10_kg_box": "FEDEX_10KG_BOX",
	"fedex_25_kg_box": "FEDEX_25KG_BOX",
	"your_packaging":  "YOUR_PACKAGING",
}

// DropoffTypes maps dropoff option values to wire codes.
var DropoffTypes = map[string]string{
	"regular_pickup":          "REGULAR_PICKUP",
	"request_courier":         "REQUEST_COURIER",
	"dropbox":                 "DROP_BOX",
	"business_service_center": "BUSINESS_SERVICE_CENTER",
	"station":                 "STATION",
}

// PaymentTypes maps payor option values to wire codes.
var PaymentTypes = map[string]string{
	"sender":      "SENDER",
	"recipient":   "RECIPIENT",
	"third_party": "THIRDPARTY",
	"collect":     "COLLECT",
}

// PackageIdentifierTypes maps tracking identifier kinds to wire codes.
var PackageIdentifierTypes = map[string]string{
	"tracking_number":           "TRACKING_NUMBER_OR_DOORTAG",
	"door_tag":                  "TRACKING_NUMBER_OR_DOORTAG",
	"rma":                       "RMA",
	"ground_shipment_id":        "GROUND_SHIPMENT_ID",
	"ground_invoice_number":     "GROUND_INVOICE_NUMBER",
	"ground_customer_reference": "GROUND_CUSTOMER_REFERENCE",
	"ground_po":                 "GROUND_PO",
	"express_reference":         "EXPRESS_REFERENCE",
	"express_mps_master":        "EXPRESS_MPS_MASTER",
}

const defaultPackageIdentifierType = "tracking_number"

// ServiceName returns the display name of a service code. Unknown codes are
// title-cased word by word and prefixed with "FedEx".
func ServiceName(code string) string {
	if name, ok := ServiceTypes[code]; ok {
		return name
	}

	words := strings.Split(strings.ToLower(code), "_")
	for i, w := range words {
		if w != "" {
			r, size := utf8.DecodeRuneInString(w)
			words[i] = string(unicode.ToUpper(r)) + w[size:]
		}
	}
	name := strings.Replace(strings.Join(words, " "), "Fedex ", "", 1)
	return "FedEx " + name
}

// SaturdayServiceName names the Saturday delivery variant of a service. The
// result is upper-cased entirely, matching what rate consumers already store.
func SaturdayServiceName(code string) string {
	return strings.ToUpper(ServiceName(code + "_SATURDAY_DELIVERY"))
}

// NormalizeCurrency replaces the legacy pound sterling code UKL with GBP.
func NormalizeCurrency(code string) string {
	if strings.Contains(strings.ToUpper(code), "UKL") {
		return "GBP"
	}
	return code
}

func packageIdentifierType(kind string) string {
	if t, ok := PackageIdentifierTypes[kind]; ok {
		return t
	}
	return PackageIdentifierTypes[defaultPackageIdentifierType]
}
