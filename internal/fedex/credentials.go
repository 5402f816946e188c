package fedex

import (
	"fmt"
	"strings"
)

// CustomerTransactionID tags every request sent by this adapter.
const CustomerTransactionID = "Omniship"

// Credentials are the developer key/password and account/meter pair issued by FedEx.
type Credentials struct {
	Key           string
	Password      string
	AccountNumber string
	MeterNumber   string
}

// Requirements lists the credential settings the adapter cannot work without.
func Requirements() []string {
	return []string{"key", "account", "meter", "password"}
}

// Validate reports the missing requirements, if any.
func (c Credentials) Validate() error {
	values := map[string]string{
		"key":      c.Key,
		"account":  c.AccountNumber,
		"meter":    c.MeterNumber,
		"password": c.Password,
	}
	var missing []string
	for _, req := range Requirements() {
		if values[req] == "" {
			missing = append(missing, req)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("fedex: missing required credentials: %s", strings.Join(missing, ", "))
	}
	return nil
}

// credentials is the authentication prefix shared by every request document.
type credentials struct {
	WebAuthenticationDetail webAuthenticationDetail `xml:"WebAuthenticationDetail"`
	ClientDetail            clientDetail            `xml:"ClientDetail"`
	TransactionDetail       transactionDetail       `xml:"TransactionDetail"`
}

type webAuthenticationDetail struct {
	UserCredential userCredential `xml:"UserCredential"`
}

type userCredential struct {
	Key      string `xml:"Key"`
	Password string `xml:"Password"`
}

type clientDetail struct {
	AccountNumber string `xml:"AccountNumber"`
	MeterNumber   string `xml:"MeterNumber"`
}

type transactionDetail struct {
	CustomerTransactionID string `xml:"CustomerTransactionId"`
}

func (c Credentials) block() credentials {
	return credentials{
		WebAuthenticationDetail: webAuthenticationDetail{
			UserCredential: userCredential{Key: c.Key, Password: c.Password},
		},
		ClientDetail: clientDetail{
			AccountNumber: c.AccountNumber,
			MeterNumber:   c.MeterNumber,
		},
		TransactionDetail: transactionDetail{CustomerTransactionID: CustomerTransactionID},
	}
}
