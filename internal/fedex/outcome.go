package fedex

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/99minutos/fedex-carrier/internal/core/domain"
)

// Severities that still mean the request went through.
var successSeverities = map[string]struct{}{
	"SUCCESS": {},
	"WARNING": {},
	"NOTE":    {},
}

// Outcome is the verdict carried by a reply's first notification.
type Outcome struct {
	Success bool
	Message string
}

// classify derives the outcome from the first Notifications entry. A reply
// without notifications is a failure with an empty message.
func classify(doc *etree.Document) Outcome {
	n := doc.FindElement("//Notifications")
	if n == nil {
		return Outcome{}
	}
	severity := text(n, "Severity")
	_, ok := successSeverities[severity]
	return Outcome{
		Success: ok,
		Message: fmt.Sprintf("%s - %s: %s", severity, text(n, "Code"), text(n, "Message")),
	}
}

// readReply parses a reply body and drops namespace prefixes so that lookups
// can use bare element names.
func readReply(body []byte) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("%w: no root element", domain.ErrMalformedResponse)
	}
	stripNamespaces(root)
	return doc, nil
}

func stripNamespaces(el *etree.Element) {
	el.Space = ""
	for _, child := range el.ChildElements() {
		stripNamespaces(child)
	}
}

// text returns the character data of the first element matching path, or "".
func text(el *etree.Element, path string) string {
	if found := el.FindElement(path); found != nil {
		return found.Text()
	}
	return ""
}
