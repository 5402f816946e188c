// Package fedex is the FedEx Web Services adapter: it turns carrier-agnostic
// rate, ship, cancel and track calls into FedEx XML requests and decodes the
// XML replies back into domain results.
//
// Requests are emitted from typed encoding/xml structs, one Go field per wire
// element. Replies are read with etree after namespace prefixes are dropped,
// so the same lookups work whatever prefix the gateway chooses.
//
// Carrier-level failures (error notifications, empty rate lists) are reported
// as data through the Success and Message fields of each result. Errors are
// only returned when the transport fails or the reply is not well-formed XML.
package fedex
