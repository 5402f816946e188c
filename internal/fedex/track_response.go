package fedex

import (
	"sort"
	"time"

	"github.com/beevik/etree"

	"github.com/99minutos/fedex-carrier/internal/core/domain"
)

var scanLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	dateLayout,
}

func parseTrackReply(body []byte) (*domain.TrackingResponse, error) {
	doc, err := readReply(body)
	if err != nil {
		return nil, err
	}
	outcome := classify(doc)

	resp := &domain.TrackingResponse{
		Response: domain.Response{Success: outcome.Success, Message: outcome.Message},
	}
	if !outcome.Success {
		return resp, nil
	}

	details := doc.FindElement("//TrackDetails")
	if details == nil {
		return resp, nil
	}

	resp.TrackingNumber = text(details, "TrackingNumber")
	if dest := details.FindElement("DestinationAddress"); dest != nil {
		resp.Destination = domain.Location{
			CountryCode: text(dest, "CountryCode"),
			State:       text(dest, "StateOrProvinceCode"),
			City:        text(dest, "City"),
		}
	}

	events := make([]domain.ShipmentEvent, 0)
	for _, scan := range details.FindElements("Events") {
		if event, ok := shipmentEvent(scan); ok {
			events = append(events, event)
		}
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Time.Before(events[j].Time)
	})
	resp.ShipmentEvents = events

	return resp, nil
}

// shipmentEvent decodes one scan. Scans without a country or with an
// unreadable timestamp are skipped.
func shipmentEvent(scan *etree.Element) (domain.ShipmentEvent, bool) {
	var loc domain.Location
	if addr := scan.FindElement("Address"); addr != nil {
		loc = domain.Location{
			City:        text(addr, "City"),
			State:       text(addr, "StateOrProvinceCode"),
			PostalCode:  text(addr, "PostalCode"),
			CountryCode: text(addr, "CountryCode"),
		}
	}
	if loc.CountryCode == "" {
		return domain.ShipmentEvent{}, false
	}

	ts, ok := scanTime(text(scan, "Timestamp"))
	if !ok {
		return domain.ShipmentEvent{}, false
	}

	return domain.ShipmentEvent{
		Name:     text(scan, "EventDescription"),
		Time:     ts,
		Location: loc,
	}, true
}

// scanTime reads a scan timestamp and keeps its wall clock as UTC. FedEx
// reports local times; the offset is knowingly discarded.
func scanTime(raw string) (time.Time, bool) {
	for _, layout := range scanLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC), true
	}
	return time.Time{}, false
}
