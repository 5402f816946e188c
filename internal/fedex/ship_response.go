package fedex

import "github.com/99minutos/fedex-carrier/internal/core/domain"

// The misspelling is part of the message consumers already match on.
const shipFailedMessage = "Shipment was not succcessful."

func parseShipReply(body []byte) (*domain.ShipResponse, error) {
	doc, err := readReply(body)
	if err != nil {
		return nil, err
	}
	outcome := classify(doc)

	resp := &domain.ShipResponse{}
	if outcome.Success {
		resp.LabelEncoded = text(&doc.Element, "//Image")
		resp.TrackingNumber = text(&doc.Element, "//TrackingNumber")
	} else if outcome.Message == "" {
		outcome.Message = shipFailedMessage
	}
	resp.Success = outcome.Success
	resp.Message = outcome.Message
	return resp, nil
}

func parseDeleteReply(body []byte) (*domain.DeleteResponse, error) {
	doc, err := readReply(body)
	if err != nil {
		return nil, err
	}
	outcome := classify(doc)
	return &domain.DeleteResponse{
		Response: domain.Response{Success: outcome.Success, Message: outcome.Message},
	}, nil
}
