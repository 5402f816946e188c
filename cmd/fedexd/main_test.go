package main

import (
	"testing"

	"github.com/99minutos/fedex-carrier/internal/pkg/config"
)

func TestCarrierDefaults_NoRecipients(t *testing.T) {
	defaults := carrierDefaults(config.FedExConfig{NotifyEvents: []string{"delivery"}})
	if defaults.Notifications != nil {
		t.Errorf("expected no notifications, got %+v", defaults.Notifications)
	}
	if defaults.Test != nil {
		t.Errorf("expected test mode to be left unset")
	}
}

func TestCarrierDefaults_Recipients(t *testing.T) {
	defaults := carrierDefaults(config.FedExConfig{
		UseTest:        "true",
		NotifyEmails:   []string{"ops@example.com", " alerts@example.com"},
		NotifyEvents:   []string{"delivery", "Exception"},
		NotifyFormat:   "HTML",
		NotifyLanguage: "EN",
	})

	if defaults.Test == nil || !*defaults.Test {
		t.Errorf("expected test mode on")
	}
	if len(defaults.Notifications) != 2 {
		t.Fatalf("expected 2 recipients, got %d", len(defaults.Notifications))
	}
	r := defaults.Notifications[1]
	if r.Address != "alerts@example.com" || !r.OnDelivery || !r.OnException || r.OnShipment || r.OnTender {
		t.Errorf("unexpected recipient: %+v", r)
	}
	if r.Format != "HTML" || r.Language != "EN" {
		t.Errorf("unexpected format: %+v", r)
	}
}
