package twiml

import (
	"strings"
	"testing"
)

func TestVoice_WithForwarding(t *testing.T) {
	body, err := Voice("Welcome to Riverside Dental.", "alice", "+15550009999")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	xml := string(body)
	if !strings.HasPrefix(xml, "<?xml") {
		t.Fatal("expected xml header")
	}
	if !strings.Contains(xml, `<Say voice="alice">Welcome to Riverside Dental.</Say>`) {
		t.Fatalf("missing say verb: %s", xml)
	}
	if !strings.Contains(xml, "<Dial>+15550009999</Dial>") {
		t.Fatalf("missing dial verb: %s", xml)
	}
	if strings.Contains(xml, "<Hangup") {
		t.Fatalf("hangup must not appear when forwarding: %s", xml)
	}
}

func TestVoice_NoForwardingHangsUp(t *testing.T) {
	body, err := Voice("Hello.", "alice", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	xml := string(body)
	if !strings.Contains(xml, "<Hangup") {
		t.Fatalf("expected hangup without forwarding number: %s", xml)
	}
	if strings.Contains(xml, "<Dial") {
		t.Fatalf("dial must not appear without forwarding number: %s", xml)
	}
}

func TestVoice_EmptyGreeting(t *testing.T) {
	body, err := Voice("", "alice", "+15550009999")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(string(body), "<Say") {
		t.Fatalf("say must not appear without greeting: %s", body)
	}
}

func TestReject(t *testing.T) {
	body, err := Reject("This number is not in service.", "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	xml := string(body)
	if !strings.Contains(xml, "This number is not in service.") {
		t.Fatalf("missing message: %s", xml)
	}
	if !strings.Contains(xml, "<Hangup") {
		t.Fatalf("reject must hang up: %s", xml)
	}
}
