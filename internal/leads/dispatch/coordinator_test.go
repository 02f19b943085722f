package dispatch

import (
	"context"
	"errors"
	"testing"
	"time"

	"leadgate_backend/internal/leads/domain"
	"leadgate_backend/platform/logger"
)

type testDispatchConfig struct {
	threshold int
	notifyAll bool
}

func (c testDispatchConfig) GetAlertThreshold() int            { return c.threshold }
func (c testDispatchConfig) GetNotifyAllLeads() bool           { return c.notifyAll }
func (c testDispatchConfig) GetAlertMaxLen() int               { return 1500 }
func (c testDispatchConfig) GetAlertChannel() string           { return "twilio" }
func (c testDispatchConfig) GetDispatchTimeout() time.Duration { return time.Second }

type fakeGateway struct {
	calls    int
	lastBody string
	id       string
	err      error
}

func (g *fakeGateway) Send(_ context.Context, body string) (string, error) {
	g.calls++
	g.lastBody = body
	return g.id, g.err
}

func (g *fakeGateway) Channel() string { return "fake" }

func testLog() *logger.Logger { return logger.New("development") }

func render(body string) (func() string, *int) {
	count := 0
	return func() string {
		count++
		return body
	}, &count
}

func TestDispatchBelowThresholdSkipsWithoutRendering(t *testing.T) {
	gw := &fakeGateway{id: "SM1"}
	c := New(gw, testDispatchConfig{threshold: 60}, testLog())

	body, renders := render("alert")
	out := c.Dispatch(context.Background(), "lead1", 40, body)

	if out.Attempted || out.Sent {
		t.Fatalf("expected no attempt, got %+v", out)
	}
	if out.SkipReason != domain.SkipBelowThreshold {
		t.Fatalf("expected skip reason %q, got %q", domain.SkipBelowThreshold, out.SkipReason)
	}
	if gw.calls != 0 {
		t.Fatalf("gateway must not be called, got %d calls", gw.calls)
	}
	if *renders != 0 {
		t.Fatalf("alert must not be formatted when skipped, got %d renders", *renders)
	}
}

func TestDispatchUnconfiguredGatewayIsNotAnError(t *testing.T) {
	c := New(nil, testDispatchConfig{threshold: 60}, testLog())

	body, renders := render("alert")
	out := c.Dispatch(context.Background(), "lead2", 90, body)

	if out.Attempted {
		t.Fatalf("expected no attempt with absent gateway, got %+v", out)
	}
	if out.SkipReason != domain.SkipGatewayUnconfigured {
		t.Fatalf("expected skip reason %q, got %q", domain.SkipGatewayUnconfigured, out.SkipReason)
	}
	if *renders != 0 {
		t.Fatalf("alert must not be formatted when gateway is absent")
	}
}

func TestDispatchSuccessRecordsConfirmationID(t *testing.T) {
	gw := &fakeGateway{id: "SM123"}
	c := New(gw, testDispatchConfig{threshold: 60}, testLog())

	body, _ := render("the alert body")
	out := c.Dispatch(context.Background(), "lead3", 85, body)

	if !out.Attempted || !out.Sent {
		t.Fatalf("expected successful attempt, got %+v", out)
	}
	if out.MessageID != "SM123" {
		t.Fatalf("expected confirmation id SM123, got %q", out.MessageID)
	}
	if gw.lastBody != "the alert body" {
		t.Fatalf("gateway received wrong body: %q", gw.lastBody)
	}
}

func TestDispatchFailureIsCapturedAsData(t *testing.T) {
	gw := &fakeGateway{err: errors.New("rate limited")}
	c := New(gw, testDispatchConfig{threshold: 60}, testLog())

	body, _ := render("alert")
	out := c.Dispatch(context.Background(), "lead4", 85, body)

	if !out.Attempted || out.Sent {
		t.Fatalf("expected failed attempt, got %+v", out)
	}
	if out.Error != "rate limited" {
		t.Fatalf("expected captured error, got %q", out.Error)
	}
	if gw.calls != 1 {
		t.Fatalf("expected exactly one attempt, got %d", gw.calls)
	}
}

func TestNotifyAllOverrideDispatchesBelowThreshold(t *testing.T) {
	gw := &fakeGateway{id: "SM9"}
	c := New(gw, testDispatchConfig{threshold: 60, notifyAll: true}, testLog())

	body, _ := render("alert")
	out := c.Dispatch(context.Background(), "lead5", 10, body)

	if !out.Attempted || !out.Sent {
		t.Fatalf("expected attempt under notify-all override, got %+v", out)
	}
}
