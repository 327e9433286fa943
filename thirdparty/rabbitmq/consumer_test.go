package rabbitmq

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rabbitmq/amqp091-go"
)

type fakeAck struct {
	acked, nacked, requeued bool
}

func (f *fakeAck) Ack(tag uint64, multiple bool) error {
	f.acked = true
	return nil
}

func (f *fakeAck) Nack(tag uint64, multiple, requeue bool) error {
	f.nacked = true
	f.requeued = requeue
	return nil
}

func (f *fakeAck) Reject(tag uint64, requeue bool) error {
	f.nacked = true
	f.requeued = requeue
	return nil
}

func TestConsumer_handle(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		status       int
		wantCalls    int
		wantAck      bool
		wantRequeued bool
	}{
		{name: "refresh succeeds", body: `{"product_id":7}`, status: http.StatusOK, wantCalls: 1, wantAck: true},
		{name: "api down requeues", body: `{"product_id":7}`, status: http.StatusBadGateway, wantCalls: 1, wantRequeued: true},
		{name: "unknown product is dropped", body: `{"product_id":7}`, status: http.StatusNotFound, wantCalls: 1, wantAck: true},
		{name: "malformed event is dropped", body: `{"product_id":`, wantAck: true},
		{name: "missing product id is dropped", body: `{}`, wantAck: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				if r.Method != http.MethodPost || r.URL.Path != "/internal/v1/product/7/variants/refresh" {
					t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
				}
				if got := r.Header.Get("Authorization"); got != "Bearer secret" {
					t.Errorf("Authorization = %q", got)
				}
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c := &Consumer{apiURL: srv.URL, apiKey: "secret", client: srv.Client()}
			ack := &fakeAck{}
			c.handle(context.Background(), amqp091.Delivery{Acknowledger: ack, Body: []byte(tt.body)})

			if calls != tt.wantCalls {
				t.Fatalf("refresh calls = %d, want %d", calls, tt.wantCalls)
			}
			if ack.acked != tt.wantAck {
				t.Fatalf("acked = %v, want %v", ack.acked, tt.wantAck)
			}
			if ack.requeued != tt.wantRequeued {
				t.Fatalf("requeued = %v, want %v", ack.requeued, tt.wantRequeued)
			}
		})
	}
}
