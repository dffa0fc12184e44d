package main

import (
	"gridCalc/contracts"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	json "github.com/bytedance/sonic"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestWebhookDispatcher(t *testing.T) {
	t.Run("notifies_subscribed_cell", func(t *testing.T) {
		received := make(chan contracts.Cell, 1)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			cell := contracts.Cell{}
			_ = json.Unmarshal(body, &cell)
			received <- cell
		}))
		defer server.Close()

		dispatcher := NewWebhookDispatcher(zerolog.Nop())
		dispatcher.Start()
		defer dispatcher.Close()

		dispatcher.Subscribe("sheet1", "a1", server.URL)
		dispatcher.Notify("Sheet1", &contracts.Cell{Address: "A1", Value: "42"})

		select {
		case cell := <-received:
			assert.Equal(t, "A1", cell.Address)
			assert.Equal(t, "42", cell.Value)
		case <-time.After(time.Second * 2):
			t.Fatal("webhook was not delivered")
		}
	})

	t.Run("unsubscribed_cell_ignored", func(t *testing.T) {
		dispatcher := NewWebhookDispatcher(zerolog.Nop())
		dispatcher.Start()
		defer dispatcher.Close()

		// No subscription: Notify must be a no-op, not a panic.
		dispatcher.Notify("sheet1", &contracts.Cell{Address: "A1", Value: "1"})
	})

	t.Run("empty_url_unsubscribes", func(t *testing.T) {
		calls := make(chan struct{}, 10)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls <- struct{}{}
		}))
		defer server.Close()

		dispatcher := NewWebhookDispatcher(zerolog.Nop())
		dispatcher.Start()
		defer dispatcher.Close()

		dispatcher.Subscribe("sheet1", "A1", server.URL)
		dispatcher.Subscribe("sheet1", "A1", "")
		dispatcher.Notify("sheet1", &contracts.Cell{Address: "A1", Value: "1"})

		select {
		case <-calls:
			t.Fatal("unsubscribed webhook was delivered")
		case <-time.After(time.Millisecond * 200):
		}
	})
}
