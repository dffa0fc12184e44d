package main

import (
	"bytes"
	"gridCalc/contracts"
	"net/http"
	"strings"
	"sync"
	"time"

	json "github.com/bytedance/sonic"
	"github.com/rs/zerolog"
)

const WebhookWorkersCount = 5

type SheetWebhooks map[string]string

type WebhookSendCommand struct {
	Webhook string
	Cell    *contracts.Cell
}

// WebhookDispatcher posts changed cells to subscribed URLs through a
// fixed worker pool. Send failures are logged and never propagated to
// the write that triggered them.
type WebhookDispatcher struct {
	mu       sync.RWMutex
	queue    chan WebhookSendCommand
	webhooks map[string]SheetWebhooks
	logger   zerolog.Logger
}

func NewWebhookDispatcher(logger zerolog.Logger) *WebhookDispatcher {
	return &WebhookDispatcher{
		queue:    make(chan WebhookSendCommand, 20),
		webhooks: map[string]SheetWebhooks{},
		logger:   logger,
	}
}

// Subscribe registers a webhook for a cell; an empty URL removes the
// subscription.
func (manager *WebhookDispatcher) Subscribe(sheetId string, address string, webhookUrl string) {
	sheetId = strings.ToLower(sheetId)
	address = strings.ToUpper(strings.TrimSpace(address))

	manager.mu.Lock()
	defer manager.mu.Unlock()

	if _, ok := manager.webhooks[sheetId]; !ok {
		manager.webhooks[sheetId] = SheetWebhooks{}
	}

	if webhookUrl == "" {
		delete(manager.webhooks[sheetId], address)
	} else {
		manager.webhooks[sheetId][address] = webhookUrl
	}
}

func (manager *WebhookDispatcher) Notify(sheetId string, cell *contracts.Cell) {
	sheetId = strings.ToLower(sheetId)

	manager.mu.RLock()
	webhook, ok := manager.webhooks[sheetId][cell.Address]
	manager.mu.RUnlock()

	if !ok {
		return
	}

	go func() {
		manager.queue <- WebhookSendCommand{
			Webhook: webhook,
			Cell:    cell,
		}
	}()
}

func (manager *WebhookDispatcher) Start() {
	for i := 0; i < WebhookWorkersCount; i++ {
		go manager.runWebhookSenderWorker()
	}
}

func (manager *WebhookDispatcher) Close() {
	close(manager.queue)
}

func (manager *WebhookDispatcher) runWebhookSenderWorker() {
	client := &http.Client{
		Timeout: time.Second * 5,
	}

	for command := range manager.queue {
		payload, _ := json.Marshal(command.Cell)
		response, err := client.Post(command.Webhook, "application/json", bytes.NewBuffer(payload))

		if err != nil {
			manager.logger.Error().Err(err).Str("webhook", command.Webhook).Msg("webhook send failed")
		} else if response.StatusCode >= 300 {
			manager.logger.Warn().Str("webhook", command.Webhook).Str("status", response.Status).Msg("unexpected webhook response")
		}
	}
}
