package contracts

type WebhookDispatcher interface {
	Subscribe(sheetId string, address string, webhookUrl string)
	Notify(sheetId string, cell *Cell)
	Start()
	Close()
}
