package contracts

import "github.com/gin-gonic/gin"

type ApiController interface {
	SetCellAction(c *gin.Context)
	GetCellAction(c *gin.Context)
	GetSheetAction(c *gin.Context)
	SubscribeAction(c *gin.Context)
	SaveSheetAction(c *gin.Context)
	LoadSheetAction(c *gin.Context)
	ExportCsvAction(c *gin.Context)
	ImportCsvAction(c *gin.Context)
}
