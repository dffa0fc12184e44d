package main

import (
	"bytes"
	"errors"
	"gridCalc/contracts"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type ApiController struct {
	SheetManager      contracts.SheetManager
	WebhookDispatcher contracts.WebhookDispatcher
	CsvCodec          *CsvCodec
}

type CellEndpointParams struct {
	SheetId string `uri:"sheet_id" binding:"required"`
	CellId  string `uri:"cell_id" binding:"required"`
}

type SheetEndpointParams struct {
	SheetId string `uri:"sheet_id" binding:"required"`
}

type SetCellRequest struct {
	Value string `json:"value" binding:"required"`
}

type SubscribeRequest struct {
	WebhookUrl string `json:"webhook_url"`
}

type SheetResponse struct {
	Rows  int               `json:"rows"`
	Cols  int               `json:"cols"`
	Cells []*contracts.Cell `json:"cells"`
}

const importStartCellDefault = "A1"

func NewApiController(sheetManager contracts.SheetManager, webhookDispatcher contracts.WebhookDispatcher) *ApiController {
	return &ApiController{
		SheetManager:      sheetManager,
		WebhookDispatcher: webhookDispatcher,
		CsvCodec:          NewCsvCodec(),
	}
}

func (api *ApiController) SetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	request := SetCellRequest{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}

	var cell *contracts.Cell
	if err == nil {
		sheet := api.SheetManager.Sheet(params.SheetId)
		if err = sheet.Put(params.CellId, request.Value); err == nil {
			cell = api.readCell(sheet, params.CellId)
			api.WebhookDispatcher.Notify(params.SheetId, cell)
		}
	}

	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	// Formula faults are values, not errors: the put succeeded even if
	// the cell now displays #ERR.
	c.JSON(http.StatusCreated, cell)
}

func (api *ApiController) GetCellAction(c *gin.Context) {
	params := CellEndpointParams{}

	err := c.ShouldBindUri(&params)

	var cell *contracts.Cell
	if err == nil {
		sheet := api.SheetManager.Sheet(params.SheetId)
		if _, err = sheet.Get(params.CellId); err == nil {
			cell = api.readCell(sheet, params.CellId)
		}
	}

	if errors.Is(err, contracts.InvalidAddressError) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, cell)
	}
}

func (api *ApiController) GetSheetAction(c *gin.Context) {
	params := SheetEndpointParams{}

	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	sheet := api.SheetManager.Sheet(params.SheetId)
	rows, cols := sheet.Dimensions()

	c.JSON(http.StatusOK, SheetResponse{
		Rows:  rows,
		Cols:  cols,
		Cells: sheet.CellList(),
	})
}

func (api *ApiController) SubscribeAction(c *gin.Context) {
	params := CellEndpointParams{}
	request := SubscribeRequest{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}

	if err == nil {
		// Reject malformed addresses before registering anything.
		_, err = api.SheetManager.Sheet(params.SheetId).Get(params.CellId)
	}

	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	api.WebhookDispatcher.Subscribe(params.SheetId, params.CellId, request.WebhookUrl)
	c.Status(http.StatusNoContent)
}

func (api *ApiController) SaveSheetAction(c *gin.Context) {
	params := SheetEndpointParams{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = api.SheetManager.Save(params.SheetId)
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func (api *ApiController) LoadSheetAction(c *gin.Context) {
	params := SheetEndpointParams{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = api.SheetManager.Load(params.SheetId)
	}

	if errors.Is(err, contracts.SheetNotFoundError) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	} else {
		c.Status(http.StatusNoContent)
	}
}

func (api *ApiController) ExportCsvAction(c *gin.Context) {
	params := SheetEndpointParams{}

	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	buffer := bytes.Buffer{}
	if err := api.CsvCodec.Write(&buffer, api.SheetManager.Sheet(params.SheetId)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "text/csv", buffer.Bytes())
}

func (api *ApiController) ImportCsvAction(c *gin.Context) {
	params := SheetEndpointParams{}

	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	startCell := c.DefaultQuery("start", importStartCellDefault)

	err := api.CsvCodec.Read(c.Request.Body, api.SheetManager.Sheet(params.SheetId), startCell)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// readCell assembles the API representation of an already-validated
// cell address.
func (api *ApiController) readCell(sheet contracts.Spreadsheet, cellId string) *contracts.Cell {
	address := strings.ToUpper(strings.TrimSpace(cellId))
	value, _ := sheet.Get(address)
	source, _ := sheet.Source(address)

	formula := ""
	if strings.HasPrefix(source, contracts.FormulaPrefix) {
		formula = strings.TrimPrefix(source, contracts.FormulaPrefix)
	}

	return &contracts.Cell{
		Address: address,
		Formula: formula,
		Value:   value,
	}
}
