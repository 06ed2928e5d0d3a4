package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"inventoryapi/apperrors"
	"inventoryapi/models"

	"github.com/360EntSecGroup-Skylar/excelize/v2"
	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
)

func (api *API) GetProducts(c *gin.Context) {
	asExcel, _ := strconv.ParseBool(c.Query("export_as_excel"))

	products, err := api.cachedProducts(c.Request.Context())
	if err != nil {
		abortError(c, err)
		return
	}

	if asExcel {
		handleExcelProducts(c, products)
		return
	}

	if products == nil {
		products = []models.Product{}
	}

	c.JSON(http.StatusOK, products)
}

func (api *API) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		abortError(c, apperrors.Validation("Product id must be a positive integer."))
		return
	}

	product, err := api.Products.GetByID(c.Request.Context(), id)
	if err != nil {
		abortError(c, err)
		return
	}

	if product == nil {
		abortError(c, apperrors.NotFound("Product", id))
		return
	}

	c.JSON(http.StatusOK, product)
}

func (api *API) GetProductsByCategory(c *gin.Context) {
	products, err := api.Products.GetByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		abortError(c, err)
		return
	}

	if products == nil {
		products = []models.Product{}
	}

	c.JSON(http.StatusOK, products)
}

func (api *API) CreateProduct(c *gin.Context) {
	var payload models.Product
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortError(c, apperrors.Validation("Request body is not a valid product."))
		return
	}

	if errs := validateProduct(payload); len(errs) > 0 {
		abortError(c, apperrors.ValidationFields(errs))
		return
	}

	created, err := api.Products.Create(c.Request.Context(), payload)
	if err != nil {
		abortError(c, err)
		return
	}

	api.invalidateProducts(c.Request.Context())
	c.JSON(http.StatusCreated, created)
}

func (api *API) UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		abortError(c, apperrors.Validation("Product id must be a positive integer."))
		return
	}

	var payload models.Product
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortError(c, apperrors.Validation("Request body is not a valid product."))
		return
	}

	if errs := validateProduct(payload); len(errs) > 0 {
		abortError(c, apperrors.ValidationFields(errs))
		return
	}

	updated, err := api.Products.Update(c.Request.Context(), id, payload)
	if err != nil {
		abortError(c, err)
		return
	}

	if updated == nil {
		abortError(c, apperrors.NotFound("Product", id))
		return
	}

	api.invalidateProducts(c.Request.Context())
	c.JSON(http.StatusOK, updated)
}

func (api *API) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		abortError(c, apperrors.Validation("Product id must be a positive integer."))
		return
	}

	if err := api.Products.Delete(c.Request.Context(), id); err != nil {
		abortError(c, err)
		return
	}

	api.invalidateProducts(c.Request.Context())
	c.Status(http.StatusNoContent)
}

func validateProduct(product models.Product) map[string][]string {
	errs := map[string][]string{}

	if len(product.ProductName) < 2 || len(product.ProductName) > 100 {
		errs["productName"] = append(errs["productName"], "Product name must be between 2 and 100 characters.")
	}

	if product.Category == "" {
		errs["category"] = append(errs["category"], "Category is required.")
	}

	if product.Supplier == "" {
		errs["supplier"] = append(errs["supplier"], "Supplier is required.")
	}

	if product.UnitPrice < 0.01 || product.UnitPrice > 999999.99 {
		errs["unitPrice"] = append(errs["unitPrice"], "Unit price must be between 0.01 and 999999.99.")
	}

	if product.Units < 0 {
		errs["units"] = append(errs["units"], "Units in stock cannot be negative.")
	}

	return errs
}

func handleExcelProducts(c *gin.Context, products []models.Product) {
	if len(products) == 0 {
		abortError(c, apperrors.NotFoundMsg("products-not-found"))
		return
	}

	f := excelize.NewFile()

	sheet := "List Products"
	f.NewSheet(sheet)
	// delete default sheet
	f.DeleteSheet("Sheet1")

	err := f.SetColWidth(sheet, "A", "I", 30)
	if err != nil {
		abortError(c, err)
		return
	}

	headerStyle, err := f.NewStyle(s1)
	if err != nil {
		abortError(c, err)
		return
	}

	dataStyle, err := f.NewStyle(s2)
	if err != nil {
		abortError(c, err)
		return
	}

	streamWriter, err := f.NewStreamWriter(sheet)
	if err != nil {
		abortError(c, err)
		return
	}

	if err = streamWriter.SetRow("A1", []interface{}{
		excelize.Cell{StyleID: headerStyle, Value: "ID"},
		excelize.Cell{StyleID: headerStyle, Value: "Product Name"},
		excelize.Cell{StyleID: headerStyle, Value: "Category"},
		excelize.Cell{StyleID: headerStyle, Value: "Supplier"},
		excelize.Cell{StyleID: headerStyle, Value: "Quantity Per Unit"},
		excelize.Cell{StyleID: headerStyle, Value: "Unit Price"},
		excelize.Cell{StyleID: headerStyle, Value: "Units in Stock"},
		excelize.Cell{StyleID: headerStyle, Value: "Created At"},
		excelize.Cell{StyleID: headerStyle, Value: "Updated At"}}); err != nil {
		abortError(c, err)
		return
	}

	for n, product := range products {
		createdAt := product.CreatedAt.Local().Format("2006-01-02 15:04:05")
		updatedAt := product.UpdatedAt.Local().Format("2006-01-02 15:04:05")

		if updatedAt == createdAt {
			updatedAt = "-"
		}

		row := make([]interface{}, 9)
		row[0] = excelize.Cell{StyleID: dataStyle, Value: product.Id}
		row[1] = excelize.Cell{StyleID: dataStyle, Value: product.ProductName}
		row[2] = excelize.Cell{StyleID: dataStyle, Value: product.Category}
		row[3] = excelize.Cell{StyleID: dataStyle, Value: product.Supplier}
		row[4] = excelize.Cell{StyleID: dataStyle, Value: product.QuantityPerUnit}
		row[5] = excelize.Cell{StyleID: dataStyle, Value: fmt.Sprintf("$%s", humanize.CommafWithDigits(product.UnitPrice, 2))}
		row[6] = excelize.Cell{StyleID: dataStyle, Value: product.Units}
		row[7] = excelize.Cell{StyleID: dataStyle, Value: createdAt}
		row[8] = excelize.Cell{StyleID: dataStyle, Value: updatedAt}

		cell, _ := excelize.CoordinatesToCellName(1, n+2)
		if err = streamWriter.SetRow(cell, row); err != nil {
			abortError(c, err)
			return
		}
	}

	if err := streamWriter.Flush(); err != nil {
		abortError(c, err)
		return
	}

	fileName := fmt.Sprintf("report_products_%s.xlsx", time.Now().Local().Format("20060102_150405"))

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment;filename=\""+fileName+"\"")

	if _, err := f.WriteTo(c.Writer); err != nil {
		abortError(c, err)
		return
	}
}
