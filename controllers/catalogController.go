package controllers

import (
	"net/http"

	"caixa/models"

	"github.com/gin-gonic/gin"
)

// CatalogController serves the fixed data the counter screen renders: the
// product buttons and the waiting-customer queue.
type CatalogController struct {
	Catalog models.Catalog
}

func (ct *CatalogController) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": ct.Catalog.Products})
}

func (ct *CatalogController) ListCustomers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"customers": ct.Catalog.Customers})
}
