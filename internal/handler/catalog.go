package handler

import (
	"net/http"

	"github.com/luix3mo90/Deli-Bross-Manager/internal/apierror"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/dto"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/model"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/store"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes the product catalog and inventory. The catalog is
// seeded at boot and only changes through snapshot import; inventory
// quantities can be corrected in place after a physical recount.
type CatalogHandler struct{ store *store.Store }

func NewCatalogHandler(st *store.Store) *CatalogHandler {
	return &CatalogHandler{store: st}
}

// Products godoc
// @Summary      Listar catálogo de productos
// @Tags         catalogo
// @Produce      json
// @Success      200 {array} model.Product
// @Router       /v1/catalogo/productos [get]
func (h *CatalogHandler) Products(c *gin.Context) {
	var products []model.Product
	h.store.View(func(st *store.State) {
		products = append(products, st.Products...)
	})
	c.JSON(http.StatusOK, products)
}

// Inventory godoc
// @Summary      Listar inventario de insumos
// @Tags         catalogo
// @Produce      json
// @Success      200 {array} model.InventoryItem
// @Router       /v1/catalogo/inventario [get]
func (h *CatalogHandler) Inventory(c *gin.Context) {
	var items []model.InventoryItem
	h.store.View(func(st *store.State) {
		items = append(items, st.Inventory...)
	})
	c.JSON(http.StatusOK, items)
}

// AdjustInventory godoc
// @Summary      Ajustar cantidad de un insumo (reconteo físico)
// @Tags         catalogo
// @Accept       json
// @Produce      json
// @Param        id      path string true "id del insumo"
// @Param        payload body dto.AdjustInventoryRequest true "nueva cantidad"
// @Success      200 {object} model.InventoryItem
// @Failure      404 {object} apierror.APIError
// @Router       /v1/catalogo/inventario/{id} [patch]
func (h *CatalogHandler) AdjustInventory(c *gin.Context) {
	var req dto.AdjustInventoryRequest
	if !bindAndValidate(c, &req) {
		return
	}

	var (
		out model.InventoryItem
		ok  bool
	)
	h.store.Update(func(st *store.State) {
		if item := st.InventoryItem(c.Param("id")); item != nil {
			item.Quantity = req.Quantity
			out, ok = *item, true
		}
	})
	if !ok {
		c.JSON(http.StatusNotFound, apierror.New("insumo no encontrado"))
		return
	}
	c.JSON(http.StatusOK, out)
}
