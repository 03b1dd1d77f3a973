package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"tyzox-be/internal/category"
	"tyzox-be/internal/handler/dto"
	"tyzox-be/internal/metrics"
	"tyzox-be/internal/product"
	"tyzox-be/internal/recommendation"
	"tyzox-be/internal/report"

	"github.com/gin-gonic/gin"
)

// AdminHandler backs the staff-only management routes.
type AdminHandler struct {
	BaseHandler
	products   product.Service
	categories category.Service
	related    recommendation.Service
	reports    report.Service
	metrics    *metrics.Registry
	now        func() time.Time
}

func NewAdminHandler(
	products product.Service,
	categories category.Service,
	related recommendation.Service,
	reports report.Service,
	m *metrics.Registry,
) *AdminHandler {
	return &AdminHandler{
		products:   products,
		categories: categories,
		related:    related,
		reports:    reports,
		metrics:    m,
		now:        time.Now,
	}
}

/* ---------- PRODUCTS ---------- */

func (h *AdminHandler) ListProducts(c *gin.Context) {
	list, err := h.products.ListAll(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product.ToResponses(list))
}

func (h *AdminHandler) GetProduct(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	p, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product.ToResponse(p))
}

func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var req dto.ProductRequest
	if !h.bindJSON(c, &req) {
		return
	}

	in, err := product.InputFromRequest(req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	p, err := h.products.Create(c.Request.Context(), in)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, product.ToResponse(p))
}

func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var req dto.ProductRequest
	if !h.bindJSON(c, &req) {
		return
	}

	in, err := product.InputFromRequest(req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	p, err := h.products.Update(c.Request.Context(), id, in)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product.ToResponse(p))
}

func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

/* ---------- RELATED ---------- */

// ListRelated returns the ids of every product linked to :id, available or not.
func (h *AdminHandler) ListRelated(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	ids, err := h.related.Neighbors(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if ids == nil {
		ids = []int64{}
	}
	h.Success(c, ids)
}

func (h *AdminHandler) LinkRelated(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	relatedID, ok := h.pathID(c, "relatedId")
	if !ok {
		return
	}

	if err := h.related.Link(c.Request.Context(), id, relatedID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *AdminHandler) UnlinkRelated(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	relatedID, ok := h.pathID(c, "relatedId")
	if !ok {
		return
	}

	if err := h.related.Unlink(c.Request.Context(), id, relatedID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

/* ---------- CATEGORIES ---------- */

func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if !h.bindJSON(c, &req) {
		return
	}

	cat, err := h.categories.Create(c.Request.Context(), req.Name)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, category.ToResponse(cat))
}

func (h *AdminHandler) RenameCategory(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var req dto.CategoryRequest
	if !h.bindJSON(c, &req) {
		return
	}

	cat, err := h.categories.Rename(c.Request.Context(), id, req.Name)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, category.ToResponse(cat))
}

func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	if err := h.categories.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

/* ---------- REPORTS ---------- */

func (h *AdminHandler) SalesReport(c *gin.Context) {
	rows, err := h.reports.SalesReport(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, report.ToResponses(rows))
}

// SalesReportCSV buffers the export so a query failure can still be
// answered with a JSON error.
func (h *AdminHandler) SalesReportCSV(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.reports.ExportCSV(c.Request.Context(), &buf); err != nil {
		h.HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("sales_report_%s.csv", h.now().Format("20060102"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *AdminHandler) Stats(c *gin.Context) {
	h.Success(c, h.metrics.Snapshot())
}
