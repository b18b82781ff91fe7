package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sikarir/sikarir-backend/internal/services"
)

type CatalogHandler struct {
	svc services.CatalogService
}

func NewCatalogHandler(svc services.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func (h *CatalogHandler) ListCareers(c *gin.Context) {
	out, err := h.svc.ListCareers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	limit, offset := pageParams(c, 20)
	c.JSON(http.StatusOK, gin.H{
		"careers": paginate(out, limit, offset),
		"total":   len(out),
	})
}

func (h *CatalogHandler) SearchCareers(c *gin.Context) {
	out, err := h.svc.SearchCareers(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeError(c, err)
		return
	}

	limit, offset := pageParams(c, 20)
	c.JSON(http.StatusOK, gin.H{
		"careers": paginate(out, limit, offset),
		"total":   len(out),
	})
}

func (h *CatalogHandler) GetCareer(c *gin.Context) {
	out, err := h.svc.GetCareer(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) ListMajors(c *gin.Context) {
	out, err := h.svc.ListMajors(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	limit, offset := pageParams(c, 20)
	c.JSON(http.StatusOK, gin.H{
		"majors": paginate(out, limit, offset),
		"total":  len(out),
	})
}

func (h *CatalogHandler) SearchMajors(c *gin.Context) {
	out, err := h.svc.SearchMajors(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeError(c, err)
		return
	}

	limit, offset := pageParams(c, 20)
	c.JSON(http.StatusOK, gin.H{
		"majors": paginate(out, limit, offset),
		"total":  len(out),
	})
}

func (h *CatalogHandler) GetMajor(c *gin.Context) {
	out, err := h.svc.GetMajor(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
