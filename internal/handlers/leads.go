package handlers

import (
	"log"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"karthika_back_end/internal/models"
	"karthika_back_end/internal/repository"
	"karthika_back_end/internal/services"
)

// LeadsHandler serves the two lead-capture forms. The POST endpoints are
// public; everything else is admin-only.
type LeadsHandler struct {
	leads  *repository.Leads
	mailer *services.Mailer
}

func NewLeadsHandler(leads *repository.Leads, mailer *services.Mailer) *LeadsHandler {
	return &LeadsHandler{leads: leads, mailer: mailer}
}

// matchesLead does the admin-list text search over name, phone and email.
func matchesLead(search string, fields ...string) bool {
	if search == "" {
		return true
	}
	search = strings.ToLower(search)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), search) {
			return true
		}
	}
	return false
}

// --- installation requests ---

// POST /api/installation-requests (public)
func (h *LeadsHandler) CreateInstallation(c *gin.Context) {
	var input struct {
		Name    string `json:"name" binding:"required"`
		Phone   string `json:"phone" binding:"required"`
		Email   string `json:"email"`
		Pincode string `json:"pincode" binding:"required"`
		Cameras int    `json:"cameras"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Please provide name, phone and pincode")
		return
	}

	now := time.Now()
	req := models.InstallationRequest{
		ID:        gocql.TimeUUID(),
		Name:      input.Name,
		Phone:     input.Phone,
		Email:     input.Email,
		Pincode:   input.Pincode,
		Cameras:   input.Cameras,
		Message:   input.Message,
		Status:    "pending",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.leads.SaveInstallation(&req); err != nil {
		respondServerError(c, "Error submitting installation request", err)
		return
	}

	log.Println("✅ New installation request from", req.Name)
	go h.mailer.NotifyInstallationRequest(req)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Installation request submitted successfully. We will contact you soon!",
		"data":    req,
	})
}

// GET /api/installation-requests?status=&search= (admin)
func (h *LeadsHandler) ListInstallations(c *gin.Context) {
	rows, err := h.leads.ListInstallations()
	if err != nil {
		respondServerError(c, "Error fetching installation requests", err)
		return
	}

	status := c.Query("status")
	search := c.Query("search")
	filtered := rows[:0]
	for _, req := range rows {
		if status != "" && req.Status != status {
			continue
		}
		if !matchesLead(search, req.Name, req.Phone, req.Email) {
			continue
		}
		filtered = append(filtered, req)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})
	respondList(c, len(filtered), filtered)
}

// GET /api/installation-requests/:id (admin)
func (h *LeadsHandler) GetInstallation(c *gin.Context) {
	req, ok := h.findInstallation(c)
	if !ok {
		return
	}
	respondData(c, http.StatusOK, req)
}

// PUT /api/installation-requests/:id (admin)
func (h *LeadsHandler) UpdateInstallation(c *gin.Context) {
	req, ok := h.findInstallation(c)
	if !ok {
		return
	}

	var input struct {
		Status string  `json:"status"`
		Notes  *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if input.Status != "" {
		if !models.ValidStatus(models.InstallationStatuses, input.Status) {
			respondError(c, http.StatusBadRequest, "Invalid status value")
			return
		}
		req.Status = input.Status
	}
	if input.Notes != nil {
		req.Notes = *input.Notes
	}
	req.UpdatedAt = time.Now()

	if err := h.leads.SaveInstallation(req); err != nil {
		respondServerError(c, "Error updating installation request", err)
		return
	}
	respondData(c, http.StatusOK, req)
}

// DELETE /api/installation-requests/:id (admin)
func (h *LeadsHandler) DeleteInstallation(c *gin.Context) {
	req, ok := h.findInstallation(c)
	if !ok {
		return
	}
	if err := h.leads.DeleteInstallation(req.ID); err != nil {
		respondServerError(c, "Error deleting installation request", err)
		return
	}
	respondMessage(c, http.StatusOK, "Installation request deleted successfully")
}

// GET /api/installation-requests/:id/pdf (admin)
func (h *LeadsHandler) InstallationPDF(c *gin.Context) {
	req, ok := h.findInstallation(c)
	if !ok {
		return
	}

	pdf, err := services.RenderInstallationPDF(*req)
	if err != nil {
		respondServerError(c, "Error generating PDF", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="installation-request-`+req.ID.String()+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *LeadsHandler) findInstallation(c *gin.Context) (*models.InstallationRequest, bool) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusNotFound, "Installation request not found")
		return nil, false
	}
	req, err := h.leads.GetInstallation(id)
	if err == gocql.ErrNotFound {
		respondError(c, http.StatusNotFound, "Installation request not found")
		return nil, false
	}
	if err != nil {
		respondServerError(c, "Error fetching installation request", err)
		return nil, false
	}
	return req, true
}

// --- quote requests ---

// POST /api/quote-requests (public)
func (h *LeadsHandler) CreateQuote(c *gin.Context) {
	var input struct {
		Name         string `json:"name" binding:"required"`
		Email        string `json:"email" binding:"required,email"`
		Phone        string `json:"phone" binding:"required"`
		City         string `json:"city" binding:"required"`
		PropertyType string `json:"propertyType" binding:"required"`
		NumCameras   string `json:"numCameras" binding:"required"`
		Requirements string `json:"requirements"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Please provide name, email, phone, city, propertyType and numCameras")
		return
	}
	if !models.ValidStatus(models.PropertyTypes, input.PropertyType) {
		respondError(c, http.StatusBadRequest, "Invalid property type")
		return
	}

	now := time.Now()
	req := models.QuoteRequest{
		ID:           gocql.TimeUUID(),
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		City:         input.City,
		PropertyType: input.PropertyType,
		NumCameras:   input.NumCameras,
		Requirements: input.Requirements,
		Status:       "pending",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := h.leads.SaveQuote(&req); err != nil {
		respondServerError(c, "Error submitting quote request", err)
		return
	}

	log.Println("✅ New quote request from", req.Name)
	go h.mailer.NotifyQuoteRequest(req)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Quote request submitted successfully. Our team will get back to you within 24 hours!",
		"data":    req,
	})
}

// GET /api/quote-requests?status=&search= (admin)
func (h *LeadsHandler) ListQuotes(c *gin.Context) {
	rows, err := h.leads.ListQuotes()
	if err != nil {
		respondServerError(c, "Error fetching quote requests", err)
		return
	}

	status := c.Query("status")
	search := c.Query("search")
	filtered := rows[:0]
	for _, req := range rows {
		if status != "" && req.Status != status {
			continue
		}
		if !matchesLead(search, req.Name, req.Phone, req.Email) {
			continue
		}
		filtered = append(filtered, req)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})
	respondList(c, len(filtered), filtered)
}

// GET /api/quote-requests/:id (admin)
func (h *LeadsHandler) GetQuote(c *gin.Context) {
	req, ok := h.findQuote(c)
	if !ok {
		return
	}
	respondData(c, http.StatusOK, req)
}

// PUT /api/quote-requests/:id (admin)
func (h *LeadsHandler) UpdateQuote(c *gin.Context) {
	req, ok := h.findQuote(c)
	if !ok {
		return
	}

	var input struct {
		Status string  `json:"status"`
		Notes  *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if input.Status != "" {
		if !models.ValidStatus(models.QuoteStatuses, input.Status) {
			respondError(c, http.StatusBadRequest, "Invalid status value")
			return
		}
		req.Status = input.Status
	}
	if input.Notes != nil {
		req.Notes = *input.Notes
	}
	req.UpdatedAt = time.Now()

	if err := h.leads.SaveQuote(req); err != nil {
		respondServerError(c, "Error updating quote request", err)
		return
	}
	respondData(c, http.StatusOK, req)
}

// DELETE /api/quote-requests/:id (admin)
func (h *LeadsHandler) DeleteQuote(c *gin.Context) {
	req, ok := h.findQuote(c)
	if !ok {
		return
	}
	if err := h.leads.DeleteQuote(req.ID); err != nil {
		respondServerError(c, "Error deleting quote request", err)
		return
	}
	respondMessage(c, http.StatusOK, "Quote request deleted successfully")
}

// GET /api/quote-requests/:id/pdf (admin)
func (h *LeadsHandler) QuotePDF(c *gin.Context) {
	req, ok := h.findQuote(c)
	if !ok {
		return
	}

	pdf, err := services.RenderQuotePDF(*req)
	if err != nil {
		respondServerError(c, "Error generating PDF", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="quote-request-`+req.ID.String()+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *LeadsHandler) findQuote(c *gin.Context) (*models.QuoteRequest, bool) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusNotFound, "Quote request not found")
		return nil, false
	}
	req, err := h.leads.GetQuote(id)
	if err == gocql.ErrNotFound {
		respondError(c, http.StatusNotFound, "Quote request not found")
		return nil, false
	}
	if err != nil {
		respondServerError(c, "Error fetching quote request", err)
		return nil, false
	}
	return req, true
}
