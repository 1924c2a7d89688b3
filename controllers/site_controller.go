package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"homestay-backend/config"
	"homestay-backend/utils"
)

type SiteController struct {
	site config.Site
}

func NewSiteController(site config.Site) *SiteController {
	return &SiteController{site: site}
}

// GetSite handles GET /api/site: the centralized content the pages consume.
// The raw WhatsApp number stays server-side; clients get the chat link.
func (sc *SiteController) GetSite(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"name":         sc.site.Name,
		"tagline":      sc.site.Tagline,
		"address":      sc.site.Address,
		"email":        sc.site.Email,
		"phone":        sc.site.Phone,
		"whatsappLink": utils.WhatsAppChatLink(sc.site.WhatsAppNumber),
		"currency":     sc.site.Currency,
		"nightlyRate":  sc.site.DefaultNightlyRate,
		"gstPercent":   sc.site.GSTPercent,
	})
}
