package tenant

import (
	"github.com/gin-gonic/gin"

	"github.com/seminar-portal/backend/pkg/response"
)

// Handler exposes resolved tenant configuration to authenticated admins.
type Handler struct {
	resolver *Resolver
}

// NewHandler creates a tenant handler.
func NewHandler(resolver *Resolver) *Handler {
	return &Handler{resolver: resolver}
}

// Get handles GET /admin/:tenant/config. An unknown key and a tenant whose
// spreadsheet is not configured look the same from outside: not found.
func (h *Handler) Get(c *gin.Context) {
	key := c.Param("tenant")
	cfg, ok := h.resolver.Resolve(key)
	if !ok {
		response.NotFound(c, "unknown tenant")
		return
	}
	mc := h.resolver.ResolveMailConfig(key)
	response.OK(c, gin.H{
		"key":                   cfg.Key,
		"label":                 Label(cfg.Key),
		"master_spreadsheet_id": cfg.MasterSpreadsheetID,
		"drive_folder_id":       cfg.DriveFolderID,
		"mail": gin.H{
			"from_name":     mc.FromName,
			"from_email":    mc.FromEmail,
			"contact_email": mc.ContactEmail,
		},
	})
}
