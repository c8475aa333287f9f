package httpserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"walk4you-storefront/internal/domain"
	"walk4you-storefront/internal/service/upload"
)

// signUploadHandler issues signed upload tickets. The destination folder is
// user/{username}/{type} when both query params are present, the explicit
// folder param otherwise, and the generic uploads bucket as the fallback.
// The response never contains the provider secret.
func signUploadHandler(logger *log.Logger, issuer upload.TicketIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		dest := upload.Destination{
			Username: c.Query("username"),
			Purpose:  c.Query("type"),
			Folder:   c.Query("folder"),
		}

		ticket, err := issuer.RequestTicket(c.Request.Context(), dest)
		if err != nil {
			if errors.Is(err, domain.ErrNotConfigured) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Cloudinary env not configured"})
				return
			}
			logger.Printf("sign upload: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign upload"})
			return
		}

		c.JSON(http.StatusOK, ticket)
	}
}
