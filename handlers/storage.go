package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chamba/services/storage"
	"chamba/utils"
)

// allowedDocumentKinds restricts uploads to the two documents the wizard
// collects.
var allowedDocumentKinds = map[string]bool{
	"study-certificate": true,
	"payment-qr":        true,
}

// UploadDocumentHandler accepts a base64-encoded document, stores it, and
// returns the public URL for the wizard draft.
func UploadDocumentHandler(storageSvc storage.StorageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()

		kind := c.Param("kind")
		if !allowedDocumentKinds[kind] {
			utils.JSONError(c, http.StatusBadRequest, "invalid document kind; allowed values are 'study-certificate' and 'payment-qr'", "")
			return
		}

		var req struct {
			Data string `json:"data" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "data is required", err.Error())
			return
		}

		title := kind + "-" + c.GetString("studentID")
		url, err := storageSvc.UploadBase64(c.Request.Context(), req.Data, title)
		if err != nil {
			logger.Error("Document upload failed", zap.String("kind", kind), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to upload document", err.Error())
			return
		}

		c.JSON(http.StatusOK, gin.H{"url": url})
	}
}
