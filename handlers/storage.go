package handlers

import (
	"net/http"

	"devmitra/services/storage"
	"devmitra/utils"

	"github.com/gin-gonic/gin"
)

// StorageHandler exposes the media upload endpoint.
type StorageHandler struct {
	Service storage.StorageService
}

func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{Service: svc}
}

// UploadProfile handles POST /api/upload/profile.
func (h *StorageHandler) UploadProfile(c *gin.Context) {
	h.upload(c, "devmitra/profiles")
}

// UploadPuja handles POST /api/upload/puja.
func (h *StorageHandler) UploadPuja(c *gin.Context) {
	h.upload(c, "devmitra/pujas")
}

// UploadHome handles POST /api/upload/home.
func (h *StorageHandler) UploadHome(c *gin.Context) {
	h.upload(c, "devmitra/home")
}

// upload reads the image from the multipart form field "file" and stores it
// in the given folder.
func (h *StorageHandler) upload(c *gin.Context, folder string) {
	file, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", "file is required")
		return
	}

	url, err := h.Service.UploadImage(c.Request.Context(), file, folder)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
