// Package handlers is made to handle requests
package handlers

import (
	"errors"
	"net/http"

	"cipher-backend/caesar"
	"cipher-backend/models"
	"cipher-backend/vigenere"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type CipherHandler struct {
	logger *zap.SugaredLogger
}

func NewCipherHandler(logger *zap.SugaredLogger) *CipherHandler {
	return &CipherHandler{
		logger: logger,
	}
}

func (h *CipherHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Cipher API is running",
		"version": "1.0.0",
	})
}

func (h *CipherHandler) Encrypt(c *gin.Context) {
	h.runVigenere(c, vigenere.DirEncrypt)
}

func (h *CipherHandler) Decrypt(c *gin.Context) {
	h.runVigenere(c, vigenere.DirDecrypt)
}

func (h *CipherHandler) runVigenere(c *gin.Context, dir vigenere.Direction) {
	var req models.CipherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Message: "Invalid request body: " + err.Error(),
		})
		return
	}

	result, err := vigenere.Transform(req.Message, req.Key, dir)
	if err != nil {
		h.rejectKey(c, err)
		return
	}

	h.logger.Infow("message transformed",
		"direction", directionName(dir),
		"message_len", len(req.Message),
	)

	c.JSON(http.StatusOK, models.CipherResponse{
		Success: true,
		Message: "Message transformed successfully",
		Result:  result,
	})
}

// Transform is the explicit-direction variant of Encrypt/Decrypt.
func (h *CipherHandler) Transform(c *gin.Context) {
	var req models.TransformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// A validator error means the body parsed but the direction
		// field is missing or not one of the two allowed values.
		msg := "Invalid request body: " + err.Error()
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			msg = "Direction must be either \"encrypt\" or \"decrypt\""
		}
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Message: msg,
		})
		return
	}

	dir := vigenere.DirEncrypt
	if req.Direction == "decrypt" {
		dir = vigenere.DirDecrypt
	}

	result, err := vigenere.Transform(req.Message, req.Key, dir)
	if err != nil {
		h.rejectKey(c, err)
		return
	}

	h.logger.Infow("message transformed",
		"direction", req.Direction,
		"message_len", len(req.Message),
	)

	c.JSON(http.StatusOK, models.CipherResponse{
		Success: true,
		Message: "Message transformed successfully",
		Result:  result,
	})
}

func (h *CipherHandler) CaesarEncrypt(c *gin.Context) {
	h.runCaesar(c, false)
}

func (h *CipherHandler) CaesarDecrypt(c *gin.Context) {
	h.runCaesar(c, true)
}

func (h *CipherHandler) runCaesar(c *gin.Context, reverse bool) {
	var req models.CaesarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Message: "Invalid request body: " + err.Error(),
		})
		return
	}

	result := caesar.Encrypt(req.Message, req.Offset)
	if reverse {
		result = caesar.Decrypt(req.Message, req.Offset)
	}

	c.JSON(http.StatusOK, models.CipherResponse{
		Success: true,
		Message: "Message transformed successfully",
		Result:  result,
	})
}

// rejectKey maps the cipher's key validation failure to a 400. The
// cipher has no other error condition.
func (h *CipherHandler) rejectKey(c *gin.Context, err error) {
	var keyErr *vigenere.InvalidKeyError
	if errors.As(err, &keyErr) {
		h.logger.Warnw("key rejected", "reason", keyErr.Reason)
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Message: "Invalid key: " + keyErr.Reason,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, models.CipherResponse{
		Success: false,
		Message: err.Error(),
	})
}

func directionName(dir vigenere.Direction) string {
	if dir == vigenere.DirDecrypt {
		return "decrypt"
	}
	return "encrypt"
}
