package utils

import "github.com/gin-gonic/gin"

// Envelope is the uniform response wrapper for every endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func SendSuccess(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

func SendError(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{Success: false, Message: message})
}

func SendValidationError(c *gin.Context, errs []FieldError) {
	c.JSON(400, Envelope{Success: false, Message: "Validation error", Data: errs})
}
