package utils

import "github.com/gin-gonic/gin"

// RespondError writes the flat error body the dashboard expects. Driver
// messages are passed through as-is.
func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, gin.H{"error": err.Error()})
}

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// RespondJSON is the envelope used by the /auth endpoints. The /api
// resources return bare rows instead.
func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}
