package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Every store round trip gets its own deadline.
const storeTimeout = 10 * time.Second

// respondError writes the standard failure envelope.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}
