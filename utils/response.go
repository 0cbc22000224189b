package utils

import "github.com/gin-gonic/gin"

// JSONData writes the success envelope the frontend unwraps: {"data": T}.
func JSONData(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"data": data})
}

// JSONPage wraps a paginated list inside the data envelope.
func JSONPage(c *gin.Context, code int, items interface{}, total int64, page, pageSize int) {
	c.JSON(code, gin.H{"data": gin.H{
		"items":    items,
		"total":    total,
		"page":     page,
		"pageSize": pageSize,
	}})
}

// JSONError writes the structured error envelope: {"error": {"code", "message"}}.
func JSONError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{"error": gin.H{"code": code, "message": message}})
}
