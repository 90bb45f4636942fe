package handlers

import (
	"github.com/gin-gonic/gin"
)

func getOwnerID(c *gin.Context) string {
	v, ok := c.Get("user_id")
	if !ok {
		return ""
	}
	id, _ := v.(string)
	return id
}
