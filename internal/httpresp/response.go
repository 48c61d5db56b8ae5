// Package httpresp writes the success envelopes shared by the JSON API.
package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// List writes {key: items, count, success}. A nil slice is sent as [].
func List[T any](c *gin.Context, key string, items []T) {
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, gin.H{
		key:       items,
		"count":   len(items),
		"success": true,
	})
}

// Item writes {key: v, success} with the given status.
func Item(c *gin.Context, status int, key string, v any) {
	c.JSON(status, gin.H{
		key:       v,
		"success": true,
	})
}

func OK(c *gin.Context, key string, v any) {
	Item(c, http.StatusOK, key, v)
}

func Created(c *gin.Context, key string, v any) {
	Item(c, http.StatusCreated, key, v)
}
