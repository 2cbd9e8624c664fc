package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseIDParam reads a positive integer id from the named path parameter.
// ok is false for anything that is not a decimal id greater than zero.
func ParseIDParam(c *gin.Context, paramName string) (uint, bool) {
	raw := c.Param(paramName)
	if raw == "" || raw[0] == '+' {
		return 0, false
	}

	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
