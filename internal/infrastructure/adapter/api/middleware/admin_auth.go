package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/dto"
)

// AdminKeyHeader authenticates operator requests
const AdminKeyHeader = "X-Admin-Key"

// AdminAuth only lets requests carrying apiKey through. With no key
// configured the operator endpoints are closed.
func AdminAuth(apiKey string, log coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader(AdminKeyHeader)
		if apiKey == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			log.Warn("Rejected operator request", map[string]any{
				"path":      c.Request.URL.Path,
				"client_ip": c.ClientIP(),
				"key_sent":  provided != "",
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
				Message: "Missing or invalid " + AdminKeyHeader,
			})
			return
		}
		c.Next()
	}
}
