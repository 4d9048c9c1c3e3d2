package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey é a chave do contexto Gin onde o ID da requisição fica
// disponível para os demais middlewares.
const RequestIDKey = "request_id"

// RequestID gera (ou propaga) um identificador único por requisição e o
// devolve no header X-Request-ID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
