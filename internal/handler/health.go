package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Health devolve o health check em JSON. Quando o backend de persistência é
// Redis, valida a conectividade; no backend de arquivo não há dependência
// externa a checar.
func Health(storageBackend string, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		storageStatus := "ok"
		status := http.StatusOK

		if rdb != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
			defer cancel()
			if rdb.Ping(ctx).Err() != nil {
				storageStatus = "error"
				status = http.StatusServiceUnavailable
			}
		}

		c.JSON(status, gin.H{
			"ok":      status == http.StatusOK,
			"storage": gin.H{"backend": storageBackend, "status": storageStatus},
		})
	}
}
