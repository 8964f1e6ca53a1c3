package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/luix3mo90/Deli-Bross-Manager/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Health returns a JSON health check response.
// Reports state liveness and Redis connectivity when Redis is configured.
func Health(st *store.Store, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		redisStatus := "disabled"
		if rdb != nil {
			redisStatus = "connected"
			if rdb.Ping(ctx).Err() != nil {
				redisStatus = "error"
			}
		}

		var sales, products int
		st.View(func(s *store.State) {
			sales = len(s.Sales)
			products = len(s.Products)
		})

		status := http.StatusOK
		if redisStatus == "error" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":        status == http.StatusOK,
			"redis":     redisStatus,
			"ventas":    sales,
			"productos": products,
		})
	}
}
