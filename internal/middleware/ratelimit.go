package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// Janela fixa via INCR + PEXPIRE atômicos
var rateLimitScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// RateLimitMiddleware limita requisições por IP nas rotas públicas/webhooks.
// Sem redis configurado (ou com redis fora do ar) a rota segue aberta —
// webhook de telefonia nunca pode cair por causa do limiter.
func RateLimitMiddleware(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	if limit <= 0 {
		limit = 60
	}
	if window <= 0 {
		window = time.Minute
	}

	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := "rl:" + c.FullPath() + ":" + c.ClientIP()

		res, err := rateLimitScript.Run(
			c.Request.Context(),
			rdb,
			[]string{key},
			window.Milliseconds(),
		).Int64()

		if err != nil {
			log.Println("rate limiter error:", err)
			c.Next()
			return
		}

		if res > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error_code": "rate_limited",
				"message":    "Muitas requisições. Tente novamente em instantes.",
			})
			return
		}

		c.Next()
	}
}
