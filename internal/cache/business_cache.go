package cache

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// BusinessCache guarda o mapeamento número discado → empresa para o caminho
// quente do webhook de voz. Redis ausente = cache desligado (sempre miss).
type BusinessCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewBusinessCache(rdb *redis.Client) *BusinessCache {
	return &BusinessCache{
		rdb: rdb,
		ttl: 10 * time.Minute,
	}
}

func key(number string) string {
	return "biz:number:" + number
}

func (c *BusinessCache) GetID(ctx context.Context, number string) (uint, bool) {
	if c == nil || c.rdb == nil || number == "" {
		return 0, false
	}

	val, err := c.rdb.Get(ctx, key(number)).Result()
	if err != nil {
		return 0, false
	}

	id, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, false
	}

	return uint(id), true
}

func (c *BusinessCache) PutID(ctx context.Context, number string, id uint) {
	if c == nil || c.rdb == nil || number == "" {
		return
	}

	if err := c.rdb.Set(ctx, key(number), strconv.FormatUint(uint64(id), 10), c.ttl).Err(); err != nil {
		log.Println("business cache set error:", err)
	}
}

// Invalidate limpa a entrada quando o número da empresa muda
func (c *BusinessCache) Invalidate(ctx context.Context, number string) {
	if c == nil || c.rdb == nil || number == "" {
		return
	}

	if err := c.rdb.Del(ctx, key(number)).Err(); err != nil {
		log.Println("business cache del error:", err)
	}
}
