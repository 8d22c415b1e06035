package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vflorencio/radar-leads/internal/entity"
)

// SearchCache guarda resultados da busca do Places no Redis.
// A cota da API do Google é paga por requisição; repetir a mesma
// busca dentro do TTL sai do cache.
type SearchCache struct {
	client *redis.Client
	ttl    time.Duration
}

const defaultTTL = 15 * time.Minute

func NewSearchCache(redisURL string) (*SearchCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &SearchCache{client: client, ttl: defaultTTL}, nil
}

func NewSearchCacheWithClient(client *redis.Client) *SearchCache {
	return &SearchCache{client: client, ttl: defaultTTL}
}

func (c *SearchCache) Close() error {
	return c.client.Close()
}

func (c *SearchCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// key normaliza a query: a mesma busca com caixa ou espaços diferentes
// bate na mesma entrada. A chave não carrega a query em claro porque
// pode conter a localização do usuário.
func (c *SearchCache) key(userID, query string) string {
	normalized := strings.ToLower(strings.Join(strings.Fields(query), " "))
	sum := sha256.Sum256([]byte(normalized))
	return "search:" + userID + ":" + hex.EncodeToString(sum[:8])
}

// Get devolve (resultados, true) no hit; (nil, false) no miss.
func (c *SearchCache) Get(ctx context.Context, userID, query string) ([]entity.Business, bool) {
	str, err := c.client.Get(ctx, c.key(userID, query)).Result()
	if err != nil {
		// redis.Nil é miss; qualquer outro erro também vira miss,
		// a busca segue direto para a API.
		return nil, false
	}

	var businesses []entity.Business
	if err := json.Unmarshal([]byte(str), &businesses); err != nil {
		return nil, false
	}
	return businesses, true
}

func (c *SearchCache) Set(ctx context.Context, userID, query string, businesses []entity.Business) error {
	data, err := json.Marshal(businesses)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(userID, query), data, c.ttl).Err()
}
