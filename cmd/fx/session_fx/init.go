package session_fx

import (
	"log"
	"os"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"voyago/internal/repositories"
)

var Module = fx.Provide(
	provideSessionStore)

// provideSessionStore picks Redis when REDIS_ADDR is set, otherwise the
// in-process store. Both carry the same TTL semantics.
func provideSessionStore() repositories.SessionStore {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set, using in-memory session store")
		return repositories.NewMemorySessionStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	log.Printf("Using Redis session store at %s", addr)
	return repositories.NewRedisSessionStore(client)
}
