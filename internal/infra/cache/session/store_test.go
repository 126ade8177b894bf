package session

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appsession "github.com/m04kA/WJL-TicketService/internal/session"
)

func TestKey(t *testing.T) {
	s := NewStore(nil, "wjl:session:")
	assert.Equal(t, "wjl:session:abc", s.key("abc"))
}

func TestConnect_InvalidURL(t *testing.T) {
	_, err := Connect(context.Background(), "not-a-redis-url")
	assert.Error(t, err)
}

func TestSave_UnreachableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	err := NewStore(client, "wjl:session:").Save(context.Background(), appsession.Record{ID: "abc"}, time.Minute)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "set session")
}
