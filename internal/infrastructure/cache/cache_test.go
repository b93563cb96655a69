package cache

import (
	"testing"

	"wdr/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestOptions(t *testing.T) {
	opts := Options(config.RedisConfig{Host: "redis", Port: "6380", Password: "pw", DB: "3"}, "wdr-api")
	assert.Equal(t, "redis:6380", opts.Addr)
	assert.Equal(t, "pw", opts.Password)
	assert.Equal(t, 3, opts.DB)
	assert.NotNil(t, opts.OnConnect)
}

func TestOptions_BadDBIndex(t *testing.T) {
	opts := Options(config.RedisConfig{Host: "localhost", Port: "6379", DB: "x"}, "wdr-api")
	assert.Equal(t, 0, opts.DB)
}
