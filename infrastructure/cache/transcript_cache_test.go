package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"youtube-summarizer/domain/model"
	"youtube-summarizer/infrastructure/cache"
)

// With no Redis client the cache degrades to a no-op: every Get is a miss
// and Set succeeds silently.
func TestTranscriptCache_NilClient(t *testing.T) {
	c := cache.NewTranscriptCache(nil)
	ctx := context.Background()

	transcript, err := c.Get(ctx, "abc123def45", "en")
	require.NoError(t, err)
	assert.Nil(t, transcript)

	err = c.Set(ctx, &model.Transcript{VideoID: "abc123def45", Language: "en", Text: "hello"}, time.Hour)
	assert.NoError(t, err)
}
