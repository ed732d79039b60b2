package middleware

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type cacheEntry struct {
	Content    []byte
	Expiration time.Time
}

type memoryCache struct {
	sync.RWMutex
	items map[string]cacheEntry
}

var responseCache = &memoryCache{
	items: make(map[string]cacheEntry),
}

func cacheKey(c *gin.Context) string {
	path := c.Request.URL.Path

	queryParams := c.Request.URL.Query()
	var queryKeys []string
	for key := range queryParams {
		queryKeys = append(queryKeys, key)
	}
	sort.Strings(queryKeys)

	key := path + "?"
	for _, k := range queryKeys {
		values := queryParams[k]
		sort.Strings(values)
		for _, v := range values {
			key += k + "=" + v + "&"
		}
	}

	hasher := md5.New()
	hasher.Write([]byte(key))
	return hex.EncodeToString(hasher.Sum(nil))
}

// CacheResponse caches successful GET responses for the given duration,
// keyed on path plus sorted query string. Used on the read-heavy visit
// statistics routes; the aggregates only move on supplier check-ins so a
// short window is safe.
func CacheResponse(expiration time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := cacheKey(c)

		responseCache.RLock()
		entry, found := responseCache.items[key]
		responseCache.RUnlock()

		if found && entry.Expiration.After(time.Now()) {
			c.Data(http.StatusOK, "application/json; charset=utf-8", entry.Content)
			c.Abort()
			return
		}

		writer := &responseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = writer

		c.Next()

		if c.Writer.Status() == http.StatusOK {
			responseCache.Lock()
			responseCache.items[key] = cacheEntry{
				Content:    writer.body.Bytes(),
				Expiration: time.Now().Add(expiration),
			}
			responseCache.Unlock()
		}
	}
}

// PurgeResponseCache drops all cached responses
func PurgeResponseCache() {
	responseCache.Lock()
	responseCache.items = make(map[string]cacheEntry)
	responseCache.Unlock()
}

// responseWriter captures the response body while it is written
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

func init() {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()
			responseCache.Lock()
			for key, entry := range responseCache.items {
				if entry.Expiration.Before(now) {
					delete(responseCache.items, key)
				}
			}
			responseCache.Unlock()
		}
	}()
}
