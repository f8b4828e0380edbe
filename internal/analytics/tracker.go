package analytics

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Tracker queues visits and writes them from a single worker so that
// request handlers never wait on the database.
type Tracker struct {
	store  *Store
	logger *zap.Logger
	salt   string
	queue  chan Visit
	now    func() time.Time

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

// NewTracker starts the background writer. queueSize bounds how many
// visits may be pending; beyond that new visits are dropped.
func NewTracker(store *Store, logger *zap.Logger, queueSize int) *Tracker {
	if queueSize <= 0 {
		queueSize = 1
	}
	t := &Tracker{
		store:  store,
		logger: logger,
		salt:   newSalt(),
		queue:  make(chan Visit, queueSize),
		now:    time.Now,
		done:   make(chan struct{}),
	}
	go t.run()
	return t
}

func newSalt() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic("analytics: reading random salt: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// HashIP returns a salted, truncated digest of ip. The salt lives only
// in this process, so digests cannot be linked across restarts.
func (t *Tracker) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + t.salt))
	return hex.EncodeToString(sum[:])[:16]
}

func (t *Tracker) run() {
	defer close(t.done)
	for v := range t.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := t.store.Record(ctx, v); err != nil {
			t.logger.Warn("recording visit", zap.Error(err), zap.String("path", v.Path))
		}
		cancel()
	}
}

// Track queues a visit for the request in c unless the visitor opted
// out with DNT.
func (t *Tracker) Track(c *gin.Context, kind Kind, lang string) {
	if c.GetHeader("DNT") == "1" {
		return
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.closed {
		return
	}
	v := Visit{
		HashedIP:  t.HashIP(c.ClientIP()),
		UserAgent: c.GetHeader("User-Agent"),
		Path:      c.Request.URL.Path,
		Kind:      kind,
		Lang:      lang,
		Timestamp: t.now(),
	}
	select {
	case t.queue <- v:
	default:
		t.logger.Debug("analytics queue full, dropping visit", zap.String("path", v.Path))
	}
}

// Middleware counts successful page requests: "/" and *.html. Assets
// are never counted; paths in skip are left to their own handlers.
func (t *Tracker) Middleware(skip ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.Request.URL.Path
		if c.Request.Method != "GET" || c.Writer.Status() != 200 || shouldSkip(path, skip) {
			return
		}
		t.Track(c, KindPage, c.GetString("lang"))
	}
}

func shouldSkip(path string, skip []string) bool {
	if slices.Contains(skip, path) {
		return true
	}
	return path != "/" && !strings.HasSuffix(path, ".html")
}

// Close stops accepting visits and waits for queued ones to be written.
func (t *Tracker) Close() {
	t.mu.Lock()
	if !t.closed {
		t.closed = true
		close(t.queue)
	}
	t.mu.Unlock()
	<-t.done
}
