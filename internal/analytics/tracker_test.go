package analytics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHashIP(t *testing.T) {
	tr := NewTracker(openTestStore(t), zap.NewNop(), 8)
	defer tr.Close()

	h := tr.HashIP("203.0.113.7")
	require.Len(t, h, 16)
	require.Equal(t, h, tr.HashIP("203.0.113.7"))
	require.NotEqual(t, h, tr.HashIP("203.0.113.8"))
	require.NotContains(t, h, "203")

	other := NewTracker(openTestStore(t), zap.NewNop(), 8)
	defer other.Close()
	require.NotEqual(t, h, other.HashIP("203.0.113.7"), "salt is per tracker")
}

func TestMiddleware(t *testing.T) {
	store := openTestStore(t)
	tr := NewTracker(store, zap.NewNop(), 16)

	r := gin.New()
	r.Use(tr.Middleware("/cv"))
	r.GET("/", func(c *gin.Context) {
		c.Set("lang", "fr")
		c.String(http.StatusOK, "home")
	})
	r.GET("/styles.css", func(c *gin.Context) { c.String(http.StatusOK, "body{}") })
	r.GET("/cv", func(c *gin.Context) {
		tr.Track(c, KindDownload, "")
		c.String(http.StatusOK, "pdf")
	})

	do := func(path string, header http.Header) {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		for k, v := range header {
			req.Header[k] = v
		}
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	do("/", nil)
	do("/", http.Header{"Dnt": {"1"}})
	do("/styles.css", nil)
	do("/missing.html", nil)
	do("/cv", nil)

	tr.Close()

	sum, err := store.Summary(context.Background(), time.Now())
	require.NoError(t, err)
	require.EqualValues(t, 1, sum.PageViews)
	require.EqualValues(t, 1, sum.Downloads)
	require.EqualValues(t, 1, sum.UniqueVisitors)

	recent, err := store.Recent(context.Background(), 10)
	require.NoError(t, err)
	for _, v := range recent {
		if v.Kind == KindPage {
			require.Equal(t, "fr", v.Lang)
		}
	}

	// Closed trackers drop visits instead of panicking.
	do("/", nil)
}
