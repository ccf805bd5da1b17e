package jsonwalk_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/icloudza/jsonwalk"
	"github.com/icloudza/jsonwalk/pathmeta"
	"github.com/icloudza/jsonwalk/walker"
)

// 文件协作者可以替换成网络来源：直接把响应体交给 WalkReader
func TestExample_FromHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"slideshow": {"title": "Sample Slide Show", "slides": [{"title": "Wake up"}]}}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
	req.Header.Set("Accept", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	titles := map[string]string{}
	h := pathmeta.Handlers(func(path string, key walker.Key, value any, _ jsonwalk.Category) error {
		if s, ok := value.(string); ok && key.Name() == "title" {
			titles[path] = s
		}
		return nil
	})
	if err := jsonwalk.WalkReader(resp.Body, h, ""); err != nil {
		t.Fatal(err)
	}
	if titles["slideshow.title"] != "Sample Slide Show" || titles["slideshow.slides.0.title"] != "Wake up" {
		t.Fatalf("unexpected titles: %v", titles)
	}
}
