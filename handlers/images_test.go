package handlers

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func servePNG(t *testing.T, width, height int) *httptest.Server {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(buf.Bytes())
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchImage_ResizesToFixedHeight(t *testing.T) {
	env := newTestEnv(t)
	srv := servePNG(t, 100, 50)

	rec := env.do(t, http.MethodGet, "/api/v1/image?url="+url.QueryEscape(srv.URL), nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))

	resized, _, err := image.Decode(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, imageHeight, resized.Bounds().Dy())
	// 2:1 aspect ratio is preserved.
	assert.Equal(t, 2*imageHeight, resized.Bounds().Dx())
}

func TestFetchImage_MissingURL(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/image", nil, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFetchImage_NotAnImage(t *testing.T) {
	env := newTestEnv(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("plain text"))
	}))
	t.Cleanup(srv.Close)

	rec := env.do(t, http.MethodGet, "/api/v1/image?url="+url.QueryEscape(srv.URL), nil, "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
