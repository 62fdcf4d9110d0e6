package handlers

import (
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"strings"

	"github.com/nfnt/resize"
	"github.com/rs/zerolog/log"
)

const imageHeight = 500

// FetchImage fetches a hot-linked recipe photo, resizes it to a fixed height
// preserving aspect ratio, and streams it back.
func FetchImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		imageURL := r.URL.Query().Get("url")
		if imageURL == "" {
			writeMessage(w, http.StatusBadRequest, false, "Missing 'url' query parameter")
			return
		}

		resp, err := http.Get(imageURL)
		if err != nil {
			log.Error().Err(err).Str("url", imageURL).Msg("failed to fetch image")
			writeMessage(w, http.StatusInternalServerError, false, "Failed to fetch image")
			return
		}
		defer resp.Body.Close()

		img, format, err := image.Decode(resp.Body)
		if err != nil {
			writeMessage(w, http.StatusInternalServerError, false, "Failed to decode image")
			return
		}

		bounds := img.Bounds()
		aspectRatio := float64(bounds.Dx()) / float64(bounds.Dy())
		newWidth := uint(float64(imageHeight) * aspectRatio)
		resized := resize.Resize(newWidth, imageHeight, img, resize.Lanczos3)

		w.Header().Set("Content-Type", "image/"+format)

		switch strings.ToLower(format) {
		case "jpeg", "jpg":
			err = jpeg.Encode(w, resized, nil)
		case "png":
			err = png.Encode(w, resized)
		default:
			writeMessage(w, http.StatusUnsupportedMediaType, false, "Unsupported image format")
			return
		}
		if err != nil {
			log.Error().Err(err).Msg("failed to encode image")
		}
	}
}
