package app

import (
	"bytes"
	"fmt"

	"gamevault/internal/media/domain"

	"github.com/disintegration/imaging"
)

// cropSquare decodes jpeg, png or gif data, center crops it to size x size and encodes it as jpeg
func cropSquare(data []byte, size int) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNotImage, err)
	}

	square := imaging.Fill(img, size, size, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, square, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), nil
}
