// Package logo holds the image that gets composited onto the centre of
// QR codes.
package logo

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/prasetyowira/starsign/constant"
	appLogger "github.com/prasetyowira/starsign/infrastructure/logger"
)

//go:embed assets/stellar_logo.png
var stellarLogo []byte

// Asset is a read-only logo image. It is safe to share between renders;
// nothing ever draws into the source image.
type Asset struct {
	src image.Image
}

// FromImage wraps img. The caller must not modify img afterwards.
func FromImage(img image.Image) *Asset {
	return &Asset{src: img}
}

// Default returns the Stellar logo bundled with the binary
func Default() (*Asset, error) {
	return Decode(bytes.NewReader(stellarLogo))
}

// Load opens a logo image from disk
func Load(path string) (*Asset, error) {
	img, err := imaging.Open(path)
	if err != nil {
		appLogger.Error("Failed to open logo", appLogger.LoggerInfo{
			ContextFunction: constant.CtxLogo,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeLogoOpen,
				Message: err.Error(),
				Type:    constant.ErrTypeAsset,
			},
			Data: map[string]interface{}{
				constant.DataPath: path,
			},
		})
		return nil, fmt.Errorf("opening logo %s: %w", path, err)
	}

	appLogger.Debug("Logo loaded", appLogger.LoggerInfo{
		ContextFunction: constant.CtxLogo,
		Data: map[string]interface{}{
			constant.DataPath:   path,
			constant.DataWidth:  img.Bounds().Dx(),
			constant.DataHeight: img.Bounds().Dy(),
		},
	})

	return &Asset{src: img}, nil
}

// Decode reads a logo image from r
func Decode(r io.Reader) (*Asset, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		appLogger.Error("Failed to decode logo", appLogger.LoggerInfo{
			ContextFunction: constant.CtxLogo,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeLogoDecode,
				Message: err.Error(),
				Type:    constant.ErrTypeAsset,
			},
		})
		return nil, fmt.Errorf("decoding logo: %w", err)
	}
	return &Asset{src: img}, nil
}

// Bounds returns the size of the source image
func (a *Asset) Bounds() image.Rectangle {
	return a.src.Bounds()
}

// Resized returns a size x size copy of the logo using Lanczos resampling.
// The source image is cloned first and never touched.
func (a *Asset) Resized(size int) *image.NRGBA {
	return imaging.Resize(imaging.Clone(a.src), size, size, imaging.Lanczos)
}
