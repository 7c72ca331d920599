// Package scan reads QR codes back out of images, used to check that a
// rendered request still decodes to the URI it was built from.
package scan

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
	"github.com/prasetyowira/starsign/constant"
	appLogger "github.com/prasetyowira/starsign/infrastructure/logger"
)

// DecodeFile opens an image file and decodes a QR code from it
func DecodeFile(path string) (string, error) {
	img, err := imaging.Open(path)
	if err != nil {
		appLogger.Error("Failed to open image", appLogger.LoggerInfo{
			ContextFunction: constant.CtxScan,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeScanOpen,
				Message: err.Error(),
				Type:    constant.ErrTypeScan,
			},
			Data: map[string]interface{}{
				constant.DataPath: path,
			},
		})
		return "", fmt.Errorf("opening image file: %w", err)
	}

	return Decode(img)
}

// Decode returns the text of the QR code in img
func Decode(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("creating bitmap: %w", err)
	}

	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER: true,
	}
	result, err := qrcode.NewQRCodeReader().Decode(bmp, hints)
	if err != nil {
		appLogger.Debug(constant.ErrNoQRCode, appLogger.LoggerInfo{
			ContextFunction: constant.CtxScan,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeScanDecode,
				Message: err.Error(),
				Type:    constant.ErrTypeScan,
			},
		})
		return "", fmt.Errorf("%s: %w", constant.ErrNoQRCode, err)
	}

	return result.GetText(), nil
}
