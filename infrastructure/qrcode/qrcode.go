package qrcode

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/prasetyowira/starsign/constant"
	"github.com/prasetyowira/starsign/domain/payqr"
	"github.com/prasetyowira/starsign/infrastructure/logger"
	"github.com/prasetyowira/starsign/infrastructure/logo"
	"github.com/skip2/go-qrcode"
)

// Renderer turns request URIs into QR code images
type Renderer struct {
	asset    *logo.Asset
	validate *validator.Validate
	create   func(name string) (io.WriteCloser, error)
}

// NewRenderer creates a renderer. asset may be nil, in which case renders
// that ask for a logo fail with payqr.ErrInvalidConfiguration.
func NewRenderer(asset *logo.Asset) *Renderer {
	v := validator.New()
	if err := v.RegisterValidation("output_format", validateOutputFormat); err != nil {
		panic(fmt.Sprintf("registering output_format validation: %v", err))
	}

	return &Renderer{
		asset:    asset,
		validate: v,
		create: func(name string) (io.WriteCloser, error) {
			return os.Create(name)
		},
	}
}

// MakeQR encodes uri at error correction level M. The library picks the
// smallest version that fits, so equal input always yields the same matrix.
func MakeQR(uri string) (*qrcode.QRCode, error) {
	return qrcode.New(uri, qrcode.Medium)
}

// Render encodes uri as a QR code and rasterizes it according to opts. When
// opts.Write is set the image is also written to opts.OutputFilename().
func (r *Renderer) Render(ctx context.Context, uri string, opts payqr.Options) (*payqr.Rendered, error) {
	start := time.Now()

	kind, err := r.check(opts)
	if err != nil {
		logger.CtxWarn(ctx, "Rejected render options", logger.LoggerInfo{
			ContextFunction: constant.CtxRender,
			Error: &logger.CustomError{
				Code:    constant.ErrCodeRenderOptions,
				Message: err.Error(),
				Type:    constant.ErrTypeValidation,
			},
			Data: map[string]interface{}{
				constant.DataFormat:   opts.Format.String(),
				constant.DataLogo:     opts.Logo,
				constant.DataLogoSize: opts.LogoSize,
			},
		})
		return nil, err
	}

	q, err := MakeQR(uri)
	if err != nil {
		logger.CtxError(ctx, "Failed to encode QR code", logger.LoggerInfo{
			ContextFunction: constant.CtxMakeQR,
			Error: &logger.CustomError{
				Code:    constant.ErrCodeQREncode,
				Message: err.Error(),
				Type:    constant.ErrTypeRender,
			},
			Data: map[string]interface{}{
				constant.DataURI: uri,
			},
		})
		return nil, fmt.Errorf("encoding QR code: %w", err)
	}

	out := &payqr.Rendered{Kind: kind, Format: opts.Format}
	switch kind {
	case payqr.KindBitmap:
		out.Raster = q.Image(-opts.ModuleSize)
	case payqr.KindLogoBitmap:
		out.Raster = r.composite(q.Image(-opts.ModuleSize), opts.LogoSize)
	case payqr.KindVector:
		out.Vector = vector(q.Bitmap(), opts.ModuleSize)
	}

	logger.CtxDebug(ctx, "QR code rendered", logger.LoggerInfo{
		ContextFunction: constant.CtxRender,
		Data: map[string]interface{}{
			constant.DataKind:       kind.String(),
			constant.DataVersion:    q.VersionNumber,
			constant.DataModuleSize: opts.ModuleSize,
			constant.DataElapsed:    time.Since(start).String(),
		},
	})

	if opts.Write {
		if err := r.writeFile(ctx, opts.OutputFilename(), out); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// check validates opts and resolves the output kind
func (r *Renderer) check(opts payqr.Options) (payqr.Kind, error) {
	if err := r.validate.Struct(opts); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			if fe.Field() == "Format" {
				return 0, fmt.Errorf("%w: %s: %s", payqr.ErrInvalidConfiguration, constant.ErrUnknownFormat, opts.Format)
			}
			return 0, fmt.Errorf("%w: %s must satisfy %s=%s, got %v",
				payqr.ErrInvalidConfiguration, fe.Field(), fe.Tag(), fe.Param(), fe.Value())
		}
		return 0, fmt.Errorf("%w: %v", payqr.ErrInvalidConfiguration, err)
	}

	kind, err := opts.Kind()
	if err != nil {
		return 0, err
	}

	if kind == payqr.KindLogoBitmap && r.asset == nil {
		return 0, fmt.Errorf("%w: %s", payqr.ErrInvalidConfiguration, constant.ErrLogoMissing)
	}

	return kind, nil
}

// composite converts src to 8-bit grayscale and pastes the logo, resized to
// size x size, at its centre. The position is not clamped; parts of a logo
// larger than the code fall outside the canvas and are dropped.
func (r *Renderer) composite(src image.Image, size int) *image.Gray {
	bounds := src.Bounds()
	gray := image.NewGray(bounds)
	draw.Draw(gray, bounds, src, bounds.Min, draw.Src)

	resized := r.asset.Resized(size)
	at := image.Pt(bounds.Dx()/2-size/2, bounds.Dy()/2-size/2).Add(bounds.Min)
	draw.Draw(gray, image.Rectangle{Min: at, Max: at.Add(resized.Bounds().Size())}, resized, image.Point{}, draw.Src)

	return gray
}

// writeFile encodes img into a new file called name. The file is closed on
// every path; a close error is reported only if encoding succeeded.
func (r *Renderer) writeFile(ctx context.Context, name string, img *payqr.Rendered) (err error) {
	f, err := r.create(name)
	if err != nil {
		logger.CtxError(ctx, "Failed to create output file", logger.LoggerInfo{
			ContextFunction: constant.CtxWriteFile,
			Error: &logger.CustomError{
				Code:    constant.ErrCodeFileCreate,
				Message: err.Error(),
				Type:    constant.ErrTypeIO,
			},
			Data: map[string]interface{}{
				constant.DataFilename: name,
			},
		})
		return fmt.Errorf("creating %s: %w", name, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			logger.CtxError(ctx, "Failed to close output file", logger.LoggerInfo{
				ContextFunction: constant.CtxWriteFile,
				Error: &logger.CustomError{
					Code:    constant.ErrCodeFileClose,
					Message: cerr.Error(),
					Type:    constant.ErrTypeIO,
				},
				Data: map[string]interface{}{
					constant.DataFilename: name,
				},
			})
			err = fmt.Errorf("closing %s: %w", name, cerr)
		}
	}()

	if err := img.Encode(f); err != nil {
		logger.CtxError(ctx, "Failed to encode output file", logger.LoggerInfo{
			ContextFunction: constant.CtxWriteFile,
			Error: &logger.CustomError{
				Code:    constant.ErrCodeFileEncode,
				Message: err.Error(),
				Type:    constant.ErrTypeIO,
			},
			Data: map[string]interface{}{
				constant.DataFilename: name,
			},
		})
		return fmt.Errorf("encoding %s: %w", name, err)
	}

	logger.CtxInfo(ctx, constant.MsgImageWritten, logger.LoggerInfo{
		ContextFunction: constant.CtxWriteFile,
		Data: map[string]interface{}{
			constant.DataFilename: name,
			constant.DataFormat:   img.Format.String(),
		},
	})

	return nil
}

func validateOutputFormat(fl validator.FieldLevel) bool {
	switch payqr.Format(fl.Field().Int()) {
	case payqr.FormatPNG, payqr.FormatSVG:
		return true
	}
	return false
}
