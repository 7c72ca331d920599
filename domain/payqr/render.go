package payqr

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/prasetyowira/starsign/constant"
)

// ErrInvalidConfiguration is returned for render options that cannot be
// honoured, such as an unknown format or a logo on vector output
var ErrInvalidConfiguration = errors.New(constant.ErrInvalidConfiguration)

// Format is the file format of a rendered image
type Format int

const (
	FormatPNG Format = iota
	FormatSVG
)

// ParseFormat maps "png" or "svg" to a Format. Names are case sensitive.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "png":
		return FormatPNG, nil
	case "svg":
		return FormatSVG, nil
	}
	return 0, fmt.Errorf("%w: %s: %q", ErrInvalidConfiguration, constant.ErrUnknownFormat, s)
}

// String returns the format name, which doubles as its file extension
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatSVG:
		return "svg"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Extension returns the default file extension for the format
func (f Format) Extension() string {
	return f.String()
}

// Kind is the concrete output a render produces
type Kind int

const (
	// KindBitmap is a two-colour raster
	KindBitmap Kind = iota
	// KindLogoBitmap is an 8-bit grayscale raster with a logo in the centre
	KindLogoBitmap
	// KindVector is an SVG path
	KindVector
)

func (k Kind) String() string {
	switch k {
	case KindBitmap:
		return "bitmap"
	case KindLogoBitmap:
		return "logo_bitmap"
	case KindVector:
		return "vector"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Options controls a single render. The zero value is not valid; start from
// DefaultOptions.
type Options struct {
	Format     Format `validate:"output_format"`
	Write      bool
	Filename   string
	Logo       bool
	LogoSize   int `validate:"required_if=Logo true,omitempty,gt=0"`
	ModuleSize int `validate:"gt=0"`
}

// DefaultOptions returns a PNG render without logo or file output
func DefaultOptions() Options {
	return Options{
		Format:     FormatPNG,
		LogoSize:   constant.DefaultLogoSize,
		ModuleSize: constant.DefaultModuleSize,
	}
}

// Kind resolves the output kind for the options
func (o Options) Kind() (Kind, error) {
	switch o.Format {
	case FormatPNG:
		if o.Logo {
			return KindLogoBitmap, nil
		}
		return KindBitmap, nil
	case FormatSVG:
		if o.Logo {
			return 0, fmt.Errorf("%w: %s: %s", ErrInvalidConfiguration, constant.ErrLogoUnsupported, o.Format)
		}
		return KindVector, nil
	}
	return 0, fmt.Errorf("%w: %s: %s", ErrInvalidConfiguration, constant.ErrUnknownFormat, o.Format)
}

// OutputFilename returns Filename, or output.<ext> when it is empty
func (o Options) OutputFilename() string {
	if o.Filename != "" {
		return o.Filename
	}
	return constant.DefaultOutputBasename + "." + o.Format.Extension()
}

// Rendered is an image produced by a Renderer. Raster is set for the bitmap
// kinds, Vector for KindVector.
type Rendered struct {
	Kind   Kind
	Format Format
	Raster image.Image
	Vector []byte
}

// Encode serializes the image in its format
func (r *Rendered) Encode(w io.Writer) error {
	switch r.Kind {
	case KindBitmap, KindLogoBitmap:
		return imaging.Encode(w, r.Raster, imaging.PNG)
	case KindVector:
		_, err := w.Write(r.Vector)
		return err
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfiguration, r.Kind)
}

