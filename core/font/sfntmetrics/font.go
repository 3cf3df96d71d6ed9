package sfntmetrics

import (
	"os"
	"sync"

	"github.com/npillmayer/tymath/core"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// ScalableFont is a parsed OpenType or TrueType font.
type ScalableFont struct {
	Fontname string     // full name from the font's name table
	Filepath string     // file path, "internal" for packaged fonts
	SFNT     *sfnt.Font // the font's container
}

// LoadOpenTypeFont reads and parses a font file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	data, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read font file %s", fontfile)
	}
	f, err := ParseOpenTypeFont(data)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	tracer().Infof("loaded font %s from %s", f.Fontname, fontfile)
	return f, nil
}

// ParseOpenTypeFont parses the binary data of an OpenType or TrueType font.
func ParseOpenTypeFont(data []byte) (*ScalableFont, error) {
	otf, err := sfnt.Parse(data)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse font data")
	}
	name, err := otf.Name(nil, sfnt.NameIDFull)
	if err != nil {
		name = "unnamed font"
	}
	return &ScalableFont{Fontname: name, Filepath: "internal", SFNT: otf}, nil
}

// FallbackFont returns Go Regular, which is packaged with the module and
// serves the upright and large-delimiter fonts if no math font is
// configured.
func FallbackFont() *ScalableFont {
	fallbackOnce.Do(func() {
		f, err := ParseOpenTypeFont(goregular.TTF)
		if err != nil {
			panic("cannot parse packaged Go Regular font")
		}
		fallbackFont = f
	})
	return fallbackFont
}

var (
	fallbackOnce sync.Once
	fallbackFont *ScalableFont
)
