package sfntmetrics

import (
	"fmt"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/tymath/core"
)

// Locate finds a font installed on the system and loads it.
// If name is empty, the configuration key `tymath.mathfont` is consulted.
func Locate(name string) (*ScalableFont, error) {
	if name == "" {
		name = gconf.GetString("tymath.mathfont")
	}
	if name == "" {
		return nil, core.Error(core.EINVALID, "no font name given and tymath.mathfont not configured")
	}
	fpath, err := findfont.Find(name)
	if err != nil || fpath == "" {
		tracer().Infof("font %s is not a system font", name)
		e := fmt.Errorf("resource missing: %v", name)
		return nil, core.WrapError(e, core.EMISSING, "font not found: %s", name)
	}
	tracer().Debugf("%s is a system font at %s", name, fpath)
	return LoadOpenTypeFont(fpath)
}
