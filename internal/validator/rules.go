package validator

import (
	"net/url"
	"path"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Extensions accepted by the media_url rule. The storefront player only
// handles progressive media files.
var playableExtensions = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".webm": true,
	".m4v":  true,
	".m3u8": true,
}

func registerCustomRules(v *validator.Validate) error {
	return v.RegisterValidation("media_url", validateMediaURL)
}

// validateMediaURL checks that the value is an absolute http(s) URL whose
// path ends in a playable media extension. Query strings (CDN tokens) are
// ignored for the extension check.
func validateMediaURL(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return false
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	if u.Host == "" {
		return false
	}

	ext := strings.ToLower(path.Ext(u.Path))
	return playableExtensions[ext]
}
