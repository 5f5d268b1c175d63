package vision

import (
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

const maxImageMB = 16

// ReadAsDataURL loads a rendered page image as a base64 data URL for the
// provider's vision content block. Images above the size gate are refused;
// the caller should re-render at a lower DPI instead of shipping them.
func ReadAsDataURL(path string) (string, error) {
	st, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if st.Size() > maxImageMB*1024*1024 {
		return "", fmt.Errorf("page image %s exceeds %dMB", filepath.Base(path), maxImageMB)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	mt := mime.TypeByExtension("." + ext)
	if mt == "" {
		switch ext {
		case "jpg", "jpeg":
			mt = "image/jpeg"
		default:
			mt = "image/png"
		}
	}
	return "data:" + mt + ";base64," + base64.StdEncoding.EncodeToString(b), nil
}
