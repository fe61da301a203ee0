package ai

import (
	"fmt"
	"slices"
	"strings"

	"github.com/abadojack/whatlanggo"
)

// LanguagePicker chooses the language code sent along with a query.
type LanguagePicker struct {
	defaultCode string
	detect      bool
	supported   []string
}

func NewLanguagePicker(defaultCode string, detect bool, supported []string) LanguagePicker {
	normalized := make([]string, 0, len(supported))
	for _, code := range supported {
		if code = strings.ToLower(strings.TrimSpace(code)); code != "" {
			normalized = append(normalized, code)
		}
	}
	return LanguagePicker{defaultCode: defaultCode, detect: detect, supported: normalized}
}

// Pick returns the default code unless detection is enabled and the text is
// reliably in another supported language. Dialogflow accepts bare ISO-639-1
// codes, so a detected language is returned without a region.
func (p LanguagePicker) Pick(text string) string {
	if !p.detect {
		return p.defaultCode
	}
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return p.defaultCode
	}
	code := info.Lang.Iso6391()
	if code == "" || !slices.Contains(p.supported, code) {
		return p.defaultCode
	}
	if strings.HasPrefix(strings.ToLower(p.defaultCode), code) {
		return p.defaultCode
	}
	return code
}

func (p LanguagePicker) String() string {
	return fmt.Sprintf("default=%s detect=%t supported=%v", p.defaultCode, p.detect, p.supported)
}
