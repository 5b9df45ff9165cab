// Package i18n holds the per-language response message catalogs.
//
// Catalogs are loaded once at process start and are read-only afterwards, so a
// single *Catalogs value is safe to share between concurrent requests.
package i18n

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Message keys used by the endpoints.
const (
	KeyEventDataStatus      = "EVENT_DATA_STATUS"
	KeyUnauthorized         = "UNAUTHORIZED"
	KeyInvalidUser          = "INVALID_USER"
	KeyInternalError        = "INTERNAL_ERROR"
	KeyConnectionStatus     = "CONNECTION_STATUS"
	KeyQueryExecutionStatus = "QUERY_EXECUTION_STATUS"
	KeyTotalUserCount       = "TOTAL_USER_COUNT"
	KeyImageStatus          = "IMAGE_STATUS"
	KeySuccessMessage       = "SUCCESS_MESSAGE"
	KeyInvocationError      = "INVOCATION_ERROR"
	KeyQuestionsStatus      = "QUESTIONS_STATUS"
	KeyRateLimited          = "RATE_LIMITED"
)

const sectionSuffix = "_MESSAGES"

//go:embed messages.yaml
var embedded []byte

// Catalog resolves message keys for one language.
type Catalog struct {
	languageID int
	messages   map[string]string
	fallback   map[string]string
}

// LanguageID is the language this catalog was resolved for.
func (c Catalog) LanguageID() int {
	return c.languageID
}

// Message returns the localized text for key. Keys missing from the language
// fall back to the base language, and unknown keys to the key itself.
func (c Catalog) Message(key string) string {
	if msg, ok := c.messages[key]; ok {
		return msg
	}
	if msg, ok := c.fallback[key]; ok {
		return msg
	}
	return key
}

// Catalogs is the full set of loaded languages.
type Catalogs struct {
	base       int
	byLanguage map[int]map[string]string
}

// Load parses a YAML document of "<language_id>_MESSAGES" sections.
// The base language section is mandatory.
func Load(data []byte, baseLanguageID int) (*Catalogs, error) {
	var raw map[string]map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse message catalogs: %w", err)
	}

	cs := &Catalogs{base: baseLanguageID, byLanguage: make(map[int]map[string]string, len(raw))}
	for section, messages := range raw {
		id, err := parseSection(section)
		if err != nil {
			return nil, err
		}
		cs.byLanguage[id] = messages
	}

	if _, ok := cs.byLanguage[baseLanguageID]; !ok {
		return nil, fmt.Errorf("message catalogs: base section %s is missing", SectionName(baseLanguageID))
	}
	return cs, nil
}

// LoadEmbedded loads the catalogs compiled into the binary.
func LoadEmbedded(baseLanguageID int) (*Catalogs, error) {
	return Load(embedded, baseLanguageID)
}

// BaseLanguageID is the language used until a more specific one is known.
func (cs *Catalogs) BaseLanguageID() int {
	return cs.base
}

// Base returns the base-language catalog.
func (cs *Catalogs) Base() Catalog {
	return cs.Resolve(cs.base)
}

// Has reports whether a dedicated catalog exists for languageID.
func (cs *Catalogs) Has(languageID int) bool {
	_, ok := cs.byLanguage[languageID]
	return ok
}

// Resolve returns the catalog for languageID, or the base catalog when the
// language has none.
func (cs *Catalogs) Resolve(languageID int) Catalog {
	base := cs.byLanguage[cs.base]
	messages, ok := cs.byLanguage[languageID]
	if !ok {
		return Catalog{languageID: cs.base, messages: base}
	}
	return Catalog{languageID: languageID, messages: messages, fallback: base}
}

// SectionName formats the catalog key for a language, e.g. "165_MESSAGES".
func SectionName(languageID int) string {
	return strconv.Itoa(languageID) + sectionSuffix
}

func parseSection(section string) (int, error) {
	idPart, ok := strings.CutSuffix(section, sectionSuffix)
	if !ok {
		return 0, fmt.Errorf("message catalogs: unexpected section %q", section)
	}
	id, err := strconv.Atoi(idPart)
	if err != nil {
		return 0, fmt.Errorf("message catalogs: section %q has no numeric language id", section)
	}
	return id, nil
}
