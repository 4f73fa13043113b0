package templates

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/abhisek/paceline/internal/plan"
)

//go:embed seed.json
var seedJSON []byte

// Library is an indexed, read-only collection of session templates.
// Iteration order is always sorted by template ID so every consumer sees
// the same deterministic ordering.
type Library struct {
	templates []SessionTemplate
	byID      map[string]*SessionTemplate
	byType    map[plan.SessionType][]*SessionTemplate
}

// NewLibrary builds a library from a slice of templates. Duplicate IDs and
// structurally invalid templates are rejected.
func NewLibrary(ts []SessionTemplate) (*Library, error) {
	lib := &Library{
		templates: make([]SessionTemplate, len(ts)),
		byID:      make(map[string]*SessionTemplate, len(ts)),
		byType:    make(map[plan.SessionType][]*SessionTemplate),
	}
	copy(lib.templates, ts)
	sort.Slice(lib.templates, func(i, j int) bool {
		return lib.templates[i].ID < lib.templates[j].ID
	})
	for i := range lib.templates {
		t := &lib.templates[i]
		if err := t.validate(); err != nil {
			return nil, err
		}
		if _, dup := lib.byID[t.ID]; dup {
			return nil, fmt.Errorf("duplicate template ID %q", t.ID)
		}
		lib.byID[t.ID] = t
		lib.byType[t.Type] = append(lib.byType[t.Type], t)
	}
	return lib, nil
}

// LoadSeed returns the library embedded in the binary.
func LoadSeed() (*Library, error) {
	return parse(seedJSON)
}

// LoadFile reads a template library from a JSON file on disk.
func LoadFile(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template library: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Library, error) {
	var ts []SessionTemplate
	if err := json.Unmarshal(data, &ts); err != nil {
		return nil, fmt.Errorf("parse template library: %w", err)
	}
	return NewLibrary(ts)
}

// Get returns a template by ID.
func (l *Library) Get(id string) (SessionTemplate, bool) {
	t, ok := l.byID[id]
	if !ok {
		return SessionTemplate{}, false
	}
	return *t, true
}

// All returns every template sorted by ID.
func (l *Library) All() []SessionTemplate {
	out := make([]SessionTemplate, len(l.templates))
	copy(out, l.templates)
	return out
}

// Len returns the number of templates in the library.
func (l *Library) Len() int { return len(l.templates) }
