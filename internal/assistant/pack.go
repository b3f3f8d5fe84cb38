package assistant

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyPack    = errors.New("knowledge pack has no entries")
	ErrInvalidEntry = errors.New("invalid knowledge entry")
)

// BuiltinPackName names the pack built from DefaultKnowledgeBase.
const BuiltinPackName = "builtin"

// BuiltinPackPriority places the built-in pack after regional packs that use
// the default priority of zero.
const BuiltinPackPriority = 100

// KnowledgePack is a named group of entries as stored on disk and in the
// database. Packs with a lower priority come first in the merged base.
type KnowledgePack struct {
	Name     string           `yaml:"pack"`
	Priority int              `yaml:"priority"`
	Entries  []KnowledgeEntry `yaml:"entries"`
}

// DefaultPack wraps the built-in entries as a pack.
func DefaultPack() *KnowledgePack {
	return &KnowledgePack{
		Name:     BuiltinPackName,
		Priority: BuiltinPackPriority,
		Entries:  DefaultKnowledgeBase().Entries(),
	}
}

// LoadPack decodes a YAML pack and validates it. Unknown fields are rejected.
func LoadPack(r io.Reader) (*KnowledgePack, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p KnowledgePack
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyPack
		}
		return nil, fmt.Errorf("failed to decode knowledge pack: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadPackFile reads a pack from path. A pack without a name takes the file
// name without extension.
func LoadPackFile(path string) (*KnowledgePack, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open knowledge pack: %w", err)
	}
	defer f.Close()

	p, err := LoadPack(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if p.Name == "" {
		base := filepath.Base(path)
		p.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return p, nil
}

// Validate checks that every entry has a response and at least one
// non-blank keyword.
func (p *KnowledgePack) Validate() error {
	if len(p.Entries) == 0 {
		return ErrEmptyPack
	}
	for i, e := range p.Entries {
		if strings.TrimSpace(e.Response) == "" {
			return fmt.Errorf("entry %d: empty response: %w", i, ErrInvalidEntry)
		}
		hasKeyword := false
		for _, kw := range e.Keywords {
			if strings.TrimSpace(kw) != "" {
				hasKeyword = true
				break
			}
		}
		if !hasKeyword {
			return fmt.Errorf("entry %d: no keywords: %w", i, ErrInvalidEntry)
		}
	}
	return nil
}

// MergePacks builds one base ordered by pack priority, then pack name, then
// entry position inside the pack.
func MergePacks(packs ...*KnowledgePack) *KnowledgeBase {
	ordered := make([]*KnowledgePack, 0, len(packs))
	for _, p := range packs {
		if p != nil {
			ordered = append(ordered, p)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Priority != ordered[j].Priority {
			return ordered[i].Priority < ordered[j].Priority
		}
		return ordered[i].Name < ordered[j].Name
	})

	var entries []KnowledgeEntry
	for _, p := range ordered {
		entries = append(entries, p.Entries...)
	}
	return NewKnowledgeBase(entries)
}
