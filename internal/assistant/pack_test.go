package assistant

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bananaPack = `
pack: banana
priority: 10
entries:
  - keywords: ["panama disease", "fusarium wilt banana"]
    response: "🍌 Panama disease: remove infected plants."
  - keywords: ["black sigatoka"]
    response: "🍌 Black Sigatoka: prune affected leaves."
`

func TestLoadPack(t *testing.T) {
	p, err := LoadPack(strings.NewReader(bananaPack))
	require.NoError(t, err)

	assert.Equal(t, "banana", p.Name)
	assert.Equal(t, 10, p.Priority)
	require.Len(t, p.Entries, 2)
	assert.Equal(t, []string{"panama disease", "fusarium wilt banana"}, p.Entries[0].Keywords)
}

func TestLoadPack_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty document", "", ErrEmptyPack},
		{"no entries", "pack: x\n", ErrEmptyPack},
		{"missing response", "entries:\n  - keywords: [\"root rot\"]\n", ErrInvalidEntry},
		{"blank keywords", "entries:\n  - keywords: [\" \"]\n    response: r\n", ErrInvalidEntry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadPack(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadPack_UnknownField(t *testing.T) {
	_, err := LoadPack(strings.NewReader("entries:\n  - keyword: [a]\n    response: r\n"))
	assert.Error(t, err)
}

func TestLoadPackFile_NameFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orchard.yaml")
	body := "entries:\n  - keywords: [\"fire blight\"]\n    response: \"🍎 Fire blight\"\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	p, err := LoadPackFile(path)
	require.NoError(t, err)
	assert.Equal(t, "orchard", p.Name)
}

func TestMergePacks_Order(t *testing.T) {
	banana, err := LoadPack(strings.NewReader(bananaPack))
	require.NoError(t, err)
	other := &KnowledgePack{Name: "alpha", Priority: 10, Entries: []KnowledgeEntry{
		{Keywords: []string{"panama disease"}, Response: "alpha"},
	}}

	kb := MergePacks(DefaultPack(), banana, nil, other)

	require.Equal(t, 38+3, kb.Len())
	entries := kb.Entries()
	assert.Equal(t, "alpha", entries[0].Response)
	assert.Contains(t, entries[1].Response, "Panama")
	assert.Equal(t, defaultEntries[0].Response, entries[3].Response)

	// same score, so the earlier pack wins
	resp, ok := Classify("is this panama disease", kb)
	require.True(t, ok)
	assert.Equal(t, "alpha", resp)
}

func TestDefaultPack(t *testing.T) {
	p := DefaultPack()

	assert.Equal(t, BuiltinPackName, p.Name)
	assert.Equal(t, BuiltinPackPriority, p.Priority)
	assert.NoError(t, p.Validate())
	assert.Len(t, p.Entries, 38)
}

func TestShippedPacks_PhrasesSurviveTokenizer(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "knowledge", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		p, err := LoadPackFile(path)
		require.NoError(t, err)
		for i, e := range p.Entries {
			for _, kw := range e.Keywords {
				lower := strings.ToLower(kw)
				if len(strings.Fields(lower)) < 2 {
					continue
				}
				assert.Equal(t, lower, strings.Join(words(kw), " "), "%s entry %d", path, i)
			}
		}
	}
}

func TestCassavaPack_HarvestQuestion(t *testing.T) {
	p, err := LoadPackFile(filepath.Join("..", "..", "knowledge", "cassava.yaml"))
	require.NoError(t, err)

	m := Match("When to harvest cassava?", MergePacks(p, DefaultPack()))

	assert.Equal(t, 1, m.Index)
	assert.Equal(t, 17, m.Score)
	assert.Contains(t, m.Entry.Response, "Cassava Harvest")
}
