package stack

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func refs(paths ...string) []FileReference {
	out := make([]FileReference, len(paths))
	for i, p := range paths {
		out[i] = NewFileReference(p)
	}
	return out
}

func TestAddScenarios(t *testing.T) {
	s := New(3)
	a, b, c, d := NewFileReference("A"), NewFileReference("B"), NewFileReference("C"), NewFileReference("D")

	steps := []struct {
		name    string
		add     FileReference
		want    []FileReference
		evicted string
	}{
		{"empty stack", a, refs("A"), ""},
		{"second item", b, refs("B", "A"), ""},
		{"fills to capacity", c, refs("C", "B", "A"), ""},
		{"evicts tail", d, refs("D", "C", "B"), "A"},
		{"promotes existing", c, refs("C", "D", "B"), ""},
	}

	for _, step := range steps {
		t.Run(step.name, func(t *testing.T) {
			result := s.Add(step.add)
			assert.Equal(t, step.add, result.Inserted)
			assert.Equal(t, step.want, s.List())
			if step.evicted == "" {
				assert.Nil(t, result.Evicted)
			} else {
				require.NotNil(t, result.Evicted)
				assert.Equal(t, step.evicted, result.Evicted.Path())
				assert.False(t, s.Contains(*result.Evicted))
			}
		})
	}

	assert.Equal(t, refs("C", "D"), s.ListN(2))
}

func TestAddTwiceIsIdempotent(t *testing.T) {
	once := New(3)
	twice := New(3)
	for _, p := range []string{"a.png", "b.png", "c.png"} {
		once.Add(NewFileReference(p))
		twice.Add(NewFileReference(p))
	}

	once.Add(NewFileReference("a.png"))
	twice.Add(NewFileReference("a.png"))
	result := twice.Add(NewFileReference("a.png"))

	assert.Nil(t, result.Evicted)
	assert.Equal(t, once.List(), twice.List())
}

func TestListN(t *testing.T) {
	s := New(5)
	for _, p := range []string{"a", "b", "c"} {
		s.Add(NewFileReference(p))
	}

	testCases := []struct {
		name  string
		limit int
		want  []FileReference
	}{
		{"zero", 0, refs()},
		{"negative", -4, refs()},
		{"partial", 2, refs("c", "b")},
		{"exact", 3, refs("c", "b", "a")},
		{"beyond length", 10, refs("c", "b", "a")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, s.ListN(tc.limit))
		})
	}
}

func TestListReturnsCopy(t *testing.T) {
	s := New(3)
	s.Add(NewFileReference("a"))

	items := s.List()
	items[0] = NewFileReference("tampered")

	assert.Equal(t, refs("a"), s.List())
}

func TestNewDefaultsMaxItems(t *testing.T) {
	assert.Equal(t, DefaultMaxItems, New(0).MaxItems())
	assert.Equal(t, DefaultMaxItems, New(-1).MaxItems())
	assert.Equal(t, 2, New(2).MaxItems())
}

func TestRestore(t *testing.T) {
	s := Restore(3, []string{"a", "", "b", "a", "/c", "d"})

	assert.Equal(t, refs("a", "b", "c"), s.List())
	assert.Equal(t, []string{"a", "b", "c"}, s.Paths())
}

func TestInvariantsUnderRandomAdds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := New(4)

	for i := 0; i < 2000; i++ {
		ref := NewFileReference(fmt.Sprintf("files/%d.jpg", rng.Intn(9)))
		before := s.List()
		wasPresent := s.Contains(ref)

		result := s.Add(ref)
		after := s.List()

		require.LessOrEqual(t, len(after), s.MaxItems())
		require.Equal(t, ref, after[0])

		seen := make(map[FileReference]bool)
		for _, r := range after {
			require.False(t, seen[r], "duplicate %s", r)
			seen[r] = true
		}

		if wasPresent {
			require.Nil(t, result.Evicted)
			require.Len(t, after, len(before))
		} else if len(before) == s.MaxItems() {
			require.NotNil(t, result.Evicted)
			require.Equal(t, before[len(before)-1], *result.Evicted)
			require.NotContains(t, after, *result.Evicted)
		} else {
			require.Nil(t, result.Evicted)
		}
	}
}

func TestNewFileReference(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"files/a.png", "files/a.png"},
		{"/files/a.png", "files/a.png"},
		{"files//2024/../a.png", "files/a.png"},
		{"  ", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			ref := NewFileReference(tc.input)
			if ref.Path() != tc.expected {
				t.Errorf("Expected path '%s', got '%s'", tc.expected, ref.Path())
			}
		})
	}

	if NewFileReference("a/b") != NewFileReference("/a//b") {
		t.Error("Expected equal references for equivalent paths")
	}
}

func TestNewFileReferenceBackslash(t *testing.T) {
	ref := NewFileReference(`files\a.png`)

	expected := `files\a.png`
	if filepath.Separator == '\\' {
		expected = "files/a.png"
	}
	if ref.Path() != expected {
		t.Errorf("Expected path '%s', got '%s'", expected, ref.Path())
	}
}
