package trie

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTrie(t *testing.T, words ...string) *Trie {
	t.Helper()
	tr := New()
	for _, w := range words {
		require.NoError(t, tr.Insert(w))
	}
	return tr
}

func mustSearch(t *testing.T, tr *Trie, word string) bool {
	t.Helper()
	ok, err := tr.Search(word)
	require.NoError(t, err)
	return ok
}

func TestInsertSearchRoundTrip(t *testing.T) {
	words := []string{"a", "cat", "car", "cart", "dog", "zebra", "abcdefghijklmnopqrstuvwxyz"}
	tr := newTrie(t, words...)

	for _, w := range words {
		assert.True(t, mustSearch(t, tr, w), "search(%q)", w)
	}
	assert.Equal(t, len(words), tr.Len())

	// prefixes of stored words are not words themselves
	assert.False(t, mustSearch(t, tr, "ca"))
	assert.False(t, mustSearch(t, tr, "zeb"))
	// paths that do not exist at all
	assert.False(t, mustSearch(t, tr, "cats"))
	assert.False(t, mustSearch(t, tr, "x"))
}

func TestInsertIdempotent(t *testing.T) {
	tr := newTrie(t, "cart", "car")
	nodes := tr.Nodes()
	before, err := tr.PrefixSearch("ca")
	require.NoError(t, err)

	require.NoError(t, tr.Insert("cart"))
	require.NoError(t, tr.Insert("cart"))

	after, err := tr.PrefixSearch("ca")
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.True(t, mustSearch(t, tr, "cart"))
	assert.Equal(t, nodes, tr.Nodes())
	assert.Equal(t, 2, tr.Len())
}

func TestNodesCreatedLazily(t *testing.T) {
	tr := New()
	assert.Equal(t, 1, tr.Nodes())

	require.NoError(t, tr.Insert("car"))
	assert.Equal(t, 4, tr.Nodes())

	// "cart" only needs one more node, "ca" none
	require.NoError(t, tr.Insert("cart"))
	require.NoError(t, tr.Insert("ca"))
	assert.Equal(t, 5, tr.Nodes())
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name    string
		words   []string
		target  string
		want    bool
		present []string
	}{
		{
			name:    "stored word",
			words:   []string{"cat", "car"},
			target:  "cat",
			want:    true,
			present: []string{"car"},
		},
		{
			name:    "bare prefix still reports success",
			words:   []string{"cart", "dog"},
			target:  "car",
			want:    true,
			present: []string{"cart", "dog"},
		},
		{
			name:    "missing path",
			words:   []string{"cat"},
			target:  "cow",
			want:    false,
			present: []string{"cat"},
		},
		{
			name:    "longer than any path",
			words:   []string{"cat"},
			target:  "cats",
			want:    false,
			present: []string{"cat"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTrie(t, tt.words...)
			nodes := tr.Nodes()

			got, err := tr.Delete(tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.False(t, mustSearch(t, tr, tt.target))
			for _, w := range tt.present {
				assert.True(t, mustSearch(t, tr, w), "search(%q)", w)
			}
			assert.Equal(t, nodes, tr.Nodes(), "delete must not prune nodes")
		})
	}
}

func TestDeleteKeepsDescendants(t *testing.T) {
	tr := newTrie(t, "car", "cart", "carton")

	ok, err := tr.Delete("car")
	require.NoError(t, err)
	require.True(t, ok)

	words, err := tr.PrefixSearch("car")
	require.NoError(t, err)
	assert.Equal(t, []string{"cart", "carton"}, words)
	assert.Equal(t, 2, tr.Len())
}

func TestDeleteTwice(t *testing.T) {
	tr := newTrie(t, "cat")

	first, err := tr.Delete("cat")
	require.NoError(t, err)
	second, err := tr.Delete("cat")
	require.NoError(t, err)

	assert.True(t, first)
	assert.True(t, second, "path still exists after the first delete")
	assert.Equal(t, 0, tr.Len())
}

func TestUpdate(t *testing.T) {
	t.Run("stored word", func(t *testing.T) {
		tr := newTrie(t, "cat", "dog")
		ok, err := tr.Update("cat", "cot")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.False(t, mustSearch(t, tr, "cat"))
		assert.True(t, mustSearch(t, tr, "cot"))
		assert.True(t, mustSearch(t, tr, "dog"))
	})

	t.Run("prefix path counts as success", func(t *testing.T) {
		tr := newTrie(t, "cart")
		ok, err := tr.Update("ca", "cab")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.True(t, mustSearch(t, tr, "cab"))
		assert.True(t, mustSearch(t, tr, "cart"))
	})

	t.Run("missing path inserts nothing", func(t *testing.T) {
		tr := newTrie(t, "cat")
		ok, err := tr.Update("cow", "calf")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.False(t, mustSearch(t, tr, "calf"))
		assert.True(t, mustSearch(t, tr, "cat"))
	})

	t.Run("invalid new word leaves old word alone", func(t *testing.T) {
		tr := newTrie(t, "cat")
		ok, err := tr.Update("cat", "Cat")
		require.ErrorIs(t, err, ErrInvalidCharacter)
		assert.False(t, ok)
		assert.True(t, mustSearch(t, tr, "cat"))
	})
}

func TestEmptyWord(t *testing.T) {
	tr := newTrie(t, "a")
	assert.False(t, mustSearch(t, tr, ""))

	require.NoError(t, tr.Insert(""))
	assert.True(t, mustSearch(t, tr, ""))

	words, err := tr.PrefixSearch("")
	require.NoError(t, err)
	assert.Equal(t, []string{"", "a"}, words)
}

func TestInvalidInput(t *testing.T) {
	tr := newTrie(t, "cat")
	inputs := []string{"Cat", "ca t", "cat!", "café", "c4t", "{"}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			err := tr.Insert(in)
			require.ErrorIs(t, err, ErrInvalidCharacter)

			var ice *InvalidCharError
			require.True(t, errors.As(err, &ice))
			assert.Equal(t, in, ice.Word)

			_, err = tr.Search(in)
			assert.ErrorIs(t, err, ErrInvalidCharacter)
			_, err = tr.Delete(in)
			assert.ErrorIs(t, err, ErrInvalidCharacter)
			_, err = tr.PrefixSearch(in)
			assert.ErrorIs(t, err, ErrInvalidCharacter)
			_, err = tr.Suggest(in)
			assert.ErrorIs(t, err, ErrInvalidCharacter)
		})
	}
	assert.Equal(t, 1, tr.Len())
	assert.Equal(t, 4, tr.Nodes())
}

func TestValidatePosition(t *testing.T) {
	err := Validate("abC")
	var ice *InvalidCharError
	require.True(t, errors.As(err, &ice))
	assert.Equal(t, 2, ice.Pos)
	assert.Equal(t, byte('C'), ice.Char)
	assert.Contains(t, err.Error(), "position 2")

	assert.NoError(t, Validate(""))
	assert.NoError(t, Validate("abcxyz"))
}
