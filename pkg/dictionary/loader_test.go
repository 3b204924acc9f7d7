package dictionary

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bastiangx/wordcheck/pkg/trie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func words(t *testing.T, tr *trie.Trie) []string {
	t.Helper()
	all, err := tr.PrefixSearch("")
	require.NoError(t, err)
	return all
}

func TestLoadText(t *testing.T) {
	input := "cat\ncar\r\n\n  dog  \ncat\nHello\nit's\n42\ncart\n"
	tr := trie.New()

	stats, err := LoadText(strings.NewReader(input), tr, Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"car", "cart", "cat", "dog"}, words(t, tr))
	assert.Equal(t, 9, stats.Lines)
	assert.Equal(t, 4, stats.Loaded)
	assert.Equal(t, 1, stats.Duplicates)
	assert.Equal(t, 3, stats.Skipped)
}

func TestLoadTextNormalize(t *testing.T) {
	tr := trie.New()
	stats, err := LoadText(strings.NewReader("Café\nNAÏVE\ncafe\n"), tr, Options{Normalize: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"cafe", "naive"}, words(t, tr))
	assert.Equal(t, 2, stats.Loaded)
	assert.Equal(t, 1, stats.Duplicates)
}

func TestLoadTextMaxWords(t *testing.T) {
	tr := trie.New()
	stats, err := LoadText(strings.NewReader("a\nb\nc\nd\n"), tr, Options{MaxWords: 2})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, words(t, tr))
	assert.Equal(t, 2, stats.Loaded)
}

func TestChunkRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteChunk(&buf, []string{"the", "of", "and", "Bad"}))

	tr := trie.New()
	stats, err := LoadChunk(&buf, tr, Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"and", "of", "the"}, words(t, tr))
	assert.Equal(t, 3, stats.Loaded)
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, 1, stats.Chunks)
}

func TestChunkLayout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteChunk(&buf, []string{"ab", "c"}))

	want := []byte{
		2, 0, 0, 0, // count
		2, 0, 'a', 'b', 1, 0, // len, word, rank
		1, 0, 'c', 2, 0,
	}
	assert.Equal(t, want, buf.Bytes())
}

func TestLoadChunkErrors(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := LoadChunk(bytes.NewReader(nil), trie.New(), Options{})
		assert.ErrorContains(t, err, "chunk header")
	})

	t.Run("negative count", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, int32(-1)))
		_, err := LoadChunk(&buf, trie.New(), Options{})
		assert.ErrorContains(t, err, "invalid chunk word count")
	})

	t.Run("truncated word", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, int32(1)))
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint16(5)))
		buf.WriteString("ab")
		_, err := LoadChunk(&buf, trie.New(), Options{})
		assert.ErrorContains(t, err, "failed to read word")
	})

	t.Run("fewer entries than header", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteChunk(&buf, []string{"cat"}))
		data := buf.Bytes()
		data[0] = 3

		tr := trie.New()
		stats, err := LoadChunk(bytes.NewReader(data), tr, Options{})
		require.NoError(t, err)
		assert.Equal(t, 1, stats.Loaded)
	})
}

func writeChunkFile(t *testing.T, dir string, id int, ws ...string) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WriteChunk(&buf, ws))
	name := filepath.Join(dir, fmt.Sprintf("dict_%04d.bin", id))
	require.NoError(t, os.WriteFile(name, buf.Bytes(), 0644))
}

func TestLoadChunks(t *testing.T) {
	dir := t.TempDir()
	writeChunkFile(t, dir, 2, "dog", "cat")
	writeChunkFile(t, dir, 1, "cat", "car")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dict_xx.bin"), []byte{0, 0, 0, 0}, 0644))

	chunks, err := GetAvailableChunks(dir)
	require.NoError(t, err)
	require.Len(t, chunks, 2)
	assert.Equal(t, 1, chunks[0].ChunkID)
	assert.Equal(t, 2, chunks[1].ChunkID)

	tr := trie.New()
	stats, err := LoadChunks(dir, tr, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"car", "cat", "dog"}, words(t, tr))
	assert.Equal(t, 2, stats.Chunks)
	assert.Equal(t, 1, stats.Duplicates)

	limited := trie.New()
	stats, err = LoadChunks(dir, limited, Options{MaxWords: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"car", "cat"}, words(t, limited))
	assert.Equal(t, 1, stats.Chunks)

	_, err = LoadChunks(t.TempDir(), trie.New(), Options{})
	assert.ErrorContains(t, err, "no chunk files")
}

func TestLoadPath(t *testing.T) {
	dir := t.TempDir()
	textPath := filepath.Join(dir, "dictionary.txt")
	require.NoError(t, os.WriteFile(textPath, []byte("apple\napply\n"), 0644))
	writeChunkFile(t, dir, 1, "zebra")

	format, err := DetectFormat(textPath)
	require.NoError(t, err)
	assert.Equal(t, FormatText, format)

	tr := trie.New()
	_, err = LoadPath(textPath, tr, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "apply"}, words(t, tr))

	chunkPath := filepath.Join(dir, "dict_0001.bin")
	format, err = DetectFormat(chunkPath)
	require.NoError(t, err)
	assert.Equal(t, FormatChunk, format)

	tr = trie.New()
	_, err = LoadPath(chunkPath, tr, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"zebra"}, words(t, tr))

	format, err = DetectFormat(dir)
	require.NoError(t, err)
	assert.Equal(t, FormatChunkDir, format)

	_, err = LoadPath(filepath.Join(dir, "missing.txt"), trie.New(), Options{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
