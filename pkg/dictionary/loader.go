// Package dictionary feeds word lists into an index.
//
// Two formats are understood: plain text with one word per line, and the
// binary chunk format (int32 little-endian word count, then per entry a
// uint16 length, the word bytes and a uint16 rank). Chunk directories hold
// files named dict_0001.bin, dict_0002.bin, ... loaded in id order.
//
// Entries the index rejects are skipped and counted, never fatal.
package dictionary

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/charmbracelet/log"
)

// Inserter is the only thing the loader needs from an index.
type Inserter interface {
	Insert(word string) error
}

// Options control how entries are read.
type Options struct {
	// MaxWords stops loading after this many accepted words, 0 for all
	MaxWords int
	// Normalize folds case and strips diacritics before inserting
	Normalize bool
}

// LoaderStats counts what happened to each entry.
type LoaderStats struct {
	Lines      int
	Loaded     int
	Duplicates int
	Skipped    int
	Chunks     int
}

// loader carries state across the files of one load
type loader struct {
	dst   Inserter
	opts  Options
	seen  *utils.DuplicateFilter
	stats LoaderStats
}

func newLoader(dst Inserter, opts Options) *loader {
	return &loader{dst: dst, opts: opts, seen: utils.NewDuplicateFilter()}
}

func (l *loader) full() bool {
	return l.opts.MaxWords > 0 && l.stats.Loaded >= l.opts.MaxWords
}

// accept trims, optionally normalizes, dedupes and inserts one raw entry
func (l *loader) accept(raw string) {
	l.stats.Lines++
	word := strings.TrimSpace(raw)
	if word == "" {
		return
	}
	if l.opts.Normalize {
		word = utils.NormalizeWord(word)
	}
	if !l.seen.ShouldInclude(word) {
		l.stats.Duplicates++
		return
	}
	if err := l.dst.Insert(word); err != nil {
		l.stats.Skipped++
		log.Debugf("Skipping '%s' (%s): %v", word, utils.SkipReason(word), err)
		return
	}
	l.stats.Loaded++
}

// LoadText reads one word per line from r.
func LoadText(r io.Reader, dst Inserter, opts Options) (LoaderStats, error) {
	l := newLoader(dst, opts)
	err := l.loadText(r)
	return l.stats, err
}

func (l *loader) loadText(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() && !l.full() {
		l.accept(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read dictionary: %w", err)
	}
	return nil
}

// LoadChunk reads a single binary chunk from r.
func LoadChunk(r io.Reader, dst Inserter, opts Options) (LoaderStats, error) {
	l := newLoader(dst, opts)
	err := l.loadChunk(r)
	return l.stats, err
}

func (l *loader) loadChunk(r io.Reader) error {
	reader := bufio.NewReader(r)

	var totalEntries int32
	if err := binary.Read(reader, binary.LittleEndian, &totalEntries); err != nil {
		return fmt.Errorf("failed to read chunk header: %w", err)
	}
	if totalEntries < 0 || totalEntries > maxChunkWords {
		return fmt.Errorf("invalid chunk word count: %d", totalEntries)
	}

	for count := 0; count < int(totalEntries) && !l.full(); count++ {
		var wordLen uint16
		if err := binary.Read(reader, binary.LittleEndian, &wordLen); err != nil {
			if errors.Is(err, io.EOF) {
				log.Warnf("Chunk ended after %d of %d words", count, totalEntries)
				break
			}
			return fmt.Errorf("failed to read word length: %w", err)
		}

		wordBytes := make([]byte, wordLen)
		if _, err := io.ReadFull(reader, wordBytes); err != nil {
			return fmt.Errorf("failed to read word: %w", err)
		}

		// rank is carried by the format but not used for lookups
		var rank uint16
		if err := binary.Read(reader, binary.LittleEndian, &rank); err != nil {
			return fmt.Errorf("failed to read rank: %w", err)
		}

		l.accept(string(wordBytes))
	}
	l.stats.Chunks++
	return nil
}

// ChunkInfo describes a chunk file found in a directory
type ChunkInfo struct {
	ChunkID  int
	Filename string
}

// GetAvailableChunks scans dir for dict_NNNN.bin files, sorted by id
func GetAvailableChunks(dir string) ([]ChunkInfo, error) {
	files, err := filepath.Glob(filepath.Join(dir, "dict_*.bin"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan for chunk files: %w", err)
	}

	var chunks []ChunkInfo
	for _, file := range files {
		idStr := strings.TrimSuffix(strings.TrimPrefix(filepath.Base(file), "dict_"), ".bin")
		chunkID, err := strconv.Atoi(idStr)
		if err != nil {
			log.Debugf("Ignoring chunk with bad id: %s", file)
			continue
		}
		chunks = append(chunks, ChunkInfo{ChunkID: chunkID, Filename: file})
	}
	sort.Slice(chunks, func(i, j int) bool {
		return chunks[i].ChunkID < chunks[j].ChunkID
	})
	return chunks, nil
}

// LoadChunks loads every chunk in dir, in id order, until MaxWords is hit.
func LoadChunks(dir string, dst Inserter, opts Options) (LoaderStats, error) {
	l := newLoader(dst, opts)
	err := l.loadChunks(dir)
	return l.stats, err
}

func (l *loader) loadChunks(dir string) error {
	chunks, err := GetAvailableChunks(dir)
	if err != nil {
		return err
	}
	if len(chunks) == 0 {
		return fmt.Errorf("no chunk files found in %s", dir)
	}
	log.Debugf("Found %d chunk files", len(chunks))

	for _, chunk := range chunks {
		if l.full() {
			break
		}
		if err := l.loadChunkFile(chunk.Filename); err != nil {
			return err
		}
		log.Debugf("Chunk %d loaded, %d words so far", chunk.ChunkID, l.stats.Loaded)
	}
	return nil
}

func (l *loader) loadChunkFile(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open chunk file %s: %w", filename, err)
	}
	defer file.Close()
	if err := l.loadChunk(file); err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	return nil
}

// LoadPath loads a text file, a chunk file or a chunk directory depending on
// what DetectFormat finds at path.
func LoadPath(path string, dst Inserter, opts Options) (LoaderStats, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return LoaderStats{}, err
	}
	log.Debugf("Loading %s dictionary from %s", format, path)

	l := newLoader(dst, opts)
	switch format {
	case FormatChunkDir:
		err = l.loadChunks(path)
	case FormatChunk:
		err = l.loadChunkFile(path)
	default:
		var file *os.File
		if file, err = os.Open(path); err != nil {
			return l.stats, fmt.Errorf("failed to open dictionary %s: %w", path, err)
		}
		defer file.Close()
		err = l.loadText(file)
	}
	return l.stats, err
}

// WriteChunk writes words in the binary chunk format. Ranks follow the
// order of words, starting at 1.
func WriteChunk(w io.Writer, words []string) error {
	if len(words) > maxChunkWords {
		return fmt.Errorf("too many words for one chunk: %d", len(words))
	}
	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, int32(len(words))); err != nil {
		return fmt.Errorf("failed to write chunk header: %w", err)
	}

	ranks := utils.CreateRankList(len(words))
	for i, word := range words {
		if len(word) > 0xFFFF {
			return fmt.Errorf("word too long for chunk: %d bytes", len(word))
		}
		if err := binary.Write(bw, binary.LittleEndian, uint16(len(word))); err != nil {
			return fmt.Errorf("failed to write word length: %w", err)
		}
		if _, err := bw.WriteString(word); err != nil {
			return fmt.Errorf("failed to write word: %w", err)
		}
		if err := binary.Write(bw, binary.LittleEndian, ranks[i]); err != nil {
			return fmt.Errorf("failed to write rank: %w", err)
		}
	}
	return bw.Flush()
}
