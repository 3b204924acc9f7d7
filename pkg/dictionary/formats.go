package dictionary

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// FileFormat represents different dictionary file formats
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatText               // one word per line
	FormatChunk              // single binary chunk
	FormatChunkDir           // directory of dict_NNNN.bin chunks
)

// maxChunkWords guards against reading a corrupt header as a huge count
const maxChunkWords = 1000000

func (f FileFormat) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatChunk:
		return "chunk"
	case FormatChunkDir:
		return "chunk dir"
	default:
		return "unknown"
	}
}

// DetectFormat works out how path should be loaded. Anything that is not a
// directory or a .bin file is read as text.
func DetectFormat(path string) (FileFormat, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FormatUnknown, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return FormatChunkDir, nil
	}
	if strings.ToLower(filepath.Ext(path)) == ".bin" {
		if err := validateChunkHeader(path); err != nil {
			return FormatUnknown, err
		}
		return FormatChunk, nil
	}
	return FormatText, nil
}

// validateChunkHeader checks that the word count header is readable and sane
func validateChunkHeader(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	defer file.Close()

	var wordCount int32
	if err := binary.Read(file, binary.LittleEndian, &wordCount); err != nil {
		return fmt.Errorf("failed to read header from %s: %w", filename, err)
	}
	if wordCount < 0 || wordCount > maxChunkWords {
		return fmt.Errorf("invalid word count in %s: %d", filename, wordCount)
	}

	log.Debugf("Binary file %s validated: %d words", filename, wordCount)
	return nil
}
