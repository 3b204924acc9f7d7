// Package cli is the interactive shell: it reads tokens from the user and
// reports, for each one, the stored words it prefixes, whether it is a
// stored word and, if not, the words one edit away.
package cli

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/bastiangx/wordcheck/pkg/config"
	"github.com/bastiangx/wordcheck/pkg/suggest"
	"github.com/charmbracelet/log"
)

const helpText = `Type words separated by spaces, or a command:
  :add <word>         store a word
  :del <word>         remove a word
  :mv <old> <new>     replace old with new
  :stats              show index counters
  :help               show this help
`

// InputHandler reads tokens from in and writes results to out.
type InputHandler struct {
	checker suggest.IChecker
	config  config.CliConfig
	reader  *bufio.Reader
	printer *printer
}

// NewInputHandler creates the shell over checker
func NewInputHandler(checker suggest.IChecker, cfg config.CliConfig, in io.Reader, out io.Writer) *InputHandler {
	return &InputHandler{
		checker: checker,
		config:  cfg,
		reader:  bufio.NewReader(in),
		printer: newPrinter(out),
	}
}

// Start runs the loop until the exit word is typed or the input ends.
func (h *InputHandler) Start() error {
	for {
		h.printer.prompt(h.config.ExitWord)
		line, err := h.reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if h.handleLine(line) {
			return nil
		}
		if errors.Is(err, io.EOF) {
			h.printer.printf("\n")
			return nil
		}
	}
}

// handleLine processes every token of a line and reports whether the
// exit word was seen
func (h *InputHandler) handleLine(line string) bool {
	tokens := utils.SplitTokens(line)
	for i := 0; i < len(tokens); i++ {
		token := tokens[i]
		switch {
		case token == h.config.ExitWord:
			return true
		case utils.IsCommand(token):
			i += h.handleCommand(strings.TrimPrefix(token, utils.CommandPrefix), tokens[i+1:])
		default:
			h.handleWord(token)
		}
	}
	return false
}

// fold lowercases token when configured and remembers its capitals
func (h *InputHandler) fold(token string) (string, *utils.CapitalInfo) {
	if !h.config.FoldCase {
		return token, nil
	}
	return utils.ProcessCapitals(token)
}

func (h *InputHandler) handleWord(token string) {
	word, caps := h.fold(token)

	start := time.Now()
	res, err := h.checker.Check(word)
	if err != nil {
		h.printer.err("Invalid word '%s': %v", token, err)
		return
	}
	log.Debugf("Took [ %v ] for '%s'", time.Since(start), word)

	if h.config.ShowPrefix {
		h.printer.prefixMatches(token, res.Matches, h.config.MaxPrefixResults, caps)
	}
	if res.Found {
		h.printer.found(token)
		return
	}
	h.printer.notFound(token, res.Suggestions, caps)
}

// handleCommand runs one command and returns how many following tokens it used
func (h *InputHandler) handleCommand(name string, args []string) int {
	switch name {
	case "add":
		if !h.needArgs(name, args, 1) {
			return len(args)
		}
		word, _ := h.fold(args[0])
		if err := h.checker.Insert(word); err != nil {
			h.printer.err("Invalid word '%s': %v", args[0], err)
		} else {
			h.printer.printf("Added: %s\n", word)
		}
		return 1
	case "del":
		if !h.needArgs(name, args, 1) {
			return len(args)
		}
		word, _ := h.fold(args[0])
		ok, err := h.checker.Delete(word)
		switch {
		case err != nil:
			h.printer.err("Invalid word '%s': %v", args[0], err)
		case ok:
			h.printer.printf("Deleted: %s\n", word)
		default:
			h.printer.printf("Not found: %s\n", word)
		}
		return 1
	case "mv":
		if !h.needArgs(name, args, 2) {
			return len(args)
		}
		oldWord, _ := h.fold(args[0])
		newWord, _ := h.fold(args[1])
		ok, err := h.checker.Update(oldWord, newWord)
		switch {
		case err != nil:
			h.printer.err("Invalid word: %v", err)
		case ok:
			h.printer.printf("Updated: %s -> %s\n", oldWord, newWord)
		default:
			h.printer.printf("Not found: %s\n", oldWord)
		}
		return 2
	case "stats":
		h.printer.stats(h.checker.Stats())
	case "help":
		h.printer.printf("%s", helpText)
	default:
		h.printer.err("Unknown command ':%s' (try :help)", name)
	}
	return 0
}

func (h *InputHandler) needArgs(name string, args []string, n int) bool {
	if len(args) < n {
		h.printer.err("Command ':%s' needs %d argument(s)", name, n)
		return false
	}
	return true
}
