package server

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bastiangx/wordcheck/internal/logger"
	"github.com/bastiangx/wordcheck/pkg/config"
	"github.com/bastiangx/wordcheck/pkg/suggest"
	"github.com/bastiangx/wordcheck/pkg/trie"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for one checker
type Server struct {
	checker      suggest.IChecker
	config       *config.Config
	decoder      *msgpack.Decoder
	encoder      *msgpack.Encoder
	logger       *log.Logger
	requestCount int
}

// NewServer creates a server reading requests from r and writing responses to w
func NewServer(checker suggest.IChecker, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		checker: checker,
		config:  cfg,
		decoder: msgpack.NewDecoder(r),
		encoder: msgpack.NewEncoder(w),
		logger:  logger.New("ipc"),
	}
}

// Start sends the ready message and serves requests until the input ends.
// Malformed messages are answered with an error and skipped.
func (s *Server) Start() error {
	s.logger.Debug("Starting server")
	if err := s.send(StatusResponse{Status: "ready"}); err != nil {
		return err
	}

	for {
		raw, err := s.decoder.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("Client closed input", "requests", s.requestCount)
				return nil
			}
			return fmt.Errorf("reading request: %w", err)
		}

		var req Request
		if err := msgpack.Unmarshal(raw, &req); err != nil {
			s.logger.Errorf("Unmarshaling request: %v", err)
			if err := s.sendError("", "invalid msgpack request", CodeBadRequest); err != nil {
				return err
			}
			continue
		}
		if err := s.handleRequest(req); err != nil {
			return err
		}
	}
}

// handleRequest dispatches one request; only write failures are returned
func (s *Server) handleRequest(req Request) error {
	s.requestCount++
	start := time.Now()

	switch req.Action {
	case ActionHealth:
		return s.send(StatusResponse{ID: req.ID, Status: "ok"})
	case ActionStats:
		return s.send(StatsResponse{ID: req.ID, Stats: s.checker.Stats()})
	}

	resp, err := s.run(req)
	if err != nil {
		code := CodeInternal
		if errors.Is(err, trie.ErrInvalidCharacter) || errors.Is(err, errUnknownAction) {
			code = CodeBadRequest
		}
		s.logger.Debug("Request failed", "id", req.ID, "action", req.Action, "err", err)
		return s.sendError(req.ID, err.Error(), code)
	}

	limit := s.limit(req)
	resp.Matches = truncate(resp.Matches, limit)
	resp.Suggestions = truncate(resp.Suggestions, limit)
	resp.ID = req.ID
	resp.Count = len(resp.Matches) + len(resp.Suggestions)
	resp.TimeTaken = time.Since(start).Microseconds()
	return s.send(resp)
}

var errUnknownAction = errors.New("unknown action")

// run performs the checker call behind an action
func (s *Server) run(req Request) (Response, error) {
	var resp Response
	var err error

	switch req.Action {
	case ActionCheck:
		var res suggest.Result
		if res, err = s.checker.Check(req.Word); err == nil {
			resp.Found = res.Found
			resp.Matches = res.Matches
			resp.Suggestions = res.Suggestions
		}
	case ActionSearch:
		resp.Found, err = s.checker.Search(req.Word)
	case ActionPrefix:
		resp.Matches, err = s.checker.Complete(req.Word)
	case ActionSuggest:
		resp.Suggestions, err = s.checker.Suggest(req.Word)
	case ActionInsert:
		err = s.checker.Insert(req.Word)
		resp.OK = err == nil
		return resp, err
	case ActionDelete:
		resp.OK, err = s.checker.Delete(req.Word)
		return resp, err
	case ActionUpdate:
		resp.OK, err = s.checker.Update(req.Word, req.NewWord)
		return resp, err
	default:
		return resp, fmt.Errorf("%w: %q", errUnknownAction, req.Action)
	}
	resp.OK = err == nil
	return resp, err
}

// limit picks the tighter of the request limit and the configured maximum
func (s *Server) limit(req Request) int {
	limit := req.Limit
	if maxResults := s.config.Server.MaxResults; maxResults > 0 && (limit <= 0 || limit > maxResults) {
		limit = maxResults
	}
	return limit
}

func truncate(words []string, limit int) []string {
	if limit > 0 && len(words) > limit {
		return words[:limit]
	}
	return words
}

func (s *Server) send(v any) error {
	if err := s.encoder.Encode(v); err != nil {
		s.logger.Errorf("Encoding response: %v", err)
		return fmt.Errorf("writing response: %w", err)
	}
	return nil
}

func (s *Server) sendError(id, message string, code int) error {
	return s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
