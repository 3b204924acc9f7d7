/*
Package server implements msgpack IPC for wordcheck.

Clients write a stream of msgpack maps to stdin and read one msgpack map per
request from stdout. Requests are handled one at a time, in order. The first
message the server writes is a status map:

	{"status": "ready"}

A request names an action, a word and, for updates, the replacement:

	{"id": "q1", "a": "check", "w": "cta"}
	{"id": "m1", "a": "update", "w": "cta", "n": "cat"}

Lookups answer with the found flag, prefix matches and suggestions:

	{"id": "q1", "ok": true, "f": false, "s": ["cat", "cot"], "c": 2, "t": 41}

Actions: check, search, prefix, suggest, insert, delete, update, stats,
health. Words must be lowercase a-z; anything else is answered with an
error map carrying code 400:

	{"id": "q2", "e": "invalid character 'C' at position 0 in \"Cat\"", "c": 400}

Suggestions are unordered. Prefix matches are sorted.
*/
package server

// Request is any client message
type Request struct {
	ID      string `msgpack:"id"`
	Action  string `msgpack:"a"`
	Word    string `msgpack:"w"`
	NewWord string `msgpack:"n,omitempty"`
	Limit   int    `msgpack:"l,omitempty"`
}

// Response answers lookups and mutations
type Response struct {
	ID          string   `msgpack:"id"`
	OK          bool     `msgpack:"ok"`
	Found       bool     `msgpack:"f"`
	Matches     []string `msgpack:"p,omitempty"`
	Suggestions []string `msgpack:"s,omitempty"`
	Count       int      `msgpack:"c"`
	TimeTaken   int64    `msgpack:"t"`
}

// StatsResponse carries the checker counters
type StatsResponse struct {
	ID    string         `msgpack:"id"`
	Stats map[string]int `msgpack:"stats"`
}

// StatusResponse is sent on startup and for health checks
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for a failed request
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}

// Action names
const (
	ActionCheck   = "check"
	ActionSearch  = "search"
	ActionPrefix  = "prefix"
	ActionSuggest = "suggest"
	ActionInsert  = "insert"
	ActionDelete  = "delete"
	ActionUpdate  = "update"
	ActionStats   = "stats"
	ActionHealth  = "health"
)

// Error codes
const (
	CodeBadRequest = 400
	CodeInternal   = 500
)
