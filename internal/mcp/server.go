// Package mcp exposes the cipher breaker as MCP tools over stdio. Every
// tool is a one-shot call: no sessions, no state beyond the optional run
// store and a cache of trained matrices.
package mcp

import (
	"context"
	"fmt"
	"strings"
	"sync"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"prolom/internal/corpus"
	"prolom/internal/store"
	"prolom/pkg/cipher"
	"prolom/pkg/mcmc"
	"prolom/pkg/ngram"
)

// MaxIterations caps the per-call search budget so a single tool call cannot
// hold the stdio transport for minutes.
const MaxIterations = 200000

// Server wraps the MCP SDK server around the breaker, the embedded corpora,
// and an optional run store.
type Server struct {
	MCPServer *sdkmcp.Server

	store store.Store // nil when persistence is off

	mu       sync.Mutex
	matrices map[string]*ngram.TransitionMatrix // trained per corpus, on demand
}

// NewServer builds the tool surface. st may be nil; solve_cipher then skips
// persistence and reports run_id 0.
func NewServer(st store.Store) *Server {
	s := &Server{
		store:    st,
		matrices: make(map[string]*ngram.TransitionMatrix),
	}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: "prolom", Version: "dev"},
		nil,
	)
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "list_corpora",
		Description: "List the embedded reference corpora available as language models.",
	}, s.handleListCorpora)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "encrypt_text",
		Description: "Normalize text into the 27-symbol alphabet (A-Z plus _) and encrypt it under a substitution key.",
	}, s.handleEncryptText)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "score_text",
		Description: "Score how plausible a text is under the bigram model of a reference corpus. Higher is more plausible; scores are log-probabilities.",
	}, s.handleScoreText)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "solve_cipher",
		Description: "Recover the key of a substitution ciphertext by Metropolis-Hastings search against a reference corpus model. Best-effort: short ciphertexts may come back partially wrong.",
	}, s.handleSolveCipher)
}

// matrix returns the trained model for a corpus, training it on first use.
func (s *Server) matrix(name string) (*ngram.TransitionMatrix, error) {
	if name == "" {
		name = corpus.Default
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if m, ok := s.matrices[name]; ok {
		return m, nil
	}
	m, err := corpus.Matrix(cipher.Standard(), name)
	if err != nil {
		return nil, err
	}
	s.matrices[name] = m
	return m, nil
}

// --- Tool input/output types ---

type listCorporaInput struct{}

type listCorporaOutput struct {
	Corpora  []string `json:"corpora"`
	Default  string   `json:"default"`
	Alphabet string   `json:"alphabet"`
}

type encryptTextInput struct {
	Text string `json:"text" jsonschema:"plaintext to normalize and encrypt"`
	Key  string `json:"key" jsonschema:"27-symbol permutation of A-Z_ to encrypt under"`
}

type encryptTextOutput struct {
	Ciphertext string `json:"ciphertext"`
	Normalized string `json:"normalized"`
}

type scoreTextInput struct {
	Text   string `json:"text" jsonschema:"text to score; normalized into the alphabet first"`
	Corpus string `json:"corpus,omitempty" jsonschema:"reference corpus name (default: voyage)"`
}

type scoreTextOutput struct {
	Score      float64 `json:"score"`
	Normalized string  `json:"normalized"`
	Corpus     string  `json:"corpus"`
}

type solveCipherInput struct {
	Ciphertext string `json:"ciphertext" jsonschema:"ciphertext over the 27-symbol alphabet A-Z_"`
	Corpus     string `json:"corpus,omitempty" jsonschema:"reference corpus name (default: voyage)"`
	Iterations int    `json:"iterations,omitempty" jsonschema:"proposal budget (default 20000, max 200000)"`
	StartKey   string `json:"start_key,omitempty" jsonschema:"starting permutation (default: identity)"`
	Seed       uint64 `json:"seed,omitempty" jsonschema:"PRNG seed for a reproducible run (0 = entropy)"`
	Anneal     bool   `json:"anneal,omitempty" jsonschema:"use the guided proposer with a cooling schedule"`
	Save       bool   `json:"save,omitempty" jsonschema:"persist the run to the store"`
	Label      string `json:"label,omitempty" jsonschema:"label for the saved run"`
}

type solveCipherOutput struct {
	Key        string  `json:"key"`
	Plaintext  string  `json:"plaintext"`
	Score      float64 `json:"score"`
	Iterations int     `json:"iterations"`
	RunID      int64   `json:"run_id,omitempty"`
}

// --- Tool handlers ---

func (s *Server) handleListCorpora(_ context.Context, _ *sdkmcp.CallToolRequest, _ listCorporaInput) (*sdkmcp.CallToolResult, listCorporaOutput, error) {
	return nil, listCorporaOutput{
		Corpora:  corpus.List(),
		Default:  corpus.Default,
		Alphabet: cipher.Standard().Symbols(),
	}, nil
}

func (s *Server) handleEncryptText(_ context.Context, _ *sdkmcp.CallToolRequest, input encryptTextInput) (*sdkmcp.CallToolResult, encryptTextOutput, error) {
	alpha := cipher.Standard()
	key, err := cipher.NewKey(alpha, strings.ToUpper(input.Key))
	if err != nil {
		return nil, encryptTextOutput{}, fmt.Errorf("encrypt_text: %w", err)
	}
	norm := alpha.Normalize(input.Text)
	if norm == "" {
		return nil, encryptTextOutput{}, fmt.Errorf("encrypt_text: text has no alphabet symbols")
	}
	ct, err := key.Encrypt(norm)
	if err != nil {
		return nil, encryptTextOutput{}, fmt.Errorf("encrypt_text: %w", err)
	}
	return nil, encryptTextOutput{Ciphertext: ct, Normalized: norm}, nil
}

func (s *Server) handleScoreText(_ context.Context, _ *sdkmcp.CallToolRequest, input scoreTextInput) (*sdkmcp.CallToolResult, scoreTextOutput, error) {
	m, err := s.matrix(input.Corpus)
	if err != nil {
		return nil, scoreTextOutput{}, fmt.Errorf("score_text: %w", err)
	}
	norm := m.Alphabet().Normalize(input.Text)
	name := input.Corpus
	if name == "" {
		name = corpus.Default
	}
	return nil, scoreTextOutput{Score: m.Score(norm), Normalized: norm, Corpus: name}, nil
}

func (s *Server) handleSolveCipher(ctx context.Context, _ *sdkmcp.CallToolRequest, input solveCipherInput) (*sdkmcp.CallToolResult, solveCipherOutput, error) {
	m, err := s.matrix(input.Corpus)
	if err != nil {
		return nil, solveCipherOutput{}, fmt.Errorf("solve_cipher: %w", err)
	}

	iters := input.Iterations
	if iters == 0 {
		iters = 20000
	}
	if iters > MaxIterations {
		return nil, solveCipherOutput{}, fmt.Errorf("solve_cipher: %d iterations exceeds the cap of %d", input.Iterations, MaxIterations)
	}

	b := mcmc.NewBreaker().
		Ciphertext(strings.ToUpper(input.Ciphertext)).
		Matrix(m).
		Iterations(iters).
		StartKey(strings.ToUpper(input.StartKey))
	if input.Seed != 0 {
		b.Rand(mcmc.NewSource(input.Seed))
	}
	if input.Anneal {
		b.Proposer(mcmc.NewGuidedProposer(m)).
			Schedule(mcmc.NewGeometricSchedule(iters))
	}

	res, err := b.ExecuteContext(ctx)
	if err != nil {
		return nil, solveCipherOutput{}, fmt.Errorf("solve_cipher: %w", err)
	}

	out := solveCipherOutput{
		Key:        res.Key,
		Plaintext:  res.Plaintext,
		Score:      res.Score,
		Iterations: iters,
	}

	if input.Save {
		if s.store == nil {
			return nil, solveCipherOutput{}, fmt.Errorf("solve_cipher: save requested but the server has no store")
		}
		name := input.Corpus
		if name == "" {
			name = corpus.Default
		}
		id, err := s.store.SaveRun(&store.Run{
			Label:      input.Label,
			Corpus:     name,
			Ciphertext: strings.ToUpper(input.Ciphertext),
			Key:        res.Key,
			Plaintext:  res.Plaintext,
			Score:      res.Score,
			Iterations: iters,
			Seed:       input.Seed,
			Trajectory: res.Trajectory,
		})
		if err != nil {
			return nil, solveCipherOutput{}, fmt.Errorf("solve_cipher: save run: %w", err)
		}
		out.RunID = id
	}

	return nil, out, nil
}
