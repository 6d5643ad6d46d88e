// Package mcmc recovers substitution-cipher keys by Metropolis-Hastings
// search: propose a neighboring key, score its decryption against a bigram
// reference model, accept or reject by the Metropolis rule, and keep the
// best candidate seen. A single search is strictly single-threaded and
// synchronous; all randomness flows through an injected Source, so seeded
// runs reproduce exactly.
package mcmc

import (
	"context"
	"log/slog"
	"math"

	"prolom/pkg/cipher"
	"prolom/pkg/ngram"
)

// Candidate is one evaluated key: the key itself, the decryption of the
// ciphertext under it, and that decryption's plausibility score.
type Candidate struct {
	Key       *cipher.Key
	Plaintext string
	Score     float64
}

// Result is the outcome of one terminated search: the best key found, its
// decryption, its score, and the full score trajectory. The trajectory holds
// the accepted score after every iteration plus the seed entry, so its
// length is always iterations+1.
type Result struct {
	Key        string
	Plaintext  string
	Score      float64
	Trajectory []float64
}

// EngineConfig configures a single search.
type EngineConfig struct {
	// Ciphertext is the text to decrypt. Required; every symbol must belong
	// to the matrix alphabet.
	Ciphertext string
	// Matrix scores candidate decryptions. Required.
	Matrix *ngram.TransitionMatrix
	// Iterations is the exact number of proposals to evaluate. Zero runs no
	// proposals and returns the start state unchanged.
	Iterations int
	// StartKey seeds the walk. Nil means the identity permutation.
	StartKey *cipher.Key
	// Source drives all randomness. Nil means a fresh entropy-seeded source.
	Source Source
	// Proposer generates neighboring keys. Nil means SwapProposer.
	Proposer Proposer
	// Schedule sets acceptance temperatures. Nil means ConstantSchedule{T: 1},
	// the exact Metropolis rule.
	Schedule Schedule
	// Logger receives progress lines when ProgressEvery > 0.
	Logger *slog.Logger
	// ProgressEvery logs the current score every that many iterations.
	// Zero disables progress logging.
	ProgressEvery int
}

// Engine runs one search to completion. Build it with NewEngine, which
// rejects bad configurations before any iteration can start.
type Engine struct {
	cfg   EngineConfig
	start *cipher.Key
}

// NewEngine validates cfg and returns an engine ready to run. Configuration
// problems come back as *ConfigError; ciphertext symbols outside the matrix
// alphabet come back as *cipher.SymbolError.
func NewEngine(cfg EngineConfig) (*Engine, error) {
	if cfg.Ciphertext == "" {
		return nil, configErr("empty ciphertext")
	}
	if cfg.Matrix == nil {
		return nil, configErr("nil transition matrix")
	}
	if cfg.Iterations < 0 {
		return nil, configErr("negative iteration count")
	}
	alpha := cfg.Matrix.Alphabet()
	start := cfg.StartKey
	if start == nil {
		start = cipher.Identity(alpha)
	} else if start.Alphabet().Symbols() != alpha.Symbols() {
		return nil, configErr("start key alphabet does not match the matrix")
	}
	for i := 0; i < len(cfg.Ciphertext); i++ {
		if !alpha.Contains(cfg.Ciphertext[i]) {
			return nil, &cipher.SymbolError{Symbol: cfg.Ciphertext[i], Pos: i}
		}
	}
	if cfg.Source == nil {
		cfg.Source = newEntropySource()
	}
	if cfg.Proposer == nil {
		cfg.Proposer = SwapProposer{}
	}
	if cfg.Schedule == nil {
		cfg.Schedule = ConstantSchedule{T: 1}
	}
	return &Engine{cfg: cfg, start: start}, nil
}

// Run executes the search: seed with the start key, then evaluate exactly
// the configured number of proposals. The returned trajectory records the
// accepted score after every iteration. Cancelling ctx stops the walk
// between iterations; the best-so-far Result is still returned alongside
// ctx's error, and the shortened trajectory tells how far the walk got.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	cur := Candidate{Key: e.start}
	cur.Plaintext = e.decrypt(cur.Key)
	cur.Score = e.cfg.Matrix.Score(cur.Plaintext)
	best := cur

	traj := make([]float64, 0, e.cfg.Iterations+1)
	traj = append(traj, cur.Score)

	for i := 0; i < e.cfg.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			return e.result(best, traj), err
		}

		cand := Candidate{Key: e.cfg.Proposer.Propose(e.cfg.Source, cur)}
		cand.Plaintext = e.decrypt(cand.Key)
		cand.Score = e.cfg.Matrix.Score(cand.Plaintext)

		if e.accept(cand.Score, cur.Score, i) {
			cur = cand
		}
		traj = append(traj, cur.Score)
		if cur.Score > best.Score {
			best = cur
		}

		if e.cfg.ProgressEvery > 0 && e.cfg.Logger != nil && i%e.cfg.ProgressEvery == 0 {
			e.cfg.Logger.Info("search progress",
				"iteration", i,
				"score", cur.Score,
				"temperature", e.cfg.Schedule.Temperature(i))
		}
	}
	return e.result(best, traj), nil
}

// accept applies the Metropolis rule: uphill and level moves always pass,
// downhill moves pass with probability exp(delta/T) against a uniform draw.
func (e *Engine) accept(cand, cur float64, iteration int) bool {
	if cand >= cur {
		return true
	}
	t := e.cfg.Schedule.Temperature(iteration)
	return e.cfg.Source.Float64() < math.Exp((cand-cur)/t)
}

func (e *Engine) decrypt(k *cipher.Key) string {
	// The ciphertext was validated against the alphabet in NewEngine, so
	// decryption under a permutation key cannot fail.
	s, _ := k.Decrypt(e.cfg.Ciphertext)
	return s
}

func (e *Engine) result(best Candidate, traj []float64) Result {
	return Result{
		Key:        best.Key.String(),
		Plaintext:  best.Plaintext,
		Score:      best.Score,
		Trajectory: traj,
	}
}
