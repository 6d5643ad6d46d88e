package mcmc

import (
	"context"
	"errors"
	"log/slog"

	"prolom/pkg/cipher"
	"prolom/pkg/ngram"
)

// DefaultIterations is the iteration budget used when none is configured.
const DefaultIterations = 1000

// Breaker is the fluent front door to the engine. Setters chain and return
// the same object; calling a setter again overwrites the earlier value.
// Execute builds and runs exactly one engine, so two Execute calls on the
// same configuration are independent searches, never a resumption.
//
//	res, err := mcmc.NewBreaker().
//		Ciphertext(ct).
//		Matrix(m).
//		Iterations(20000).
//		Execute()
type Breaker struct {
	ciphertext string
	matrix     *ngram.TransitionMatrix
	iterations int
	iterSet    bool
	startKey   string
	src        Source
	proposer   Proposer
	schedule   Schedule
	logger     *slog.Logger
	every      int
}

// NewBreaker returns an empty configuration.
func NewBreaker() *Breaker { return &Breaker{} }

// Ciphertext sets the text to decrypt.
func (b *Breaker) Ciphertext(text string) *Breaker {
	b.ciphertext = text
	return b
}

// Matrix sets the reference model.
func (b *Breaker) Matrix(m *ngram.TransitionMatrix) *Breaker {
	b.matrix = m
	return b
}

// Iterations sets the proposal budget. Unset, Execute uses
// DefaultIterations.
func (b *Breaker) Iterations(n int) *Breaker {
	b.iterations = n
	b.iterSet = true
	return b
}

// StartKey sets the starting permutation from its string form. Unset or
// empty, the search starts from the identity key. The string is validated
// by Execute, not here.
func (b *Breaker) StartKey(key string) *Breaker {
	b.startKey = key
	return b
}

// Rand sets the randomness source, usually NewSource(seed) for reproducible
// runs.
func (b *Breaker) Rand(src Source) *Breaker {
	b.src = src
	return b
}

// Proposer sets the neighbor generator.
func (b *Breaker) Proposer(p Proposer) *Breaker {
	b.proposer = p
	return b
}

// Schedule sets the acceptance temperature schedule.
func (b *Breaker) Schedule(s Schedule) *Breaker {
	b.schedule = s
	return b
}

// Logger sets the progress logger.
func (b *Breaker) Logger(l *slog.Logger) *Breaker {
	b.logger = l
	return b
}

// ProgressEvery makes the engine log the current score every n iterations.
func (b *Breaker) ProgressEvery(n int) *Breaker {
	b.every = n
	return b
}

// Execute runs one full search and returns its result.
func (b *Breaker) Execute() (Result, error) {
	return b.ExecuteContext(context.Background())
}

// ExecuteContext is Execute with cancellation between iterations.
func (b *Breaker) ExecuteContext(ctx context.Context) (Result, error) {
	cfg := EngineConfig{
		Ciphertext:    b.ciphertext,
		Matrix:        b.matrix,
		Iterations:    DefaultIterations,
		Source:        b.src,
		Proposer:      b.proposer,
		Schedule:      b.schedule,
		Logger:        b.logger,
		ProgressEvery: b.every,
	}
	if b.iterSet {
		cfg.Iterations = b.iterations
	}
	if b.startKey != "" && b.matrix != nil {
		k, err := cipher.NewKey(b.matrix.Alphabet(), b.startKey)
		if err != nil {
			var se *cipher.SymbolError
			if errors.As(err, &se) {
				return Result{}, err
			}
			return Result{}, &ConfigError{Reason: "start key", Err: err}
		}
		cfg.StartKey = k
	}
	eng, err := NewEngine(cfg)
	if err != nil {
		return Result{}, err
	}
	return eng.Run(ctx)
}
