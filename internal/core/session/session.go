// Package session drives the interactive guess loop for the hi-low game.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/louisbranch/hilow/internal/core/guess"
)

// ErrNoGuesses indicates the guess budget is not positive.
var ErrNoGuesses = errors.New("max guesses must be positive")

// ErrInputExhausted indicates the input source ran out before the game
// reached a terminal state.
var ErrInputExhausted = errors.New("input exhausted before the game ended")

// ErrMalformedGuess indicates a line that could not be parsed as an integer.
var ErrMalformedGuess = errors.New("guess is not an integer")

// Result captures the terminal state of one session.
type Result struct {
	Won         bool
	GuessesUsed int
}

// Play runs one game session against the given target value.
//
// It reads one newline-delimited integer guess per iteration from in,
// evaluates it against the target, and writes the outcome label ("correct",
// "high", or "low") to out, one line per guess, immediately after each
// guess. The loop ends as soon as a guess is correct or once maxGuesses
// guesses have been consumed; a correct guess leaves the remaining budget
// unconsumed. Nothing besides outcome labels is ever written to out.
//
// A malformed guess line or an exhausted input source aborts the session
// with an error wrapping ErrMalformedGuess or ErrInputExhausted; the
// offending line produces no outcome output. Guesses are never validated
// against the game's bounds, only the target is.
func Play(target, maxGuesses int, in io.Reader, out io.Writer) (Result, error) {
	if maxGuesses <= 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrNoGuesses, maxGuesses)
	}
	if in == nil {
		return Result{}, errors.New("input source is required")
	}
	if out == nil {
		return Result{}, errors.New("output sink is required")
	}

	scanner := bufio.NewScanner(in)
	for turn := 1; turn <= maxGuesses; turn++ {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return Result{GuessesUsed: turn - 1}, fmt.Errorf("read guess %d: %w", turn, err)
			}
			return Result{GuessesUsed: turn - 1}, fmt.Errorf("%w: guess %d", ErrInputExhausted, turn)
		}

		line := strings.TrimSpace(scanner.Text())
		value, err := strconv.Atoi(line)
		if err != nil {
			return Result{GuessesUsed: turn - 1}, fmt.Errorf("%w: guess %d is %q", ErrMalformedGuess, turn, line)
		}

		outcome := guess.Evaluate(target, value)
		if _, err := fmt.Fprintln(out, outcome); err != nil {
			return Result{GuessesUsed: turn}, fmt.Errorf("write outcome: %w", err)
		}
		if outcome == guess.OutcomeCorrect {
			return Result{Won: true, GuessesUsed: turn}, nil
		}
	}

	return Result{GuessesUsed: maxGuesses}, nil
}
