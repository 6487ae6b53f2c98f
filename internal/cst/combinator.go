// Package cst implements the concrete syntax tree grammar for Lojban text,
// built from a small parser-combinator driver running over a token slice.
package cst

import (
	"github.com/mattfbacon/sneturfahi/internal/invariant"
	"github.com/mattfbacon/sneturfahi/internal/lexer"
	"github.com/mattfbacon/sneturfahi/internal/selmaho"
)

// Result is the outcome of applying a combinator: Rest is the unconsumed
// tail of the token stream, Fatal marks a Cut boundary that must not be
// backtracked past by any enclosing Alt/Longest, Ok reports whether a
// value was produced at all, and Err optionally carries a specific reason
// for failure (e.g. from Postcond) for combinators that are positioned to
// propagate it up to the caller of Parse.
type Result[T any] struct {
	Value T
	Rest  []lexer.Token
	Fatal bool
	Ok    bool
	Err   *ParseError
}

// Parser recognizes a value of type T from a prefix of the token stream.
type Parser[T any] func(input []lexer.Token) Result[T]

func ok[T any](value T, rest []lexer.Token) Result[T] {
	return Result[T]{Value: value, Rest: rest, Ok: true}
}

func fail[T any](input []lexer.Token) Result[T] {
	return Result[T]{Rest: input, Ok: false}
}

func failErr[T any](input []lexer.Token, err *ParseError) Result[T] {
	return Result[T]{Rest: input, Ok: false, Err: err}
}

func fatal[T any](input []lexer.Token) Result[T] {
	return Result[T]{Rest: input, Ok: false, Fatal: true}
}

func fatalErr[T any](input []lexer.Token, err *ParseError) Result[T] {
	return Result[T]{Rest: input, Ok: false, Fatal: true, Err: err}
}

// Token matches exactly one token of the given selmaho and returns it.
func Token(want selmaho.Selmaho) Parser[lexer.Token] {
	return func(input []lexer.Token) Result[lexer.Token] {
		if len(input) == 0 || input[0].Selmaho != want {
			return fail[lexer.Token](input)
		}
		return ok(input[0], input[1:])
	}
}

// Opt succeeds unless p fails fatally: it produces a pointer to p's value if
// p matches, or nil otherwise, never consuming input on failure. A Fatal
// failure from p propagates.
func Opt[T any](p Parser[T]) Parser[*T] {
	return func(input []lexer.Token) Result[*T] {
		r := p(input)
		if r.Fatal {
			return fatalErr[*T](input, r.Err)
		}
		if !r.Ok {
			return ok[*T](nil, input)
		}
		v := r.Value
		return ok(&v, r.Rest)
	}
}

// Many0 applies p repeatedly until it fails, collecting zero or more
// results. A Fatal failure from p propagates immediately.
func Many0[T any](p Parser[T]) Parser[[]T] {
	return func(input []lexer.Token) Result[[]T] {
		var out []T
		rest := input
		for {
			r := p(rest)
			if r.Fatal {
				return fatalErr[[]T](input, r.Err)
			}
			if !r.Ok || len(r.Rest) == len(rest) {
				break
			}
			invariant.Invariant(len(r.Rest) < len(rest), "Many0 element must make forward progress")
			out = append(out, r.Value)
			rest = r.Rest
		}
		return ok(out, rest)
	}
}

// Many1 is Many0 but requires at least one match.
func Many1[T any](p Parser[T]) Parser[[]T] {
	many := Many0(p)
	return func(input []lexer.Token) Result[[]T] {
		r := many(input)
		if r.Fatal || !r.Ok || len(r.Value) == 0 {
			if r.Fatal {
				return r
			}
			return fail[[]T](input)
		}
		return r
	}
}

// Alt tries parsers in order and returns the first success. A Fatal
// failure (from a Cut inside one of the alternatives) stops the search
// immediately instead of trying the remaining alternatives.
func Alt[T any](parsers ...Parser[T]) Parser[T] {
	return func(input []lexer.Token) Result[T] {
		var lastErr *ParseError
		for _, p := range parsers {
			r := p(input)
			if r.Ok || r.Fatal {
				return r
			}
			if r.Err != nil {
				lastErr = r.Err
			}
		}
		return failErr[T](input, lastErr)
	}
}

// Cut converts any subsequent failure of p into a Fatal failure, which
// short-circuits sibling alternatives in an enclosing Alt or Longest: once
// p has matched enough to commit to this branch, a later mismatch is a
// real syntax error, not just "try the next alternative".
func Cut[T any](p Parser[T]) Parser[T] {
	return func(input []lexer.Token) Result[T] {
		r := p(input)
		if !r.Ok {
			return fatal[T](input)
		}
		return r
	}
}

// Not is a negative lookahead: it succeeds with the zero value, consuming
// nothing, iff p fails on the current input.
func Not[T any](p Parser[T]) Parser[struct{}] {
	return func(input []lexer.Token) Result[struct{}] {
		if r := p(input); r.Ok {
			return fail[struct{}](input)
		}
		return ok(struct{}{}, input)
	}
}

// Longest tries every parser against the same starting input and keeps
// whichever consumed the most (left the shortest remainder), the same way
// morph's orLongest works over raw text. A Fatal result from any
// alternative (via Cut) immediately short-circuits the whole combinator,
// since a Cut inside a branch means that branch, once entered, cannot be
// un-entered even to try a longer sibling.
func Longest[T any](parsers ...Parser[T]) Parser[T] {
	return func(input []lexer.Token) Result[T] {
		var best Result[T]
		found := false
		var lastErr *ParseError
		for _, p := range parsers {
			r := p(input)
			if r.Fatal {
				return r
			}
			if !r.Ok {
				if r.Err != nil {
					lastErr = r.Err
				}
				continue
			}
			if !found || len(r.Rest) < len(best.Rest) {
				best = r
				found = true
			}
		}
		if !found {
			return failErr[T](input, lastErr)
		}
		return best
	}
}

// Tuple2 sequences two parsers and pairs their results.
func Tuple2[A, B any](pa Parser[A], pb Parser[B]) Parser[struct {
	A A
	B B
}] {
	type pair = struct {
		A A
		B B
	}
	return func(input []lexer.Token) Result[pair] {
		ra := pa(input)
		if !ra.Ok {
			if ra.Fatal {
				return fatal[pair](input)
			}
			return fail[pair](input)
		}
		rb := pb(ra.Rest)
		if !rb.Ok {
			if rb.Fatal {
				return fatal[pair](input)
			}
			return fail[pair](input)
		}
		return ok(pair{A: ra.Value, B: rb.Value}, rb.Rest)
	}
}

// Map transforms a successful parse result.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(input []lexer.Token) Result[B] {
		r := p(input)
		if !r.Ok {
			if r.Fatal {
				return fatalErr[B](input, r.Err)
			}
			return failErr[B](input, r.Err)
		}
		return ok(f(r.Value), r.Rest)
	}
}

// Separated matches one or more Item separated by Sep, à la the CLL
// grammar's comma-free lists (sentences separated by "i", tanru units
// separated by "bo", etc.).
type Separated[Item, Sep any] struct {
	Items []Item
	Seps  []Sep
}

// SeparatedBy builds a parser for Separated[Item, Sep].
func SeparatedBy[Item, Sep any](item Parser[Item], sep Parser[Sep]) Parser[Separated[Item, Sep]] {
	return func(input []lexer.Token) Result[Separated[Item, Sep]] {
		first := item(input)
		if !first.Ok {
			if first.Fatal {
				return fatal[Separated[Item, Sep]](input)
			}
			return fail[Separated[Item, Sep]](input)
		}
		out := Separated[Item, Sep]{Items: []Item{first.Value}}
		rest := first.Rest
		for {
			s := sep(rest)
			if !s.Ok {
				if s.Fatal {
					return fatal[Separated[Item, Sep]](input)
				}
				break
			}
			next := item(s.Rest)
			if !next.Ok {
				if next.Fatal {
					return fatal[Separated[Item, Sep]](input)
				}
				break
			}
			out.Seps = append(out.Seps, s.Value)
			out.Items = append(out.Items, next.Value)
			rest = next.Rest
		}
		return ok(out, rest)
	}
}

// MustConsume wraps p so that it fails if p would otherwise succeed
// without consuming any tokens, preventing zero-width matches inside
// alternations where an empty match would be ambiguous with "this
// alternative doesn't apply".
func MustConsume[T any](p Parser[T]) Parser[T] {
	return func(input []lexer.Token) Result[T] {
		r := p(input)
		if r.Ok && len(r.Rest) == len(input) {
			return fail[T](input)
		}
		return r
	}
}

// Postcond wraps p so that its result must additionally satisfy pred,
// used for CLL rules that are syntactically permissive but semantically
// require at least one optional field to be present (e.g. a bare Time tag
// must have at least one of zi/offset/duration/properties). A rejected
// match stays backtrackable (Ok=false, not Fatal) so an enclosing Alt can
// still try sibling alternatives, and it carries a PostConditionFailed
// ParseError tagged with label in Err. Map, Alt and Longest pass that Err
// on; Tuple2, SeparatedBy and Cut drop it, so it does not reach the error
// returned by Parse.
func Postcond[T any](p Parser[T], pred func(T) bool, label string) Parser[T] {
	return func(input []lexer.Token) Result[T] {
		r := p(input)
		if !r.Ok {
			return r
		}
		if !pred(r.Value) {
			return failErr[T](input, &ParseError{Kind: PostConditionFailed, Message: label})
		}
		return r
	}
}
