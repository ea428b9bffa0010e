package domain

// ResultKind tags a Result.
type ResultKind string

const (
	ResultSuccess  ResultKind = "success"
	ResultError    ResultKind = "error"
	ResultNavigate ResultKind = "navigate"
)

// Result is the envelope returned by dashboard actions. Exactly one of the variants is set:
// success carries Data, error carries Err, navigate carries Location (and optionally Data).
// Navigate is a completed mutation asking the caller to move to another view; it is not a failure.
type Result[T any] struct {
	Kind     ResultKind
	Data     T
	Err      error
	Location string
}

// Success wraps data in a success result.
func Success[T any](data T) Result[T] {
	return Result[T]{Kind: ResultSuccess, Data: data}
}

// Failure wraps err in an error result.
func Failure[T any](err error) Result[T] {
	return Result[T]{Kind: ResultError, Err: err}
}

// NavigateTo returns a navigate result pointing at location.
func NavigateTo[T any](location string, data T) Result[T] {
	return Result[T]{Kind: ResultNavigate, Data: data, Location: location}
}

// OK reports whether the result is not an error. Navigate counts as OK.
func (r Result[T]) OK() bool {
	return r.Kind != ResultError
}
