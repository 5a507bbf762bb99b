package domain

// Outcome carrega um valor ou o erro que impediu obtê-lo
type Outcome[T any] struct {
	Value T
	Err   error
}

func Capture[T any](value T, err error) Outcome[T] {
	return Outcome[T]{Value: value, Err: err}
}

func (o Outcome[T]) OK() bool {
	return o.Err == nil
}

// OrElse retorna o valor quando não há erro, caso contrário o fallback
func (o Outcome[T]) OrElse(fallback T) T {
	if o.Err != nil {
		return fallback
	}
	return o.Value
}
