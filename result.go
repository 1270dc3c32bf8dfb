package specql

// Result is the outcome of an asynchronous render.
type Result struct {
	SQL string
	Err error
}

// RenderAsync renders the spec and delivers the outcome on a channel.
// The work is done before returning; the channel is buffered, holds exactly
// one Result and is already closed.
func RenderAsync(spec *QuerySpec) <-chan Result {
	sql, err := Render(spec)
	ch := make(chan Result, 1)
	ch <- Result{SQL: sql, Err: err}
	close(ch)
	return ch
}
