package shell

import "github.com/brettbedarf/shellsim"

// Result is the outcome of one input line: captured output on success or a
// structured failure. Err is always a *shellsim.Error when set.
type Result struct {
	Output string
	Err    error
}

func (r Result) OK() bool {
	return r.Err == nil
}

// Kind returns the failure kind; it is shellsim.UnknownError for a success
func (r Result) Kind() shellsim.ErrorKind {
	return shellsim.KindOf(r.Err)
}

// Message is the text a terminal would show: the output on success, or the
// error message followed by a newline on failure
func (r Result) Message() string {
	if r.Err != nil {
		return r.Err.Error() + "\n"
	}
	return r.Output
}
