package xerrors

import (
	"runtime"
	"strconv"
	"strings"
)

// WithStackTrace is a wrapper over original err with file:line identification
func WithStackTrace(err error) error {
	if err == nil {
		return nil
	}

	return &stackError{
		stackRecord: record(1),
		err:         err,
	}
}

type stackError struct {
	stackRecord string
	err         error
}

func (e *stackError) Error() string {
	return e.err.Error() + " at `" + e.stackRecord + "`"
}

func (e *stackError) Unwrap() error {
	return e.err
}

// record builds a `pkg.func(file:line)` string for the caller at the given
// depth above record itself.
func record(depth int) string {
	function, file, line, _ := runtime.Caller(depth + 1)
	name := runtime.FuncForPC(function).Name()
	if i := strings.LastIndex(name, "/"); i > -1 {
		name = name[i+1:]
	}
	if i := strings.LastIndex(file, "/"); i > -1 {
		file = file[i+1:]
	}

	return name + "(" + file + ":" + strconv.Itoa(line) + ")"
}
