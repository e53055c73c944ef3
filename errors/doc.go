/*
Package errors implements custom error interfaces for the htlc module.

The idea is to reuse as many errors from this package as possible and define
custom errors when absolutely necessary. If you want to register a custom
error - use Register(code, description). For reusing errors - use ErrXyz.New
and ErrXyz.Newf. Code is a stable identifier that allows to distinguish types
of errors on the caller side and act accordingly.

There is also support for stacktraces. Please ensure you create the error
using ErrXyz.New("...") or errors.Wrap(err, "...") at the point of creation to
ensure we attach a stacktrace. If you wrap multiple times, we only record the
first wrap with the stacktrace.

Once you have an error, you can use fmt.Printf/Sprintf to get more context
for the error
	%s is just the error message
	%+v is the full stack trace
	%v appends a compressed [filename:line] where the error was created
*/
package errors
