package logger

import "github.com/samacumen/MyGenericLogger/core"

// Origin names the code that issued a message. It is rendered as
// "Scope::Function()".
type Origin struct {
	Scope    string
	Function string
}

// At returns an Origin with the given scope and function
func At(scope, function string) Origin {
	return Origin{Scope: scope, Function: function}
}

// Here returns the Origin of its caller: the receiver type and method
// name for methods, the package and function name otherwise.
func Here() Origin {
	c := core.GetCaller(1)
	return Origin{Scope: c.Scope, Function: c.Function}
}

// String returns "Scope::Function()"
func (o Origin) String() string {
	return o.Scope + "::" + o.Function + "()"
}
