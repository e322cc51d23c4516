package value

// The five error kinds from spec §7. Each formats itself exactly per
// the message grammar in spec §6 so that Interpreter.Run can turn a
// returned error directly into the diagnostic string the host sees,
// without a second translation table.

// ArgError reports that an argument failed a type or non-empty
// precondition (InvalidArgument in spec §7).
type ArgError struct {
	Value Value
}

func (e *ArgError) Error() string { return "Invalid argument " + e.Value.Print() }

// InsufficientArgsError reports that a builtin or user function
// received too few operands.
type InsufficientArgsError struct {
	Call Value
}

func (e *InsufficientArgsError) Error() string {
	return "Insufficient arguments " + e.Call.Print()
}

// VarNotFoundError reports that `get`/`set` named an unregistered host
// variable.
type VarNotFoundError struct {
	Name string
}

func (e *VarNotFoundError) Error() string { return "External variable not found " + e.Name }

// ReadOnlyVarError reports that `set` targeted a readonly registration.
type ReadOnlyVarError struct {
	Name string
}

func (e *ReadOnlyVarError) Error() string {
	return "Attempted write to read-only variable " + e.Name
}

// FuncNotFoundError reports that `call` named an unregistered host
// callback.
type FuncNotFoundError struct {
	Name string
}

func (e *FuncNotFoundError) Error() string { return "Function not found " + e.Name }
