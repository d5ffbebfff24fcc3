package landscape

import "fmt"

// FunctionKind enumerates the codomain function families the generator
// understands. The zero value is FunctionUnknown, used when a codomain file
// carries no function descriptor in its header.
type FunctionKind int

const (
	FunctionUnknown FunctionKind = iota
	FunctionRandom
	FunctionTrap
	FunctionDeceptiveTrap
)

// Function describes which codomain function a problem instance was built
// from. It is a descriptor only; the value tables themselves are produced by
// the codomain package.
type Function struct {
	Kind FunctionKind
}

// IOString returns the stable short identifier used in file names and in the
// header of generated codomain files.
func (f Function) IOString() string {
	switch f.Kind {
	case FunctionRandom:
		return "random"
	case FunctionTrap:
		return "trap"
	case FunctionDeceptiveTrap:
		return "deceptive-trap"
	default:
		return "unknown"
	}
}

// String implements fmt.Stringer for log output.
func (f Function) String() string { return f.IOString() }

// ParseFunction resolves a short identifier back into a Function. It is the
// inverse of IOString.
func ParseFunction(id string) (Function, error) {
	switch id {
	case "random":
		return Function{Kind: FunctionRandom}, nil
	case "trap":
		return Function{Kind: FunctionTrap}, nil
	case "deceptive-trap":
		return Function{Kind: FunctionDeceptiveTrap}, nil
	case "unknown":
		return Function{Kind: FunctionUnknown}, nil
	default:
		return Function{}, fmt.Errorf("unknown codomain function %q", id)
	}
}
