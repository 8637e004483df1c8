package eval

import (
	"github.com/lispy-lang/lispy"
	"github.com/lispy-lang/lispy/eval/builtins"
)

// NewRootEnvironment builds the bootstrap root environment (spec §6.3):
// every built-in operator bound under its canonical name, with the
// `eval`/`if` builtins wired back to this package's Eval so they can
// recursively evaluate.
func NewRootEnvironment() *lispy.Environment {
	builtins.SetEvaluator(Eval)
	env := lispy.NewEnvironment(nil)
	builtins.Register(env)
	return env
}
