package config

import (
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ardnew/fanlog/dispatch"
	"github.com/ardnew/fanlog/pkg"
)

// recordEnv holds the variables visible to ignore_if expressions: the
// record's level and source, and one constant per level name so that
// expressions can read "level >= DEBUG".
type recordEnv struct {
	Level     int    `expr:"level"`
	LevelName string `expr:"level_name"`
	Source    string `expr:"source"`

	Trace int `expr:"TRACE"`
	Debug int `expr:"DEBUG"`
	Info  int `expr:"INFO"`
	Warn  int `expr:"WARN"`
	Error int `expr:"ERROR"`
}

func makeRecordEnv() recordEnv {
	return recordEnv{
		Trace: int(dispatch.LevelTrace),
		Debug: int(dispatch.LevelDebug),
		Info:  int(dispatch.LevelInfo),
		Warn:  int(dispatch.LevelWarn),
		Error: int(dispatch.LevelError),
	}
}

// compileIgnore compiles an ignore_if expression. The empty expression
// compiles to nil.
func compileIgnore(source string) (*vm.Program, error) {
	if source == "" {
		return nil, nil
	}

	program, err := expr.Compile(source,
		expr.Env(&recordEnv{}),
		expr.AsBool(),
	)
	if err != nil {
		return nil, pkg.ErrIgnoreExpr.Wrap(err)
	}

	return program, nil
}

// exprTarget vetoes records matching a compiled expression in addition to
// the wrapped target's own ignore list.
type exprTarget struct {
	dispatch.Target

	program *vm.Program
	eval    *evaluator
}

// evaluator reuses one VM and one environment for every record checked by a
// target.
type evaluator struct {
	mu  sync.Mutex
	vm  vm.VM
	env recordEnv
}

func newExprTarget(t dispatch.Target, program *vm.Program) exprTarget {
	return exprTarget{Target: t, program: program, eval: &evaluator{env: makeRecordEnv()}}
}

// Ignore implements [dispatch.Target]. An expression that fails at run time
// does not ignore the record.
func (t exprTarget) Ignore(r dispatch.Record) bool {
	if t.Target.Ignore(r) {
		return true
	}

	return t.eval.ignore(t.program, r)
}

func (e *evaluator) ignore(program *vm.Program, r dispatch.Record) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.env.Level = int(r.Level)
	e.env.LevelName = r.Level.String()
	e.env.Source = r.Source

	out, err := e.vm.Run(program, &e.env)
	if err != nil {
		return false
	}

	ignore, _ := out.(bool)

	return ignore
}
