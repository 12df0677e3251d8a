// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package pilcheck

import (
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/wdamron/pilcheck/ast"
	"github.com/wdamron/pilcheck/internal/typeutil"
	"github.com/wdamron/pilcheck/types"
)

// Program is the input of the checker: enum declarations, symbols with fully-qualified names,
// identities, and constraint statements.
type Program struct {
	Enums      []*types.EnumDeclaration
	Symbols    []*ast.Symbol
	Identities []*ast.Identity
	// Statements are top-level expressions which evaluate to a constraint or an array of
	// constraints: `array_map(3, x, |i| set_equal(i, y))`
	Statements []ast.Expr
}

// Analyzed is the result of checking a program.
type Analyzed struct {
	// Program is the checked program. Literals and references to generic symbols are annotated
	// with their types.
	Program *Program
	symbols symbolTable
	enums   map[string]*types.EnumDeclaration
}

// TypeOfSymbol returns the type scheme of a checked symbol or builtin.
func (a *Analyzed) TypeOfSymbol(name string) (*types.TypeScheme, error) {
	id, ok := a.symbols.lookup(name)
	if !ok {
		return nil, usageErrorf("Unknown symbol %s", name)
	}
	slot := a.symbols.slot(id)
	if slot.state != done {
		return nil, usageErrorf("Symbol %s has not been checked", name)
	}
	return slot.scheme, nil
}

// SymbolNames returns the names of the checked program symbols in sorted order. Builtins are not
// included.
func (a *Analyzed) SymbolNames() []string {
	var names []string
	a.symbols.Range(func(name string, slot *symbolSlot) bool {
		if !slot.isBuiltin() {
			names = append(names, name)
		}
		return true
	})
	return names
}

// Enum returns a declared or builtin enum.
func (a *Analyzed) Enum(name string) (*types.EnumDeclaration, bool) {
	e, ok := a.enums[name]
	return e, ok
}

// Check type-checks a program with a new Checker.
func Check(p *Program) (*Analyzed, error) { return NewChecker().Check(p) }

// Checker is a re-usable context for type-checking programs. A checker cannot be used concurrently.
type Checker struct {
	u       *typeutil.Unifier
	symbols symbolTable
	enums   map[string]*types.EnumDeclaration
	locals  []local
	sites   []site
	// literal default type, or nil
	defaultLiteral types.Type
	logger         *slog.Logger
}

// Lambda parameter or pattern variable in scope
type local struct {
	name string
	typ  types.Type
}

type siteKind uint8

const (
	literalSite siteKind = iota
	patternSite
	referenceSite
)

// Monomorphization site: a literal, or a reference to a generic symbol. The types of a site must be
// concrete after checking.
type site struct {
	kind    siteKind
	expr    ast.Expr
	pattern *ast.NumberPattern
	// printed literal, or name of the referenced symbol
	name string
	// type of the literal, or type arguments of the reference
	types    []types.Type
	resolved []types.Type
}

func (s *site) String() string {
	if s.kind == referenceSite {
		return "reference to generic symbol " + s.name
	}
	return "literal " + s.name
}

// Create a new checker. A checker may be re-used across calls of Check.
func NewChecker() *Checker {
	c := &Checker{u: typeutil.NewUnifier()}
	c.reset()
	return c
}

// SetLogger enables debug logging of the checking phases.
func (c *Checker) SetLogger(logger *slog.Logger) { c.logger = logger }

// SetDefaultLiteralType enables defaulting: before the concreteness checks, the types of literals
// which are still unknown are set to t. Defaulting is disabled when t is nil, which is the default.
func (c *Checker) SetDefaultLiteralType(t types.Type) { c.defaultLiteral = t }

func (c *Checker) debug(msg string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}

func (c *Checker) reset() {
	c.u.Reset()
	c.symbols = newSymbolTable()
	c.enums = make(map[string]*types.EnumDeclaration, 8)
	c.locals, c.sites = c.locals[:0], nil
}

// Check type-checks a program. The program is rejected as a whole if any symbol or identity fails to
// check. On success, literals and references to generic symbols in the program are annotated with
// their types.
func (c *Checker) Check(p *Program) (*Analyzed, error) {
	c.reset()
	if err := c.registerEnums(p.Enums); err != nil {
		return nil, err
	}
	ids, err := c.registerSymbols(p.Symbols)
	if err != nil {
		return nil, err
	}
	if err := c.checkMonomorphic(ids, p); err != nil {
		return nil, err
	}
	if err := c.checkGeneric(ids); err != nil {
		return nil, err
	}
	c.annotate(p)
	return &Analyzed{Program: p, symbols: c.symbols, enums: c.enums}, nil
}

func (c *Checker) registerEnums(enums []*types.EnumDeclaration) error {
	for _, list := range [2][]*types.EnumDeclaration{builtinEnums, enums} {
		for _, e := range list {
			if _, exists := c.enums[e.Name]; exists {
				return usageErrorf("Duplicate enum %s", e.Name)
			}
			c.enums[e.Name] = e
		}
	}
	for _, e := range enums {
		for _, v := range e.Variants {
			for _, f := range v.Fields {
				if err := c.validateType(f); err != nil {
					return errors.Wrapf(err, "Invalid field type of variant %s::%s", e.Name, v.Name)
				}
			}
		}
	}
	return nil
}

// Check that every enum referenced in t is declared.
func (c *Checker) validateType(t types.Type) error {
	switch t := t.(type) {
	case *types.Named:
		if _, ok := c.enums[t.Name]; !ok {
			return usageErrorf("Unknown enum %s", t.Name)
		}
	case *types.Tuple:
		for _, item := range t.Items {
			if err := c.validateType(item); err != nil {
				return err
			}
		}
	case *types.Array:
		return c.validateType(t.Base)
	case *types.Function:
		for _, p := range t.Params {
			if err := c.validateType(p); err != nil {
				return err
			}
		}
		return c.validateType(t.Value)
	}
	return nil
}

// Register builtins and program symbols. It returns the ids of the program symbols which are checked,
// in program order.
func (c *Checker) registerSymbols(symbols []*ast.Symbol) ([]symbolID, error) {
	for _, name := range BuiltinNames() {
		ts := builtinSchemes[name]
		slot := symbolSlot{name: name, declared: ts, state: done, scheme: ts}
		if !ts.IsGeneric() {
			slot.mono = ts.Type
		}
		c.symbols.add(slot)
	}

	ids := make([]symbolID, 0, len(symbols))
	for _, sym := range symbols {
		if id, exists := c.symbols.lookup(sym.Name); exists {
			if c.symbols.slot(id).isBuiltin() {
				c.debug("builtin overrides symbol", "name", sym.Name)
				continue
			}
			return nil, usageErrorf("Duplicate symbol %s", sym.Name)
		}
		declared := sym.TypeScheme
		if declared == nil && sym.Kind != ast.Other {
			declared = types.Mono(types.Col)
		}
		slot := symbolSlot{name: sym.Name, sym: sym, declared: declared}
		if declared != nil {
			if err := c.validateType(declared.Type); err != nil {
				return nil, errors.Wrapf(err, "Invalid declared type of symbol %s", sym.Name)
			}
			if !declared.IsGeneric() {
				slot.mono = declared.Type
			}
		} else {
			slot.mono = c.u.Fresh(types.NoCapabilities)
		}
		id, _ := c.symbols.add(slot)
		ids = append(ids, id)
	}
	return ids, nil
}

// Check the symbols without type-variables, in dependency order, then the identities. All solved
// constraints are kept.
func (c *Checker) checkMonomorphic(ids []symbolID, p *Program) error {
	for _, group := range c.dependencyOrder(ids) {
		for _, id := range group {
			slot := c.symbols.slot(id)
			if slot.isGeneric() {
				continue
			}
			slot.state = inProgress
			if err := c.checkSymbol(slot, slot.mono); err != nil {
				return err
			}
			c.debug("checked symbol", "name", slot.name, "type", lazyType{c.u, slot.mono})
		}
	}
	for _, id := range p.Identities {
		if err := c.checkIdentity(id); err != nil {
			return err
		}
	}
	for _, e := range p.Statements {
		if err := c.checkStatement(e); err != nil {
			return err
		}
	}

	if err := c.applyDefaults(0); err != nil {
		return err
	}

	var errs error
	for _, id := range ids {
		slot := c.symbols.slot(id)
		if slot.declared == nil && !c.u.IsConcrete(slot.mono) {
			errs = multierr.Append(errs, &ConcreteSymbolError{Name: slot.name, Inferred: c.u.Generalize(slot.mono)})
		}
	}
	if errs != nil {
		return errs
	}
	if err := c.checkSites(0); err != nil {
		return err
	}

	for _, id := range ids {
		slot := c.symbols.slot(id)
		if slot.isGeneric() {
			continue
		}
		if slot.declared != nil {
			c.symbols.finish(id, slot.declared)
		} else {
			c.symbols.finish(id, types.Mono(c.u.Apply(slot.mono)))
		}
	}
	return nil
}

// Check each symbol with a generic declared type in isolation: its type parameters are instantiated
// with rigid type-variables, and all constraints solved while checking its definition are rolled back
// afterwards.
func (c *Checker) checkGeneric(ids []symbolID) error {
	for _, id := range ids {
		slot := c.symbols.slot(id)
		if !slot.isGeneric() {
			continue
		}
		slot.state = inProgress
		snap, mark := c.u.Snapshot(), len(c.sites)
		ty, args := c.u.Instantiate(slot.declared, true)
		err := c.checkSymbol(slot, ty)
		if err == nil {
			err = c.applyDefaults(mark)
		}
		if err == nil {
			err = c.checkSites(mark)
		}
		if err == nil {
			err = c.checkBounds(slot, args)
		}
		c.u.Restore(snap)
		if err != nil {
			return err
		}
		c.symbols.finish(id, slot.declared.MinimizeBounds())
		c.debug("checked generic symbol", "name", slot.name, "scheme", slot.scheme)
	}
	return nil
}

// Check that the capabilities required of the rigid type-variables are exactly the declared bounds.
func (c *Checker) checkBounds(slot *symbolSlot, args []types.Type) error {
	declared := slot.declared.MinimizeBounds()
	inferred := &types.TypeScheme{Vars: make([]types.SchemeVar, len(declared.Vars)), Type: declared.Type}
	mismatch := false
	for i, v := range declared.Vars {
		required := c.u.Required(args[i].(*types.Var).ID).Minimize()
		inferred.Vars[i] = types.SchemeVar{Var: v.Var, Bounds: required}
		if required != v.Bounds {
			mismatch = true
		}
	}
	if mismatch {
		return &SchemeMismatchError{Name: slot.name, Declared: declared, Inferred: inferred}
	}
	return nil
}

// Bind the unknown types of the literals recorded since mark to the default literal type, if
// defaulting is enabled.
func (c *Checker) applyDefaults(mark int) error {
	if c.defaultLiteral == nil {
		return nil
	}
	for i := mark; i < len(c.sites); i++ {
		s := &c.sites[i]
		if s.kind == referenceSite {
			continue
		}
		if err := c.u.ApplyDefault(s.types[0], c.defaultLiteral); err != nil {
			return errors.Wrapf(err, "Unable to default the type of %s to %s", s, c.defaultLiteral)
		}
	}
	return nil
}

// Check that the monomorphization sites recorded since mark are concrete, and store their types.
func (c *Checker) checkSites(mark int) error {
	var errs error
	for i := mark; i < len(c.sites); i++ {
		s := &c.sites[i]
		resolved := make([]types.Type, len(s.types))
		for j, t := range s.types {
			if !c.u.IsConcrete(t) {
				resolved = nil
				break
			}
			resolved[j] = c.u.Apply(t)
		}
		if resolved == nil {
			errs = multierr.Append(errs, &NonConcreteError{Site: s.String()})
			continue
		}
		s.resolved = resolved
	}
	return errs
}

func (c *Checker) checkSymbol(slot *symbolSlot, expected types.Type) error {
	sym := slot.sym
	if sym.Value == nil {
		return nil
	}
	if err := c.checkDefinition(sym, expected); err != nil {
		return &SymbolError{Name: sym.Name, Definition: ast.DefinitionString(sym.Name, sym.Value), Err: err}
	}
	return nil
}

func (c *Checker) checkDefinition(sym *ast.Symbol, expected types.Type) error {
	switch def := sym.Value.(type) {
	case *ast.Expression:
		if sym.Kind == ast.Intermediate {
			return c.expect(def.Expr, types.ColumnToExpr(expected))
		}
		if expected == types.Col {
			return c.checkColumnFunction(def.Expr)
		}
		return c.expect(def.Expr, expected)

	case *ast.Mapping:
		if expected == types.Col {
			return c.checkColumnFunction(def.Expr)
		}
		return c.expect(def.Expr, expected)

	case *ast.Query:
		return c.expect(def.Expr, queryType)

	case *ast.Array:
		for _, el := range def.Elements {
			for _, e := range el.Pattern {
				if err := c.expect(e, types.Fe); err != nil {
					return err
				}
			}
		}
		return nil
	}
	panic("unknown definition type: " + sym.Value.DefinitionName())
}

var (
	intToFe  = &types.Function{Params: []types.Type{types.Int}, Value: types.Fe}
	intToInt = &types.Function{Params: []types.Type{types.Int}, Value: types.Int}
)

// The value of a column is a function from rows to field elements, or to integers.
func (c *Checker) checkColumnFunction(e ast.Expr) error {
	t, err := c.infer(e)
	if err != nil {
		return err
	}
	snap := c.u.Snapshot()
	feErr := c.u.Unify(t, intToFe)
	if feErr == nil {
		return nil
	}
	inferred := c.u.Apply(t)
	c.u.Restore(snap)
	if err := c.u.Unify(t, intToInt); err == nil {
		return nil
	}
	c.u.Restore(snap)
	return &ColumnTypeError{Inferred: inferred, Err: feErr}
}

func (c *Checker) checkIdentity(id *ast.Identity) error {
	for _, side := range [2]*ast.SelectedExpressions{&id.Left, &id.Right} {
		if side.Selector != nil {
			if err := c.expect(side.Selector, types.Expr); err != nil {
				return &IdentityError{Identity: ast.IdentityString(id), Err: err}
			}
		}
		for _, e := range side.Expressions {
			if err := c.expect(e, types.Expr); err != nil {
				return &IdentityError{Identity: ast.IdentityString(id), Err: err}
			}
		}
	}
	return nil
}

var constrArray = &types.Array{Base: types.Constr}

// A statement is an array of constraints, or a single constraint.
func (c *Checker) checkStatement(e ast.Expr) error {
	t, err := c.infer(e)
	if err != nil {
		return errors.Wrapf(err, "Error checking statement %s", ast.ExprString(e))
	}
	snap := c.u.Snapshot()
	arrErr := c.u.Unify(t, constrArray)
	if arrErr == nil {
		return nil
	}
	c.u.Restore(snap)
	inferred := c.u.Apply(t)
	if err := c.u.Unify(t, types.Constr); err == nil {
		return nil
	}
	c.u.Restore(snap)
	return &SubExpressionError{Expr: ast.ExprString(e), Expected: constrArray, Inferred: inferred, Err: arrErr}
}

// Write the types of monomorphization sites back into the program.
func (c *Checker) annotate(p *Program) {
	resolved := make(map[ast.Expr][]types.Type, len(c.sites))
	for i := range c.sites {
		s := &c.sites[i]
		switch {
		case s.resolved == nil:
		case s.kind == patternSite:
			s.pattern.Type = s.resolved[0]
		default:
			resolved[s.expr] = s.resolved
		}
	}
	write := func(slot *ast.Expr) ast.Control[struct{}] {
		switch e := (*slot).(type) {
		case *ast.Number:
			if ts, ok := resolved[e]; ok {
				e.Type = ts[0]
			}
		case *ast.Reference:
			if ts, ok := resolved[e]; ok {
				e.TypeArgs = ts
			}
		}
		return ast.Continue[struct{}]()
	}
	for _, sym := range p.Symbols {
		ast.VisitSymbolMut(sym, ast.PostOrder, write)
	}
	for _, id := range p.Identities {
		ast.VisitIdentityMut(id, ast.PostOrder, write)
	}
	for i := range p.Statements {
		ast.VisitExpressionsMut(&p.Statements[i], ast.PostOrder, write)
	}
}

// Formats a type with the current substitution applied, only when the log record is emitted.
type lazyType struct {
	u *typeutil.Unifier
	t types.Type
}

func (l lazyType) LogValue() slog.Value { return slog.StringValue(types.TypeString(l.u.Apply(l.t))) }
