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

package typeutil

import (
	"github.com/benbjohnson/immutable"

	"github.com/wdamron/pilcheck/types"
)

var emptyMap = immutable.NewSortedMap(nil)

// State is a snapshot of the solved constraints of a Unifier. States are immutable.
type State struct {
	subst types.Substitution
	// capabilities required of unbound flexible type-variables, by id
	bounds *immutable.SortedMap
	// capabilities required of rigid type-variables, by id
	required *immutable.SortedMap
	// ids of rigid type-variables
	rigid *immutable.SortedMap
}

// Unifier solves equality constraints between types. Flexible type-variables are bound by
// unification and carry the capabilities required of them; rigid type-variables stand for the
// declared type parameters of a generic symbol, unify only with themselves and flexible
// type-variables, and record the capabilities required of them.
type Unifier struct {
	Vars  VarTracker
	state State
}

func NewUnifier() *Unifier {
	u := &Unifier{}
	u.Reset()
	return u
}

func (u *Unifier) Reset() {
	u.Vars.Reset()
	u.state = State{subst: types.EmptySubstitution, bounds: emptyMap, required: emptyMap, rigid: emptyMap}
}

// Snapshot returns the current state. Taking a snapshot does not copy anything.
func (u *Unifier) Snapshot() State { return u.state }

// Restore rolls the unifier back to a snapshot. Allocated type-variable ids are not reused.
func (u *Unifier) Restore(s State) { u.state = s }

// Substitution returns the bindings of flexible type-variables.
func (u *Unifier) Substitution() types.Substitution { return u.state.subst }

// Apply rewrites every bound type-variable in t.
func (u *Unifier) Apply(t types.Type) types.Type { return u.state.subst.Apply(t) }

// Fresh allocates a flexible type-variable with the given bounds.
func (u *Unifier) Fresh(bounds types.Capabilities) *types.Var {
	tv := u.Vars.New()
	if !bounds.IsEmpty() {
		u.state.bounds = u.state.bounds.Set(tv.ID, bounds)
	}
	return tv
}

// FreshRigid allocates a rigid type-variable printed with the given name.
func (u *Unifier) FreshRigid(name string) *types.Var {
	tv := u.Vars.NewNamed(name)
	u.state.rigid = u.state.rigid.Set(tv.ID, true)
	return tv
}

// IsRigid checks whether the type-variable with the given id is rigid.
func (u *Unifier) IsRigid(id int) bool {
	_, ok := u.state.rigid.Get(id)
	return ok
}

// Bounds returns the capabilities required of an unbound flexible type-variable.
func (u *Unifier) Bounds(id int) types.Capabilities {
	if caps, ok := u.state.bounds.Get(id); ok {
		return caps.(types.Capabilities)
	}
	return types.NoCapabilities
}

// Required returns the capabilities which have been required of a rigid type-variable.
func (u *Unifier) Required(id int) types.Capabilities {
	if caps, ok := u.state.required.Get(id); ok {
		return caps.(types.Capabilities)
	}
	return types.NoCapabilities
}

// IsConcrete checks that t contains no flexible type-variables after substitution. Rigid
// type-variables count as concrete.
func (u *Unifier) IsConcrete(t types.Type) bool {
	for _, tv := range types.FreeVars(u.Apply(t)) {
		if !u.IsRigid(tv.ID) {
			return false
		}
	}
	return true
}

// Unify makes a and b equal, or returns a *UnifyError, *CapabilityError or *ArityError.
// On failure, bindings made before the conflict was found are kept; callers which need to
// recover take a Snapshot beforehand.
func (u *Unifier) Unify(a, b types.Type) error {
	a, b = u.state.subst.Resolve(a), u.state.subst.Resolve(b)
	if a == types.Bottom || b == types.Bottom {
		return nil
	}

	av, aIsVar := a.(*types.Var)
	bv, bIsVar := b.(*types.Var)
	switch {
	case aIsVar && bIsVar && av.ID == bv.ID:
		return nil
	case aIsVar && !u.IsRigid(av.ID):
		return u.bindVar(av, b)
	case bIsVar && !u.IsRigid(bv.ID):
		return u.bindVar(bv, a)
	case aIsVar || bIsVar:
		return u.mismatch(a, b)
	}

	switch a := a.(type) {
	case types.Primitive:
		if b, ok := b.(types.Primitive); ok && a == b {
			return nil
		}
		return u.mismatch(a, b)

	case *types.Named:
		if b, ok := b.(*types.Named); ok && a.Name == b.Name {
			return nil
		}
		return u.mismatch(a, b)

	case *types.Tuple:
		bt, ok := b.(*types.Tuple)
		if !ok || len(a.Items) != len(bt.Items) {
			return u.mismatch(a, b)
		}
		for i := range a.Items {
			if err := u.Unify(a.Items[i], bt.Items[i]); err != nil {
				return err
			}
		}
		return nil

	case *types.Array:
		bt, ok := b.(*types.Array)
		if !ok || a.Sized && bt.Sized && a.Length != bt.Length {
			return u.mismatch(a, b)
		}
		return u.Unify(a.Base, bt.Base)

	case *types.Function:
		bt, ok := b.(*types.Function)
		if !ok {
			return u.mismatch(a, b)
		}
		if len(a.Params) != len(bt.Params) {
			return &ArityError{A: u.Apply(a).(*types.Function), B: u.Apply(bt).(*types.Function)}
		}
		for i := range a.Params {
			if err := u.Unify(a.Params[i], bt.Params[i]); err != nil {
				return err
			}
		}
		return u.Unify(a.Value, bt.Value)
	}
	return u.mismatch(a, b)
}

func (u *Unifier) mismatch(a, b types.Type) error {
	return &UnifyError{A: u.Apply(a), B: u.Apply(b)}
}

// Bind the unbound flexible type-variable tv to t, after checking that t does not contain tv.
// The capabilities required of tv are carried to t.
func (u *Unifier) bindVar(tv *types.Var, t types.Type) error {
	caps := u.Bounds(tv.ID)
	if other, ok := t.(*types.Var); ok {
		if !caps.IsEmpty() {
			if u.IsRigid(other.ID) {
				u.state.required = u.state.required.Set(other.ID, u.Required(other.ID).Union(caps))
			} else {
				u.state.bounds = u.state.bounds.Set(other.ID, u.Bounds(other.ID).Union(caps))
			}
			u.state.bounds = u.state.bounds.Delete(tv.ID)
		}
		u.state.subst = u.state.subst.Extend(tv.ID, t)
		return nil
	}

	if types.ContainsVar(u.Apply(t), tv.ID) {
		return u.mismatch(tv, t)
	}
	if !caps.IsEmpty() {
		if missing := caps.Closure().Without(types.Supported(t)); !missing.IsEmpty() {
			return &CapabilityError{Type: u.Apply(t), Missing: missing}
		}
		u.state.bounds = u.state.bounds.Delete(tv.ID)
	}
	u.state.subst = u.state.subst.Extend(tv.ID, t)
	return nil
}
