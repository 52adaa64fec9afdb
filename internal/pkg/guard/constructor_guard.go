// Package guard implements the constructor-guard pattern used across the domain
// model. Embedding a ConstructorGuard in a struct makes zero-value instances
// detectable, so value objects, entities, and commands can only be used when
// they were created through their designated constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller supplies
// a nil validation error, so validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value is
// "not constructed"; only NewConstructorGuard produces the constructed state.
//
// Example:
//
//	type Capacity struct {
//	    value int
//	    guard guard.ConstructorGuard
//	}
//
//	func NewCapacity(value int) (Capacity, error) {
//	    if value <= 0 {
//	        return Capacity{}, errs.NewValueIsRequiredError("capacity")
//	    }
//	    return Capacity{value: value, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c Capacity) Validate() error {
//	    return c.guard.Validate(ErrCapacityIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking its holder as constructed.
// Call it in every domain constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the holder was created through its constructor,
// otherwise the supplied validationError (or ErrDefaultConstructorGuard when
// validationError is nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
