// Package guard provides a defensive pattern that ensures value objects,
// entities, commands and queries are only created through their designated
// constructor functions. A zero-value struct embedding a ConstructorGuard
// fails validation, so direct struct literals cannot bypass invariants.
package guard

import "errors"

// ErrNotConstructed is the default error returned by Validate when a nil
// error is passed, so validation always fails with a meaningful message.
var ErrNotConstructed = errors.New("object must be created via its constructor")

// ConstructorGuard tracks whether the embedding object was created through
// its constructor. The zero value is "not constructed".
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the "constructed" state.
// Constructors embed the result into the object they build.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guard was created via NewConstructorGuard.
// Otherwise it returns notConstructedErr, or ErrNotConstructed when
// notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.isConstructed {
		return nil
	}

	if notConstructedErr == nil {
		return ErrNotConstructed
	}

	return notConstructedErr
}
