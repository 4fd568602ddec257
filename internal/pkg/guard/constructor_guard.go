// Package guard provides a defensive construction pattern for domain objects.
// Value objects, entities, commands, and queries embed a ConstructorGuard to
// detect instances that were created as zero values instead of through their
// designated constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures objects are only created through their designated
// constructor functions. It works by maintaining an internal flag that is only
// set to true when the object is created through the proper constructor; any
// zero-value struct fails validation.
//
// Example usage:
//
//	var ErrShipmentNotConstructed = errors.New("Shipment must be created via NewShipment")
//
//	type Shipment struct {
//	    id    kernel.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func NewShipment(id kernel.UUID) Shipment {
//	    return Shipment{
//	        id:    id,
//	        guard: guard.NewConstructorGuard(),
//	    }
//	}
//
//	func (s Shipment) Validate() error {
//	    return s.guard.Validate(ErrShipmentNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a ConstructorGuard that marks an object as
// properly constructed. Call it in the constructor of the guarded object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was properly constructed.
// Returns nil for constructed objects, validationError for zero values,
// or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
