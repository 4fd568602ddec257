// Package delivery provides domain entities and business logic for tracking
// shipments in the logistics system. It implements the Delivery aggregate
// root with lifecycle management and the audit entities paired with it.
//
// The package includes:
//   - Delivery: The aggregate root owning a shipment's status, driver binding,
//     pricing fields, and customer details
//   - Status: The closed set of lifecycle states (Pending, Assigned,
//     InTransit, Delivered, Cancelled)
//   - Priority: The urgency levels (Low, Medium, High) feeding cost estimation
//   - StatusChange: The immutable audit record appended on every status update
//
// Key business rules:
//   - Deliveries must have non-blank addresses, customer details, and a
//     positive weight
//   - The estimated cost is computed once at creation and never recomputed
//   - Status updates are permissive: any valid target status is accepted,
//     but each one must be paired with a StatusChange audit entry
//   - Actual distance and cost can only be recorded on delivered shipments
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package delivery
