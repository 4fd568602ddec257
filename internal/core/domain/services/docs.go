// Package services contains the stateless domain services of the delivery
// lifecycle: pricing, driver assignment, and role-based access decisions.
//
// Services here operate purely on domain model values and never touch
// storage or transport. They are safe to construct at composition time and
// share between handlers.
//
//   - CostEstimator prices a delivery from weight and priority
//   - DriverAssigner binds a driver to a delivery, enforcing the role check
//   - AccessPolicy answers "may this role perform this action"
package services
