// Package appointment provides the Appointment aggregate and the Customer it belongs to.
//
// Appointments are read-only to the partner, pricing and routing decisions. Only
// exception handling mutates them, by moving their status and by scheduling
// replacement appointments for damaged packages.
package appointment
