// Package exception provides the domain model for post-dispatch delivery exceptions.
//
// The package includes:
//   - Exception: the aggregate root tracking a reported problem and its resolution
//   - Status: a forward-only state machine (Open -> InProgress -> Resolved | Closed)
//   - Severity: the reported impact, which decides escalation and auto-resolution
//   - Escalation: the record handed to the operations team for critical exceptions
//   - Playbook: the table of remedies keyed by exception type
//
// Key business rules:
//   - Exceptions are created Open with severity Medium unless stated otherwise
//   - Status never moves backwards; Resolved and Closed are final
//   - Unknown exception types are accepted and handled by the default remedy
package exception
