// Package notification provides customer notifications and the report of their delivery.
//
// A Notification starts pending and is delivered over every channel the recipient
// supports. It is marked sent when at least one channel succeeded and failed otherwise.
package notification
