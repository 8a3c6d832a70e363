// Package report defines the structured error taxonomy the core surfaces
// (spec.md §7) and the bug-report record handed to a reporting layer once
// the SMT collaborator has answered for a bug node.
//
// Both error kinds are structured records, not strings, "to permit
// integration into IDE-style reporters" (spec.md §7) — callers branch on
// Kind and read Node/Decl for a locator instead of parsing a message.
package report
