// Package kin provides the core value types for the kinship-atlas
// relationship engine.
//
// This package contains type definitions and pure helpers only. All other
// internal packages import kin; kin imports nothing internal. This keeps it
// the foundational layer with no circular dependencies.
//
// Key design constraints:
//   - A stored RelationEdge is directed, but represents ONE bidirectional
//     relationship. Kind inversion lives in exactly one table here
//     (Kind.Inverse); no other package may re-derive it.
//   - Dates are day-granularity calendar dates with no time component.
//     The zero Date means "unknown", never "year zero".
//   - Pair keys are order-independent and NFC-normalized so that derived
//     identities are stable across endpoints and replicas.
package kin
