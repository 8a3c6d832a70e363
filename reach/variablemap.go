package reach

import (
	"github.com/mcat12/p4gcl/gcl"
	"github.com/mcat12/p4gcl/predicate"
)

// NodeIndex is an alias for gcl.NodeIndex, kept local so this package's
// public types read naturally without every caller importing gcl just to
// spell the key type of a map.
type NodeIndex = gcl.NodeIndex

// VariableMap is the `node -> variable -> list of versions visible at that
// node` structure spec.md §3 names. The list is append-order. The merge
// step contributes the one version all incoming arms agree on or, when
// they disagree, each arm's version in incoming-edge order followed by the
// fresh merge version. After that comes every version the node's own
// assign/havoc commands allocate for the variable, in command order.
type VariableMap map[NodeIndex]map[predicate.VarID][]predicate.Version

// versionedVar pairs a variable's current SSA version with its type, so a
// Versioned leaf can always be constructed without consulting an external
// type table.
type versionedVar struct {
	Ver predicate.Version
	Typ predicate.Type
}
