package simplextree

import "errors"

// ErrMissingFacet is returned when a facet expected during boundary
// emission cannot be found via FindSimplex. Per spec §4.1, this indicates
// the tree's face-closure invariant (I2) has been broken — it is a
// corruption signal, not an expected runtime condition.
var ErrMissingFacet = errors.New("simplextree: missing facet")

// ErrUnknownGlobalIndex is returned by FindVertices / GetSimplexData when
// the requested global index does not correspond to any node in the tree.
var ErrUnknownGlobalIndex = errors.New("simplextree: unknown global index")

// ErrEmptySimplex is returned by AddSimplex when called with zero vertices.
var ErrEmptySimplex = errors.New("simplextree: simplex has no vertices")

// ErrUnsortedVertices is returned by AddSimplex / AddSimplexWithOrigin when the
// supplied vertex list is not strictly increasing, which would violate
// invariant I1.
var ErrUnsortedVertices = errors.New("simplextree: vertices must be strictly increasing")

// ErrOrigXOutOfRange is returned by UpdateXYIndexes when a node's stored
// origX falls outside the supplied lookup table.
var ErrOrigXOutOfRange = errors.New("simplextree: original x-coordinate out of range")
