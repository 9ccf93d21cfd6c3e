// Package rigid2d implements the narrow-phase contact manifold
// generator and constant-volume joint of a 2D rigid-body engine: five
// pairwise colliders (circle-circle, polygon-circle, polygon-polygon,
// edge-circle, edge-polygon), their shared clipping kernel and contact
// feature IDs, point-state diffing for warm-starting, and the
// ConstantVolumeJoint area constraint. Broad-phase, the island solver
// and body/world bookkeeping are external collaborators; this package
// only fills in the geometry between them.
package rigid2d

import "github.com/duskforge/rigid2d/geom"

// Vec2 re-exports geom.Vec2 at package level so callers working
// directly with manifolds and colliders rarely need to import geom
// themselves.
type Vec2 = geom.Vec2
