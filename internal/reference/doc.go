// Package reference holds the static D&D 5e rules content: classes, species, backgrounds, spells,
// weapons, armor, feats, invocations, maneuvers, metamagic and tools.
//
// Tables are embedded YAML documents parsed once at start and never written afterwards. Every entry has
// a stable id used for cross references; the name is for display. Lookups return ok=false for unknown
// ids and Resolve keeps unknown ids in an explicit Unresolved list so callers can skip them without
// losing them.
package reference
