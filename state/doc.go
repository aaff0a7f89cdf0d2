// Package state defines the capability contract every searchable game
// state must satisfy, and the tree-node bookkeeping the search engine
// attaches on top of it.
//
// A host brings its own type implementing State — advance a turn, list
// legal actions, report done/dead, score itself, and clone — and every
// driver in beam/ and random/ is generic over that single contract.
// Node wraps a State with the three engine-owned fields the search tree
// needs: a parent back-link, the action that produced the node, and a
// cached evaluated score used for ordering.
//
// Equality and hashing of a State are never required by this package or
// its callers; states are only ever cloned, advanced, and scored.
package state
