// Package server exposes generated layouts to observers: a JSON snapshot
// of one successful run and a websocket hub that fans snapshots out to
// every connected client.
//
// The snapshot is a flat, renderer-agnostic description (rooms with their
// occupied cells, connectors with their orientation, run diagnostics);
// clients draw it however they like. The hub owns no generation logic —
// cmd/dungensrv wires a dungeon.Generator to it.
package server
