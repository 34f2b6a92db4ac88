// Package file reads automaton definitions from disk and keeps finished runs as JSON files.
//
// Two definition formats are understood. The text format is a stream of
// whitespace-separated tokens:
//
//	<alphabet size> <symbol>...
//	<state count> <label>...
//	<start> <accept>
//	<input length> <symbol>...
//	<transition count> (<from> <symbol> <to>)...
//
// Documents (.yaml, .yml, .json) carry the fields of domain.Definition by name.
package file
