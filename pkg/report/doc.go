/*
Package report formats simulation results for output.

TextWriter reproduces the historical trace format exactly: one row per consumed symbol
holding the symbol and one 0/1 flag per declared state (declaration order), each token
followed by a single space, then a final "accept" or "reject" line. JSONWriter emits the
same information as NDJSON for machine consumers.

The package also turns raw input lines into symbol sequences (ParseWord), enforcing the
same size and encoding limits everywhere input enters the system.
*/
package report
