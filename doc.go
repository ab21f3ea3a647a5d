// Package bookkeeping implements the value model of a personal double-entry
// bookkeeping application: exact monetary arithmetic, the Split/Transaction/
// Account balance rules, commodity-aware precision, and the recurrence engine
// driving scheduled transactions and exports.
//
// The value model itself is pure and in-memory: it performs no I/O, no
// logging, and keeps no global state. The codec (EncodeBook/DecodeBook, the
// split record format) and the online RateProvider live beside it as
// collaborators; UI layers consume the Book aggregate on top.
package bookkeeping
