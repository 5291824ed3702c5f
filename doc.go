// Package p3c is the ingestion layer of the P3C frequent-pattern /
// association-rule mining pipeline: it reads heterogeneous dataset
// formats and hands the mining engine a populated attribute catalog and
// a uniform fixed-width record stream.
//
// 🚀 What is the ingestion layer?
//
//	Two passes over one logical source, behind one contract:
//		• Statistics computation — parses structural headers into the
//		  Attribute catalog, counts every distinct value's frequency
//		  (the raw Selector pool), and freezes the minimum support count
//		• Streaming pass — re-reads the source and emits each record as
//		  a normalized token array of fixed width, so the miner never
//		  re-validates structure
//
// ✨ Why this shape?
//
//   - Robust by policy – malformed rows are repaired (pad, truncate,
//     clip, drop), never rejected; only structural failures propagate
//   - Two encodings, one contract – quote-aware delimited text and
//     sparse/dense binary matrices expose the same capability set
//   - Deterministic – rebinding and re-streaming a source yields the
//     identical record sequence, every time
//
// Everything is organized under flat subpackages:
//
//	dataset/    — data model (Attribute, Selector), Reader contract,
//	              format detection, sentinel errors, options
//	csvreader/  — delimited-text adapter (quote-aware, null-symbol "?")
//	arffreader/ — sparse/dense binary adapter (presence/absence "0"/"1")
//	selectors/  — selector preparation for the mining engine
//	cmd/        — p3cstats driver (info, stream, benchmark-style sweep)
package p3c
