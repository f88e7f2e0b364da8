// Package minora turns ordinal judgements into quantitative preference
// models in Go.
//
// 🚀 What is minora?
//
//	A small, focused library implementing UTASTAR ordinal regression:
//
//	  • Feed it a table of alternatives scored on several criteria plus
//	    the decision-maker's ranking of those alternatives
//	  • Get back additive piecewise-linear marginal utility functions,
//	    criterion weights, fitting errors and a Kendall τ fit statistic
//	  • Score unseen alternatives against the fitted model
//
// ✨ Why choose minora?
//
//   - Faithful method      — the classic UTASTAR pipeline, post-optimality
//     analysis and averaging included
//   - Pluggable solving    — any LP engine satisfying a four-field contract;
//     a gonum simplex adapter ships built in
//   - Deterministic        — each run owns its data; no globals, no hidden state
//   - Honest errors        — sentinel errors for bad configuration, bad values
//     and LP failure; no partial results
//
// Everything is organized under two subpackages:
//
//	utastar/ — the ordinal-regression core: criteria, basis encoding,
//	           LP assembly, post-optimality, result model
//	solver/  — the LP contract (scipy linprog form) + gonum simplex adapter
//
// Quick sketch:
//
//	ranking + table ──► basis matrix ──► fit LP ──► (degenerate? average
//	per-criterion optima) ──► weights, utilities, τ, scoring
//
// Spreadsheet parsing, persistence and plotting live with the caller; the
// library consumes parsed structures and returns a Result.
//
//	go get github.com/quu7/minora
package minora
