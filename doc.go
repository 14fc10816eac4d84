// Package rebalance provides the calculation core of a personal investment
// portfolio tool: target-ratio rebalancing and tax-lot accounting.
//
// The core functionalities include:
//   - Rebalancing Strategies: three selectable allocation strategies that turn
//     a portfolio snapshot and an optional cash inflow into per-holding
//     buy/sell amounts (add new cash, simple ratio, sell/redistribute).
//   - Tax Lot Accounting: rebuilding cost-basis lots from a transaction
//     history, and simulating hypothetical sales under the FIFO, LIFO and
//     HIFO conventions to find the minimum-tax disposal.
//   - Exact Arithmetic: every monetary amount, quantity and ratio is an
//     arbitrary-precision decimal; no float64 ever enters a calculation path.
//
// All calculations are synchronous and pure: each call builds fresh results
// from the snapshot it is given, never mutating its inputs, so callers may
// invoke the engines concurrently without coordination. The only shared state
// is the decimal factory held by Decimals, which is loaded once and reused.
//
// This package serves as the foundational logic for the `rbc` command-line
// tool, which feeds it snapshots and renders its reports.
package rebalance
