// Package nutrition implements a personal nutrition and spending ledger.
//
// Foods and composed meals form a catalog where every nutrient profile is
// stored per 100g. The journal records what was eaten each day, by
// reference into the catalog, and the reports aggregate those references
// into day totals, ranges, and period averages.
//
// All records live as JSONL files in a plain data directory, one line per
// record, rewritten atomically on every change.
package nutrition
