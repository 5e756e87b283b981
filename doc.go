// Package fingrow provides the functions and types for tracking personal
// finances. It is designed to be local-first, keeping all data in plain JSON
// files so users have full control and transparency over their financial data.
//
// The core functionalities include:
//   - Transaction Ledger: Recording income and expense entries, assets,
//     liabilities and free-text notes, kept sorted newest first.
//   - Aggregation: Stateless functions computing totals, category breakdowns,
//     monthly and daily series, windowed filters and net worth.
//   - Budget Planner: Per-category monthly limits measured against spending,
//     with income projected from the previous calendar month and a monthly
//     savings goal.
//   - Data Persistence: A key-value store of JSON files with documented
//     defaults, so a fresh or damaged data directory always yields a working
//     application.
//
// This package serves as the foundational logic for the `fingrow`
// command-line tool; the AI advisor lives in the advisor subpackage.
package fingrow
