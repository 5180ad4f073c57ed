// Package dataprocessing contains the core of the sales processing tool:
// per-row validation/normalization and aggregate statistics.
//
// # Architecture
//
// The package is organized into two components:
//
// 1. RowValidator: validates and normalizes one raw CSV row at a time
// 2. Aggregator: folds validated records into aggregate statistics
//
// # Usage
//
// Validate rows as they are read:
//
//	validator := dataprocessing.NewRowValidator(logger)
//	record, rowErr := validator.Validate(raw, lineNumber)
//	if rowErr != nil {
//	    // log and continue; row failures never abort the run
//	}
//
// Aggregate the valid set:
//
//	aggregator := dataprocessing.NewAggregator(logger, dataprocessing.DefaultAggregatorConfig())
//	stats := aggregator.Aggregate(ctx, records)
//
// # Data Flow
//
// The typical data flow through this package:
//
//	CSV rows → RowValidator → SalesRecords → Aggregator → Statistics → Reports
//
// Both components are pure over in-memory data: the validator is stateless
// per call, the aggregator is a single pass with no side effects, and
// neither ever touches a file handle.
package dataprocessing
