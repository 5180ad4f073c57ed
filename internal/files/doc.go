// Package files provides the input-side file collaborators for the sales
// processing tool.
//
// Reader loads a sales CSV into raw, unvalidated rows. Each row keeps its
// 1-based file line number (the first data row is line 2, after the header)
// so validation failures can be reported against the original file.
//
// Example usage:
//
//	reader := files.NewReader(logger)
//	rows, err := reader.ReadSalesFile(ctx, "sales.csv")
//	if err != nil {
//	    // typed AppError: NOT_FOUND, PERMISSION, or PARSING
//	}
package files
