// Package shared holds cross-cutting helpers that do not belong to a
// single component. Test support lives in the testutil subpackage.
package shared
