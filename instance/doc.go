// SPDX-License-Identifier: MIT

// Package instance reads, writes and generates weight matrices.
//
// Two on-disk formats are supported: CSV (".csv") and whitespace-separated
// text (anything else). Blank lines and lines starting with '#' are skipped
// in both. Generate samples planted-partition instances for experiments and
// tests.
package instance
