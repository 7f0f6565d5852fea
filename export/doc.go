// SPDX-License-Identifier: MIT

// Package export serialises bi-cluster solutions.
//
// A Solution is first flattened into a Record, which is then written as XML
// (the classic <bi_clusters> layout) or YAML. Save chooses the format from
// the file extension.
package export
