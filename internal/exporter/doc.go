// Package exporter writes cleaned tables and batch summaries as UTF-8
// comma-separated files, with an optional BOM for Excel compatibility.
package exporter
