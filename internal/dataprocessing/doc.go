// Package dataprocessing implements the GC-MS workbook cleaning pipeline.
//
// A raw instrument export contains several subsheets (IntRes, LibRes, QRes,
// CalCurve, ...). The pipeline extracts the LibRes library-search sheet,
// keeps the single best-quality hit per compound, renames the export's
// header variants to a stable snake_case schema and attaches sample
// metadata parsed from the file name. Each file is processed to completion
// before the next one; a failing file yields no rows at all.
package dataprocessing
