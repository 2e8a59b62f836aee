package dataprocessing

import (
	"io"
	"log/slog"
)

// CleanFile runs the full cleaning pipeline for one uploaded workbook:
// extract the LibRes sheet, keep the top-quality hit per compound,
// normalize the column names and attach the file-name metadata as constant
// columns across all rows. Any stage failure propagates unmodified; the
// caller decides how to report it and the file contributes no rows.
func CleanFile(r io.Reader, filename string) (*Table, error) {
	raw, err := ExtractLibResSheet(r, filename)
	if err != nil {
		return nil, err
	}

	top, err := ReduceTopHits(raw)
	if err != nil {
		return nil, err
	}

	cleaned := NormalizeColumns(top)

	meta := ParseFilenameMetadata(filename)
	cleaned.Columns = append(cleaned.Columns, metadataColumns...)
	metaCells := meta.values()
	for i := range cleaned.Rows {
		cleaned.Rows[i] = append(cleaned.Rows[i], metaCells...)
	}

	slog.Info("cleaned workbook",
		slog.String("file", filename),
		slog.Int("compounds", len(cleaned.Rows)),
		slog.String("group", meta.Group),
		slog.String("timepoint", meta.Timepoint),
		slog.String("adsorbent", meta.Adsorbent))

	return cleaned, nil
}
