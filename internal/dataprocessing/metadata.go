package dataprocessing

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	timepointPattern = regexp.MustCompile(`(\d+)\s*h`)
	samplePattern    = regexp.MustCompile(`[-_\s](char|dvb)-(\d+)`)
)

// ParseFilenameMetadata derives sample attributes from a workbook file name.
// The lab encodes the experiment in the name itself, e.g.
// "Healthy_24h_char-1.xlsx" or "Infested_MASA_72h_dvb-3.xls". Signals that
// are absent simply leave their field empty; the parser never fails.
func ParseFilenameMetadata(filename string) SampleMetadata {
	name := strings.ToLower(filename)

	meta := SampleMetadata{SourceFile: filename}

	// timepoint like 24h, 48 h, 72h
	if m := timepointPattern.FindStringSubmatch(name); m != nil {
		meta.Timepoint = m[1] + "h"
	}

	// adsorbent: activated charcoal wins over DVB when both appear
	switch {
	case strings.Contains(name, "char"):
		meta.Adsorbent = "char"
	case strings.Contains(name, "dvb"):
		meta.Adsorbent = "dvb"
	}

	// sample number, e.g. -char-1, _char-1 or _dvb-3
	if m := samplePattern.FindStringSubmatch(name); m != nil {
		if n, err := strconv.Atoi(m[2]); err == nil {
			meta.Sample = &n
		}
	}

	hasMasa := strings.Contains(name, "masa")
	switch {
	case strings.Contains(name, "healthy") && !strings.Contains(name, "infested"):
		meta.Group = "healthy"
		if hasMasa {
			meta.Group = "healthy+masa"
		}
	case strings.Contains(name, "infested"):
		meta.Group = "infested"
		if hasMasa {
			meta.Group = "infested+masa"
		}
	}

	return meta
}
