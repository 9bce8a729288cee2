package adapters

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"pkgset-sync/internal/ports"
	"pkgset-sync/internal/types"
)

type ReportFileAdapter struct{}

func NewReportFileAdapter() ReportFileAdapter {
	return ReportFileAdapter{}
}

func (a ReportFileAdapter) WriteBulkReport(path string, report types.BulkReport) error {
	if strings.TrimSpace(path) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("report path is required")
	}
	data, err := yaml.Marshal(report)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to marshal sync report").
			WithCause(err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return types.WithKind(types.ErrorKindIO, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create report directory").
			WithCause(err))
	}
	if err := writeFileAtomic(path, data); err != nil {
		return types.WithKind(types.ErrorKindIO, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write sync report").
			WithCause(err))
	}
	return nil
}

var _ ports.ReportWriterPort = ReportFileAdapter{}
