package ports

import "pkgset-sync/internal/types"

type ReportWriterPort interface {
	WriteBulkReport(path string, report types.BulkReport) error
}
