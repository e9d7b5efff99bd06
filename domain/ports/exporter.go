package ports

import (
	"errors"
	"io"

	"github.com/DsDac0/Website/domain/models"
)

// OrderExporterPort writes orders in a downloadable format.
type OrderExporterPort interface {
	ContentType() string
	FileExtension() string
	ExportOrders(orders []*models.Order, w io.Writer) error
}

var ErrExportUnavailable = errors.New("no order exporter configured")
