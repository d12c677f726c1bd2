package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateTrackingQR generates a QR code for tracking a sales order
	GenerateTrackingQR(saleID string) ([]byte, error)

	// ParseTrackingQR parses QR code data and returns the sale ID
	ParseTrackingQR(qrData string) (string, error)
}
