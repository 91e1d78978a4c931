package service

import "github.com/skip2/go-qrcode"

// DefaultQRGenerator renders 256x256 medium-redundancy PNGs, the size the
// dine-in client scans.
type DefaultQRGenerator struct{}

func (DefaultQRGenerator) Generate(data string) ([]byte, error) {
	return qrcode.Encode(data, qrcode.Medium, 256)
}
