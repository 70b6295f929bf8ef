package service

// QRCodeService renders checkout URLs as QR codes so a payment started on
// this client can be completed on another device.
type QRCodeService interface {
	// GenerateCheckoutQR returns a PNG rendering of the checkout URL.
	GenerateCheckoutQR(checkoutURL string) ([]byte, error)
}
