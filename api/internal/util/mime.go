package util

// SniffMimeHTTP detects the media type of an uploaded image by magic
// bytes. Schedules arrive as photos or screenshots, so only JPEG and PNG
// are recognized.
func SniffMimeHTTP(b []byte) string {
	// JPEG: FF D8
	if len(b) >= 2 && b[0] == 0xFF && b[1] == 0xD8 {
		return "image/jpeg"
	}
	// PNG
	if len(b) >= 8 &&
		b[0] == 0x89 && b[1] == 0x50 && b[2] == 0x4E && b[3] == 0x47 &&
		b[4] == 0x0D && b[5] == 0x0A && b[6] == 0x1A && b[7] == 0x0A {
		return "image/png"
	}
	return "application/octet-stream"
}

// IsSupportedImage reports whether the bytes look like a png/jpg upload.
func IsSupportedImage(b []byte) bool {
	switch SniffMimeHTTP(b) {
	case "image/jpeg", "image/png":
		return true
	}
	return false
}
