package render

// FillGrayRGBA converts field values into opaque grayscale RGBA pixels in
// buf. Values are clamped to [0,1] here, at the display boundary: the
// simulation legitimately holds transient values outside that range.
func FillGrayRGBA(buf []byte, field []float32) {
	for i, v := range field {
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		gray := uint8(v * 255)
		base := i * 4
		buf[base+0] = gray
		buf[base+1] = gray
		buf[base+2] = gray
		buf[base+3] = 0xff
	}
}
