package tile

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// EncodePNG encodes img as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	var output bytes.Buffer
	if err := png.Encode(&output, img); err != nil {
		return nil, err
	}
	return output.Bytes(), nil
}

// WritePNG writes img to filename, or to stdout when filename is empty.
func WritePNG(filename string, img image.Image) error {
	var output io.Writer

	if filename == "" {
		output = os.Stdout
	} else {
		file, err := os.Create(filename)
		if err != nil {
			return err
		}
		defer file.Close()
		output = file
	}

	if err := png.Encode(output, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
