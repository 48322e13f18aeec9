package imgproc

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

const (
	// Максимальные габариты после обработки; меньшие изображения не увеличиваются
	MaxWidth  = 1920
	MaxHeight = 1080

	JPEGQuality = 80
)

// Result содержит перекодированное изображение и его метаданные
type Result struct {
	Data   []byte
	Width  int
	Height int
	Format string
	Size   int64
}

// Process декодирует изображение, вписывает его в MaxWidth x MaxHeight
// с сохранением пропорций и перекодирует в JPEG. Исходный формат
// сохраняется в метаданных.
func Process(data []byte) (*Result, error) {
	const op = "imgproc.Process"

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: decode config: %w", op, err)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > MaxWidth || bounds.Dy() > MaxHeight {
		img = imaging.Fit(img, MaxWidth, MaxHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return nil, fmt.Errorf("%s: encode: %w", op, err)
	}

	out := img.Bounds()

	return &Result{
		Data:   buf.Bytes(),
		Width:  out.Dx(),
		Height: out.Dy(),
		Format: format,
		Size:   int64(buf.Len()),
	}, nil
}

// Metadata возвращает метаданные результата в форме для колонки metadata
func (r *Result) Metadata() map[string]interface{} {
	return map[string]interface{}{
		"width":  r.Width,
		"height": r.Height,
		"format": r.Format,
		"size":   r.Size,
	}
}
