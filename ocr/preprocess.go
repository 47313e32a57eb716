package ocr

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Preprocess converts an input image into a binarized grayscale PNG that
// recognizes better than a raw photo. It returns the path of a temporary
// file and a cleanup func that removes it; callers must run cleanup on
// both success and failure paths.
func Preprocess(imagePath string) (string, func(), error) {
	file, err := os.Open(imagePath)
	if err != nil {
		return "", nil, fmt.Errorf("open image %s: %w", imagePath, err)
	}
	defer file.Close()

	src, _, err := image.Decode(file)
	if err != nil {
		return "", nil, fmt.Errorf("decode image %s: %w", imagePath, err)
	}

	binarized := binarize(grayscale(src))

	tmp, err := os.CreateTemp("", "timesheet-ocr-*.png")
	if err != nil {
		return "", nil, fmt.Errorf("create preprocessed image: %w", err)
	}

	if err := png.Encode(tmp, binarized); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", nil, fmt.Errorf("encode preprocessed image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", nil, fmt.Errorf("close preprocessed image: %w", err)
	}

	path := tmp.Name()
	cleanup := func() { os.Remove(path) }
	return path, cleanup, nil
}

func grayscale(src image.Image) *image.Gray {
	bounds := src.Bounds()
	gray := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray.Set(x, y, color.GrayModel.Convert(src.At(x, y)))
		}
	}
	return gray
}

// binarize applies Otsu's threshold: the cut that maximizes between-class
// variance over the intensity histogram.
func binarize(gray *image.Gray) *image.Gray {
	threshold := otsuThreshold(gray)

	bounds := gray.Bounds()
	out := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if gray.GrayAt(x, y).Y > threshold {
				out.SetGray(x, y, color.Gray{Y: 255})
			} else {
				out.SetGray(x, y, color.Gray{Y: 0})
			}
		}
	}
	return out
}

func otsuThreshold(gray *image.Gray) uint8 {
	var histogram [256]int
	bounds := gray.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total == 0 {
		return 128
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			histogram[gray.GrayAt(x, y).Y]++
		}
	}

	var sum float64
	for level, count := range histogram {
		sum += float64(level * count)
	}

	var (
		sumBackground    float64
		weightBackground int
		bestVariance     float64
		bestThreshold    uint8
	)

	for level := 0; level < 256; level++ {
		weightBackground += histogram[level]
		if weightBackground == 0 {
			continue
		}
		weightForeground := total - weightBackground
		if weightForeground == 0 {
			break
		}

		sumBackground += float64(level * histogram[level])
		meanBackground := sumBackground / float64(weightBackground)
		meanForeground := (sum - sumBackground) / float64(weightForeground)

		diff := meanBackground - meanForeground
		variance := float64(weightBackground) * float64(weightForeground) * diff * diff
		if variance > bestVariance {
			bestVariance = variance
			bestThreshold = uint8(level)
		}
	}

	return bestThreshold
}
