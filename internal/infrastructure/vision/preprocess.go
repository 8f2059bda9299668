package vision

import (
	"image"

	"github.com/disintegration/imaging"
)

const (
	classifierResize = 256
	classifierCrop   = 224
)

// Нормализация ImageNet (RGB).
var (
	imagenetMean = [3]float32{0.485, 0.456, 0.406}
	imagenetStd  = [3]float32{0.229, 0.224, 0.225}
)

// Tensor — нормализованное изображение в раскладке HWC, каналы RGB.
type Tensor struct {
	Data     []float32
	Height   int
	Width    int
	Channels int
}

// At возвращает значение канала c в пикселе (x, y).
func (t Tensor) At(x, y, c int) float32 {
	return t.Data[(y*t.Width+x)*t.Channels+c]
}

// PrepareClassifierInput масштабирует короткую сторону до 256, вырезает центр 224x224
// и нормализует пиксели средними и дисперсиями ImageNet.
func PrepareClassifierInput(img image.Image) Tensor {
	b := img.Bounds()
	var resized *image.NRGBA
	if b.Dx() < b.Dy() {
		resized = imaging.Resize(img, classifierResize, 0, imaging.Linear)
	} else {
		resized = imaging.Resize(img, 0, classifierResize, imaging.Linear)
	}
	cropped := imaging.CropCenter(resized, classifierCrop, classifierCrop)

	size := cropped.Bounds().Size()
	t := Tensor{
		Data:     make([]float32, size.X*size.Y*3),
		Height:   size.Y,
		Width:    size.X,
		Channels: 3,
	}

	for y := 0; y < size.Y; y++ {
		row := cropped.Pix[y*cropped.Stride:]
		for x := 0; x < size.X; x++ {
			px := row[x*4 : x*4+3]
			for c := 0; c < 3; c++ {
				v := float32(px[c]) / 255
				t.Data[(y*size.X+x)*3+c] = (v - imagenetMean[c]) / imagenetStd[c]
			}
		}
	}

	return t
}
