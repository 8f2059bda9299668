package entity

// BoundingBox прямоугольник объекта в пиксельных координатах изображения
type BoundingBox struct {
	XMin float64 // левая граница
	YMin float64 // верхняя граница
	XMax float64 // правая граница
	YMax float64 // нижняя граница
}

// Width возвращает ширину рамки
func (b BoundingBox) Width() float64 {
	return b.XMax - b.XMin
}

// Height возвращает высоту рамки
func (b BoundingBox) Height() float64 {
	return b.YMax - b.YMin
}

// Detection один найденный детектором объект
type Detection struct {
	Label      string      // имя класса, например "person"
	Box        BoundingBox // рамка объекта
	Confidence float64     // уверенность детектора (0-1)
}
