package entity

// UnknownScene подставляется, когда классификатор сцены недоступен.
const UnknownScene = "Unknown"

// FeedbackResult итог обработки одного изображения.
type FeedbackResult struct {
	Objects      []string           `json:"objects"`       // уникальные метки в порядке первого появления
	Distances    map[string]float64 `json:"distances"`     // минимальная дистанция по каждой метке
	Scene        string             `json:"scene"`         // метка сцены
	FeedbackText string             `json:"feedback_text"` // текст для озвучки
}

// ErrorResult — структурированная ошибка вместо результата.
type ErrorResult struct {
	Error string `json:"error"`
}
