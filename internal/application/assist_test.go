package app

import (
	"context"
	"errors"
	"image"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"assistive-vision/internal/domain/entity"
	"assistive-vision/internal/infrastructure/vision"
)

type fakeDecoder struct {
	img image.Image
	err error
}

func (d *fakeDecoder) Decode(path string) (image.Image, error) {
	return d.img, d.err
}

type fakeDetector struct {
	detections []entity.Detection
	err        error
}

func (d *fakeDetector) Detect(ctx context.Context, img image.Image) ([]entity.Detection, error) {
	return d.detections, d.err
}

type fakeClassifier struct {
	label string
	err   error
}

func (c *fakeClassifier) Classify(ctx context.Context, img image.Image) (string, error) {
	return c.label, c.err
}

type fakeSpeaker struct {
	said    []string
	sayErr  error
	waitErr error
	waits   int
}

func (s *fakeSpeaker) Say(text string) error {
	s.said = append(s.said, text)
	return s.sayErr
}

func (s *fakeSpeaker) RunAndWait() error {
	s.waits++
	return s.waitErr
}

func testImage() image.Image {
	return image.NewRGBA(image.Rect(0, 0, 640, 480))
}

func sampleDetections() []entity.Detection {
	return []entity.Detection{
		detection("A", 50),
		detection("B", 100),
		detection("A", 25),
	}
}

func TestAssistService_Process(t *testing.T) {
	speaker := &fakeSpeaker{}
	svc := NewAssistService(
		&fakeDecoder{img: testImage()},
		&fakeDetector{detections: sampleDetections()},
		&fakeClassifier{label: "kitchen"},
		speaker,
	)

	res, err := svc.Process(context.Background(), "photo.jpg")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, res.Objects)
	require.Equal(t, map[string]float64{"A": 20.0, "B": 10.0}, res.Distances)
	require.Equal(t, "kitchen", res.Scene)
	require.Equal(t, "Scene appears to be kitchen. A at 20.0 meters, B at 10.0 meters", res.FeedbackText)
	require.Equal(t, []string{res.FeedbackText}, speaker.said)
	require.Equal(t, 1, speaker.waits)
}

func TestAssistService_SpeaksFirstThreeButListsAll(t *testing.T) {
	svc := NewAssistService(
		&fakeDecoder{img: testImage()},
		&fakeDetector{detections: []entity.Detection{
			detection("person", 100),
			detection("chair", 50),
			detection("table", 200),
			detection("door", 250),
		}},
		&fakeClassifier{label: "office"},
		nil,
	)

	res, err := svc.Process(context.Background(), "photo.jpg")
	require.NoError(t, err)
	require.Equal(t, []string{"person", "chair", "table", "door"}, res.Objects)
	require.Len(t, res.Distances, 4)
	require.Equal(t, 4.0, res.Distances["door"])
	require.Equal(t,
		"Scene appears to be office. person at 10.0 meters, chair at 20.0 meters, table at 5.0 meters",
		res.FeedbackText)
	require.NotContains(t, res.FeedbackText, "door")
}

func TestAssistService_UnreadableImage(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.jpg")
	svc := NewAssistService(vision.NewImageDecoder(), &fakeDetector{}, nil, nil)

	res, err := svc.Process(context.Background(), missing)
	require.Nil(t, res)
	require.ErrorIs(t, err, ErrImageUnreadable)
}

func TestAssistService_NoClassifier(t *testing.T) {
	svc := NewAssistService(&fakeDecoder{img: testImage()}, &fakeDetector{}, nil, nil)

	res, err := svc.Process(context.Background(), "photo.jpg")
	require.NoError(t, err)
	require.Equal(t, entity.UnknownScene, res.Scene)
	require.Equal(t, "Scene appears to be Unknown. No obstacles detected.", res.FeedbackText)
	require.Empty(t, res.Objects)
}

func TestAssistService_ClassifierFailure(t *testing.T) {
	svc := NewAssistService(
		&fakeDecoder{img: testImage()},
		&fakeDetector{},
		&fakeClassifier{err: errors.New("inference failed")},
		nil,
	)

	res, err := svc.Process(context.Background(), "photo.jpg")
	require.NoError(t, err)
	require.Equal(t, entity.UnknownScene, res.Scene)
}

func TestAssistService_SpeechFailureDoesNotChangeResult(t *testing.T) {
	quiet := NewAssistService(
		&fakeDecoder{img: testImage()},
		&fakeDetector{detections: sampleDetections()},
		&fakeClassifier{label: "office"},
		nil,
	)
	want, err := quiet.Process(context.Background(), "photo.jpg")
	require.NoError(t, err)

	for _, speaker := range []*fakeSpeaker{
		{sayErr: errors.New("no audio device")},
		{waitErr: errors.New("driver crashed")},
	} {
		svc := NewAssistService(
			&fakeDecoder{img: testImage()},
			&fakeDetector{detections: sampleDetections()},
			&fakeClassifier{label: "office"},
			speaker,
		)
		got, err := svc.Process(context.Background(), "photo.jpg")
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestAssistService_DetectorFailure(t *testing.T) {
	svc := NewAssistService(
		&fakeDecoder{img: testImage()},
		&fakeDetector{err: errors.New("forward failed")},
		nil,
		nil,
	)

	_, err := svc.Process(context.Background(), "photo.jpg")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrImageUnreadable)
}

func TestAssistService_NotConfigured(t *testing.T) {
	svc := NewAssistService(nil, nil, nil, nil)
	_, err := svc.Process(context.Background(), "photo.jpg")
	require.Error(t, err)
}
