package emotion

import (
	"context"
	"fmt"
	"time"

	vision "cloud.google.com/go/vision/v2/apiv1"
	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"google.golang.org/api/option"
)

// Classifier turns a captured image into an emotion label.
type Classifier interface {
	Detect(ctx context.Context, img []byte) (Label, error)
}

// Detector reads the learner's mood from a snapshot of their face.
type Detector struct {
	client *vision.ImageAnnotatorClient
}

var _ Classifier = (*Detector)(nil)

// NewDetector creates a detector backed by the Cloud Vision API. Credentials
// come from the environment; opts can override them.
func NewDetector(ctx context.Context, opts ...option.ClientOption) (*Detector, error) {
	client, err := vision.NewImageAnnotatorClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("vision client: %w", err)
	}
	return &Detector{client: client}, nil
}

// Close releases the underlying client.
func (d *Detector) Close() error {
	if d == nil || d.client == nil {
		return nil
	}
	return d.client.Close()
}

// Detect infers a mood label from a face image. When no face is found it
// returns LabelNone and no error; the caller proceeds without a mood.
func (d *Detector) Detect(ctx context.Context, img []byte) (Label, error) {
	if len(img) == 0 {
		return LabelNone, fmt.Errorf("empty image")
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{
			{
				Image: &visionpb.Image{Content: img},
				Features: []*visionpb.Feature{
					{Type: visionpb.Feature_FACE_DETECTION, MaxResults: 1},
				},
			},
		},
	}

	resp, err := d.client.BatchAnnotateImages(ctx, req)
	if err != nil {
		return LabelNone, fmt.Errorf("vision BatchAnnotateImages: %w", err)
	}
	if resp == nil || len(resp.Responses) == 0 || resp.Responses[0] == nil {
		return LabelNone, nil
	}

	r0 := resp.Responses[0]
	if r0.Error != nil && r0.Error.Message != "" {
		return LabelNone, fmt.Errorf("vision annotate error: %s", r0.Error.Message)
	}
	if len(r0.FaceAnnotations) == 0 {
		return LabelNone, nil
	}

	return labelFromFace(r0.FaceAnnotations[0]), nil
}

// labelFromFace picks the strongest expression signal. Ties go to the
// earlier entry, and a face with no clear signal reads as neutral.
func labelFromFace(face *visionpb.FaceAnnotation) Label {
	scores := []struct {
		label      Label
		likelihood visionpb.Likelihood
	}{
		{Happy, face.JoyLikelihood},
		{Sad, face.SorrowLikelihood},
		{Angry, face.AngerLikelihood},
		{Surprise, face.SurpriseLikelihood},
	}

	best := Neutral
	bestScore := 0
	for _, s := range scores {
		if score := likelihoodScore(s.likelihood); score > bestScore {
			best = s.label
			bestScore = score
		}
	}

	// Below POSSIBLE the signal is too weak to act on.
	if bestScore < 3 {
		return Neutral
	}
	return best
}

func likelihoodScore(l visionpb.Likelihood) int {
	switch l {
	case visionpb.Likelihood_VERY_UNLIKELY:
		return 1
	case visionpb.Likelihood_UNLIKELY:
		return 2
	case visionpb.Likelihood_POSSIBLE:
		return 3
	case visionpb.Likelihood_LIKELY:
		return 4
	case visionpb.Likelihood_VERY_LIKELY:
		return 5
	default:
		return 0
	}
}
