package services

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// Vision extracts pantry item names from user images. MockVision is the
// deterministic placeholder used by default; RekognitionVision is the AWS
// implementation selected with VISION_PROVIDER=rekognition. Handlers only
// see this interface, so swapping providers never touches callers.
type Vision interface {
	// ReceiptItems reads item names off a receipt image.
	ReceiptItems(imageBase64 string) ([]string, error)
	// PhotoLabels names the groceries visible in a pantry photo.
	PhotoLabels(imageBase64 string) ([]string, error)
}

// MockVision returns fixed item lists regardless of input.
type MockVision struct{}

func (MockVision) ReceiptItems(string) ([]string, error) {
	return []string{"milk", "eggs", "bread", "tomato", "pasta"}, nil
}

func (MockVision) PhotoLabels(string) ([]string, error) {
	return []string{"banana", "oats", "peanut butter"}, nil
}

// RekognitionVision backs the Vision interface with AWS Rekognition:
// DetectText for receipts, DetectLabels for photos.
type RekognitionVision struct {
	client *rekognition.Client
}

func NewRekognitionVision(region string) (*RekognitionVision, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &RekognitionVision{client: rekognition.NewFromConfig(cfg)}, nil
}

func (r *RekognitionVision) ReceiptItems(imageBase64 string) ([]string, error) {
	data, err := decodeImageDataURI(imageBase64)
	if err != nil {
		return nil, err
	}

	out, err := r.client.DetectText(context.TODO(), &rekognition.DetectTextInput{
		Image: &types.Image{Bytes: data},
	})
	if err != nil {
		return nil, err
	}

	var items []string
	for _, t := range out.TextDetections {
		if t.Type == types.TextTypesLine && t.DetectedText != nil {
			items = append(items, strings.ToLower(*t.DetectedText))
		}
	}
	return items, nil
}

func (r *RekognitionVision) PhotoLabels(imageBase64 string) ([]string, error) {
	data, err := decodeImageDataURI(imageBase64)
	if err != nil {
		return nil, err
	}

	out, err := r.client.DetectLabels(context.TODO(), &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: data},
		MaxLabels:     aws.Int32(5),
		MinConfidence: aws.Float32(75),
	})
	if err != nil {
		return nil, err
	}

	var labels []string
	for _, l := range out.Labels {
		if l.Name != nil {
			labels = append(labels, strings.ToLower(*l.Name))
		}
	}
	return labels, nil
}

// decodeImageDataURI strips the "data:image/...;base64," prefix and decodes
// the payload.
func decodeImageDataURI(imageBase64 string) ([]byte, error) {
	idx := strings.Index(imageBase64, ",")
	if !strings.HasPrefix(imageBase64, "data:image") || idx < 0 {
		return nil, errors.New("invalid data URI")
	}
	return base64.StdEncoding.DecodeString(imageBase64[idx+1:])
}
