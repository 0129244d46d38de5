package ocr

import (
	"context"
	"fmt"
	"os"

	documentai "cloud.google.com/go/documentai/apiv1"
	"cloud.google.com/go/documentai/apiv1/documentaipb"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"
	"google.golang.org/protobuf/encoding/protojson"
	"gopkg.in/yaml.v3"
)

// DocAIConfig holds the Google Document AI processor settings.
type DocAIConfig struct {
	ProjectID   string `yaml:"project_id"`
	Location    string `yaml:"location"`
	ProcessorID string `yaml:"processor_id"`
}

// LoadDocAIConfig reads the processor settings from a YAML file.
func LoadDocAIConfig(path string) (*DocAIConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read Document AI config: %w", err)
	}
	var cfg DocAIConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse Document AI config: %w", err)
	}
	if cfg.ProjectID == "" || cfg.Location == "" || cfg.ProcessorID == "" {
		return nil, fmt.Errorf("document AI config needs project_id, location and processor_id")
	}
	return &cfg, nil
}

// DocAI recognizes text with a Google Document AI OCR processor.
// Authentication uses the GOOGLE_APPLICATION_CREDENTIALS environment
// variable.
type DocAI struct {
	cfg *DocAIConfig

	// DebugAPIPath, when set, receives the raw API response as JSON.
	DebugAPIPath string
}

// NewDocAI returns a Document AI engine for the given processor.
func NewDocAI(cfg *DocAIConfig) *DocAI {
	return &DocAI{cfg: cfg}
}

// Recognize sends the image to the configured processor and returns the
// recognized document text.
func (d *DocAI) Recognize(ctx context.Context, image []byte) (string, error) {
	mimeType, err := detectImageMIME(image)
	if err != nil {
		return "", fmt.Errorf("unsupported image: %w", err)
	}

	endpoint := fmt.Sprintf("%s-documentai.googleapis.com:443", d.cfg.Location)
	client, err := documentai.NewDocumentProcessorClient(
		ctx,
		option.WithEndpoint(endpoint),
		option.WithCredentialsFile(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create Document AI client: %w", err)
	}
	defer client.Close()

	name := fmt.Sprintf(
		"projects/%s/locations/%s/processors/%s",
		d.cfg.ProjectID, d.cfg.Location, d.cfg.ProcessorID,
	)

	req := &documentaipb.ProcessRequest{
		Name: name,
		Source: &documentaipb.ProcessRequest_RawDocument{
			RawDocument: &documentaipb.RawDocument{
				Content:  image,
				MimeType: mimeType,
			},
		},
		SkipHumanReview: true,
	}

	resp, err := client.ProcessDocument(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to process document: %w", err)
	}

	if d.DebugAPIPath != "" {
		d.dumpResponse(resp.GetDocument())
	}

	return resp.GetDocument().GetText(), nil
}

// dumpResponse saves the raw Document proto as JSON for calibration and
// debugging. Failures are reported but never fail the recognition.
func (d *DocAI) dumpResponse(doc *documentaipb.Document) {
	data, err := protojson.MarshalOptions{Indent: "  "}.Marshal(doc)
	if err != nil {
		log.Warnf("failed to marshal API response: %v", err)
		return
	}
	if err := os.WriteFile(d.DebugAPIPath, data, 0644); err != nil {
		log.Warnf("failed to write API response to %s: %v", d.DebugAPIPath, err)
		return
	}
	log.Debugf("raw API response saved to %s", d.DebugAPIPath)
}
