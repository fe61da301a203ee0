package ai

import (
	"context"
	"fmt"
	"log/slog"

	"speech-x-text/domain"
	"speech-x-text/errors"

	dialogflow "cloud.google.com/go/dialogflow/apiv2"
	"cloud.google.com/go/dialogflow/apiv2/dialogflowpb"
	"google.golang.org/api/option"
	"google.golang.org/protobuf/encoding/protojson"
)

// DialogflowDetector sends text queries to a Dialogflow ES agent.
type DialogflowDetector struct {
	client    *dialogflow.SessionsClient
	projectID string
	log       *slog.Logger
}

func NewDialogflowDetector(ctx context.Context, log *slog.Logger, projectID string,
	opts ...option.ClientOption) (*DialogflowDetector, error) {
	client, err := dialogflow.NewSessionsClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create dialogflow client: %w", err)
	}
	return &DialogflowDetector{client: client, projectID: projectID, log: log}, nil
}

func (d *DialogflowDetector) Close() error {
	return d.client.Close()
}

// SessionPath is the agent session a relay session talks to.
func SessionPath(projectID, sessionID string) string {
	return fmt.Sprintf("projects/%s/agent/sessions/%s", projectID, sessionID)
}

func (d *DialogflowDetector) DetectIntent(ctx context.Context, req domain.IntentRequest) (domain.IntentResult, error) {
	resp, err := d.client.DetectIntent(ctx, &dialogflowpb.DetectIntentRequest{
		Session: SessionPath(d.projectID, req.SessionID),
		QueryInput: &dialogflowpb.QueryInput{
			Input: &dialogflowpb.QueryInput_Text{
				Text: &dialogflowpb.TextInput{
					Text:         req.Text,
					LanguageCode: req.LanguageCode,
				},
			},
		},
	})
	if err != nil {
		return domain.IntentResult{}, fmt.Errorf("%w: detect intent: %w", errors.ErrUpstream, err)
	}

	result := resp.GetQueryResult()
	if result == nil {
		return domain.IntentResult{}, fmt.Errorf("%w: detect intent returned no query result", errors.ErrUpstream)
	}
	if d.log.Enabled(ctx, slog.LevelDebug) {
		d.log.Debug("Intent detected", "session_id", req.SessionID, "query_result", protojson.Format(result))
	}

	return domain.IntentResult{
		FulfillmentText: result.GetFulfillmentText(),
		Intent:          result.GetIntent().GetDisplayName(),
		Confidence:      result.GetIntentDetectionConfidence(),
	}, nil
}
