package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"redline/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
	frontendURL string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName, frontendURL string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
		frontendURL: frontendURL,
	}, nil
}

func (s *sesSender) SendComparisonReady(ctx context.Context, toEmail string, notice port.ComparisonNotice) error {
	resultURL := fmt.Sprintf("%s/comparisons/%s", s.frontendURL, notice.ComparisonID)

	subject := fmt.Sprintf("Comparison ready: %s vs %s", notice.OldFileName, notice.NewFileName)
	htmlBody := buildComparisonReadyHTML(notice, resultURL)
	textBody := fmt.Sprintf(
		"Your document comparison is ready.\n\nOld revision: %s\nNew revision: %s\n\nChanges: %d total (%d added, %d modified, %d removed)\n\nView the full report:\n%s\n\nRedline Team",
		notice.OldFileName, notice.NewFileName,
		notice.TotalChanges, notice.Added, notice.Modified, notice.Removed,
		resultURL)

	return s.send(ctx, toEmail, subject, htmlBody, textBody)
}

func (s *sesSender) SendComparisonFailed(ctx context.Context, toEmail string, comparisonID, reason string) error {
	subject := "Comparison failed"
	htmlBody := buildComparisonFailedHTML(comparisonID, reason)
	textBody := fmt.Sprintf(
		"Your document comparison %s could not be completed.\n\nReason: %s\n\nYou can upload the files again and retry.\n\nRedline Team",
		comparisonID, reason)

	return s.send(ctx, toEmail, subject, htmlBody, textBody)
}

func (s *sesSender) send(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildComparisonReadyHTML(notice port.ComparisonNotice, resultURL string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Your comparison is ready</h2>
  <p>The comparison between <strong>%s</strong> and <strong>%s</strong> has finished.</p>
  <p>%d changes found: %d added, %d modified, %d removed.</p>
  <p style="text-align: center; margin: 30px 0;">
    <a href="%s" style="background-color: #4F46E5; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">View Report</a>
  </p>
  <p>Or copy and paste this link into your browser:</p>
  <p style="word-break: break-all; color: #666;">%s</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">Redline - Document Revision Comparison</p>
</body>
</html>`, notice.OldFileName, notice.NewFileName,
		notice.TotalChanges, notice.Added, notice.Modified, notice.Removed,
		resultURL, resultURL)
}

func buildComparisonFailedHTML(comparisonID, reason string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Comparison failed</h2>
  <p>Comparison <code>%s</code> could not be completed.</p>
  <p style="color: #666;">Reason: %s</p>
  <p>You can upload the files again and retry.</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">Redline - Document Revision Comparison</p>
</body>
</html>`, comparisonID, reason)
}
