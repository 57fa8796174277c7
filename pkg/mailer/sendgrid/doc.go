// Package sendgrid delivers mailer.Email messages through SendGrid's Web API
// (mail.send.json).
//
// A Sender holds the account credentials and a set of passthrough parameters.
// Each delivery converts the message into SendGrid form fields, overlays the
// stored parameters (which win on conflict), and issues exactly one POST:
//
//	s, err := sendgrid.New(sendgrid.Config{
//		APIUser: os.Getenv("SENDGRID_API_USER"),
//		APIKey:  os.Getenv("SENDGRID_API_KEY"),
//		SMTPAPI: map[string]any{"category": []string{"welcome"}},
//	})
//	if err != nil {
//		return err
//	}
//
//	res, err := s.Deliver(ctx, &mailer.Email{
//		From:    "Team <team@example.com>",
//		To:      []string{"user@example.com"},
//		Subject: "Welcome",
//		HTML:    "<p>Hello!</p>",
//	})
//
// Deliver returns the Sender itself in Result.Sender, or the decoded provider
// response in Result.Response when Config.ReturnResponse is set.
//
// # Errors
//
// Non-200 responses are returned as *ProviderError. Its Kind distinguishes
// rejected credentials (matches mailer.ErrInvalidAPIKey), a message without
// destination (matches mailer.ErrInvalidMessage) and any other provider
// error, whose text is the provider's error strings concatenated as-is.
// Network and decoding failures are wrapped but not reclassified.
//
// There are no retries and no sender-imposed timeout. Use the context or a
// custom client (WithHTTPClient) to bound a delivery.
package sendgrid
