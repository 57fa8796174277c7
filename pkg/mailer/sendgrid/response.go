package sendgrid

import "fmt"

// Response is the decoded JSON body of a mail.send.json call,
// e.g. {"message":"success"} or {"message":"error","errors":["..."]}.
type Response map[string]any

// Message returns the "message" field, or "" when absent.
func (r Response) Message() string {
	msg, _ := r["message"].(string)
	return msg
}

// Errors returns the "errors" field as strings.
func (r Response) Errors() []string {
	raw, ok := r["errors"].([]any)
	if !ok {
		return nil
	}
	errs := make([]string, 0, len(raw))
	for _, e := range raw {
		if s, ok := e.(string); ok {
			errs = append(errs, s)
			continue
		}
		errs = append(errs, fmt.Sprint(e))
	}
	return errs
}

// Result is what a successful Deliver returns: the Sender for chaining, or
// the provider response when Config.ReturnResponse is set. Sender is nil
// whenever ReturnResponse is set.
type Result struct {
	Sender   *Sender
	Response Response
}
