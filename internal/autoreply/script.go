// Package autoreply answers inbound SMS messages with a canned reply chosen
// from an ordered keyword script, rendered as TwiML for the Twilio webhook.
package autoreply

import "regexp"

// ScriptRule pairs a pattern with its reply. Rules are tried in order and
// the first match wins.
type ScriptRule struct {
	Pattern *regexp.Regexp
	Reply   string
}

// DefaultReply is sent when no script rule matches.
const DefaultReply = "Thanks for reaching out. Please send your address and the service you need, and we'll reply as soon as possible."

// DefaultScript covers the common first-contact messages.
var DefaultScript = []ScriptRule{
	{
		Pattern: regexp.MustCompile(`(?i)hello|hi|hey`),
		Reply:   "Hi! How can we help with your project today?",
	},
	{
		Pattern: regexp.MustCompile(`(?i)roof|leak|repair`),
		Reply:   "We can schedule an inspection. What's your address and preferred time?",
	},
	{
		Pattern: regexp.MustCompile(`(?i)estimate|price|quote`),
		Reply:   "We provide free estimates. Please send your address and scope and we'll book you in.",
	},
}

// Match returns the reply for an inbound message body.
func Match(script []ScriptRule, body string) string {
	for _, rule := range script {
		if rule.Pattern.MatchString(body) {
			return rule.Reply
		}
	}
	return DefaultReply
}
